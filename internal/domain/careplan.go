package domain

// MonitoringItem is one row of the self-tracking schedule, describing a
// single vital or behavior the patient should track.
type MonitoringItem struct {
	Parameter string `json:"parameter"`
	Frequency string `json:"frequency"`
	Target    string `json:"target"`
	Action    string `json:"action"`
}

// CarePlan is the structured, multi-category recommendation bundle produced
// by the rule engine. A plan is created fresh on every invocation and is
// never mutated by the engine after assembly; ownership passes entirely to
// the caller.
type CarePlan struct {
	// ImmediateActions lists urgent, threshold-crossing actions in trigger
	// order. Possibly empty.
	ImmediateActions []string `json:"immediate_actions"`

	// Lifestyle maps every lifestyle category to its ordered recommendation
	// list. All five category keys are always present; a list may be empty
	// when no rule fired for that channel.
	Lifestyle map[LifestyleCategory][]string `json:"lifestyle"`

	// MedicalFollowUp lists recurring clinical-visit actions.
	MedicalFollowUp []string `json:"medical_followup"`

	// MonitoringSchedule lists the self-tracking rows, each a complete
	// description of one tracked parameter.
	MonitoringSchedule []MonitoringItem `json:"monitoring_schedule"`

	// AIInsights is an engine-agnostic field reserved for the optional
	// enrichment collaborator. The rule engine never writes it; enrichment
	// appends supplementary insight strings without touching the
	// engine-produced sections above.
	AIInsights []string `json:"ai_insights,omitempty"`
}

// NewCarePlan returns an empty plan with every lifestyle category present,
// so downstream consumers can rely on the keys existing even when a
// category accumulated no recommendations.
func NewCarePlan() *CarePlan {
	lifestyle := make(map[LifestyleCategory][]string, len(AllLifestyleCategories))
	for _, cat := range AllLifestyleCategories {
		lifestyle[cat] = []string{}
	}
	return &CarePlan{
		ImmediateActions:   []string{},
		Lifestyle:          lifestyle,
		MedicalFollowUp:    []string{},
		MonitoringSchedule: []MonitoringItem{},
	}
}
