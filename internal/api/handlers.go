package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/careplan-rule-engine/internal/domain"
)

// CarePlanRequest is the request body for care plan generation: a validated
// patient profile plus the complete set of upstream risk assessments.
type CarePlanRequest struct {
	Profile *domain.PatientProfile    `json:"profile" binding:"required"`
	Risks   *domain.RiskAssessmentSet `json:"risks" binding:"required"`
}

// CarePlanResponse wraps a generated plan with request metadata.
type CarePlanResponse struct {
	PlanID      string           `json:"plan_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	CarePlan    *domain.CarePlan `json:"care_plan"`
}

// handleGenerateCarePlan runs the rule engine over the submitted profile
// and risk assessments and returns the assembled plan.
func (s *Server) handleGenerateCarePlan(c *gin.Context) {
	start := time.Now()

	var req CarePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.ObservePlanRequest("bad_request", time.Since(start))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid request body",
			"details":    err.Error(),
			"request_id": requestID(c),
		})
		return
	}

	plan, err := s.engine.GeneratePlan(req.Profile, req.Risks)
	if err != nil {
		var missing *domain.MissingAssessmentError
		if errors.As(err, &missing) {
			s.metrics.ObservePlanRequest("missing_assessment", time.Since(start))
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      err.Error(),
				"condition":  missing.Condition.String(),
				"request_id": requestID(c),
			})
			return
		}

		s.logger.WithError(err).WithField("request_id", requestID(c)).Error("Care plan generation failed")
		s.metrics.ObservePlanRequest("error", time.Since(start))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "failed to generate care plan",
			"request_id": requestID(c),
		})
		return
	}

	// Enrichment is best-effort: a failing collaborator never blocks the
	// engine-produced plan.
	if insights, err := s.enricher.Enrich(c.Request.Context(), req.Profile, plan); err != nil {
		s.logger.WithError(err).WithField("request_id", requestID(c)).Warn("Care plan enrichment unavailable")
	} else if len(insights) > 0 {
		plan.AIInsights = insights
	}

	s.metrics.ObservePlanRequest("ok", time.Since(start))
	s.logger.WithFields(logrus.Fields{
		"request_id":        requestID(c),
		"immediate_actions": len(plan.ImmediateActions),
		"monitoring_rows":   len(plan.MonitoringSchedule),
	}).Info("Care plan request served")

	c.JSON(http.StatusOK, CarePlanResponse{
		PlanID:      uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		CarePlan:    plan,
	})
}
