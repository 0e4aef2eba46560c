// Package enrichment defines the boundary to the optional AI-enrichment
// collaborator: a downstream service that may contribute supplementary
// insight strings to a generated care plan. Insights land in the plan's
// engine-agnostic ai_insights field; the engine-produced sections are never
// touched.
package enrichment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/careplan-rule-engine/internal/domain"
)

// Enricher produces supplementary insight strings for a generated plan.
// Implementations must treat the plan as read-only.
type Enricher interface {
	Enrich(ctx context.Context, profile *domain.PatientProfile, plan *domain.CarePlan) ([]string, error)
}

// Noop is the enricher used when no collaborator is configured.
type Noop struct{}

// Enrich returns no insights.
func (Noop) Enrich(ctx context.Context, profile *domain.PatientProfile, plan *domain.CarePlan) ([]string, error) {
	return nil, nil
}

// HTTPEnricher calls an external enrichment service over HTTP. Calls run
// behind a circuit breaker so a degraded collaborator cannot slow down plan
// generation; callers treat enrichment failure as non-fatal.
type HTTPEnricher struct {
	logger  *logrus.Logger
	client  *http.Client
	baseURL string
	breaker *gobreaker.CircuitBreaker
}

// NewHTTPEnricher creates an HTTP enricher from configuration.
func NewHTTPEnricher(cfg domain.EnrichmentConfig, logger *logrus.Logger) *HTTPEnricher {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "care-plan-enrichment",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Enrichment circuit breaker state changed")
		},
	})

	return &HTTPEnricher{
		logger:  logger,
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		breaker: breaker,
	}
}

type enrichRequest struct {
	Profile *domain.PatientProfile `json:"profile"`
	Plan    *domain.CarePlan       `json:"care_plan"`
}

type enrichResponse struct {
	Insights []string `json:"insights"`
}

// Enrich posts the profile and plan to the collaborator and returns its
// insight strings.
func (e *HTTPEnricher) Enrich(ctx context.Context, profile *domain.PatientProfile, plan *domain.CarePlan) ([]string, error) {
	result, err := e.breaker.Execute(func() (interface{}, error) {
		insights, err := e.post(ctx, profile, plan)
		if err != nil {
			return nil, err
		}
		return insights, nil
	})
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	return result.([]string), nil
}

func (e *HTTPEnricher) post(ctx context.Context, profile *domain.PatientProfile, plan *domain.CarePlan) ([]string, error) {
	body, err := json.Marshal(enrichRequest{Profile: profile, Plan: plan})
	if err != nil {
		return nil, fmt.Errorf("failed to encode enrichment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/insights", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build enrichment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment service returned status %d", resp.StatusCode)
	}

	var decoded enrichResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode enrichment response: %w", err)
	}

	return decoded.Insights, nil
}
