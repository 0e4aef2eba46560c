package enrichment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careplan-rule-engine/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNoopEnricherReturnsNothing(t *testing.T) {
	insights, err := Noop{}.Enrich(context.Background(), &domain.PatientProfile{}, domain.NewCarePlan())
	assert.NoError(t, err)
	assert.Nil(t, insights)
}

func TestHTTPEnricherSuccess(t *testing.T) {
	var received enrichRequest
	collaborator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/insights", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(enrichResponse{
			Insights: []string{"Review sleep habits with a specialist"},
		})
	}))
	defer collaborator.Close()

	enricher := NewHTTPEnricher(domain.EnrichmentConfig{
		BaseURL: collaborator.URL,
		Timeout: time.Second,
	}, testLogger())

	profile := &domain.PatientProfile{Age: 50}
	plan := domain.NewCarePlan()

	insights, err := enricher.Enrich(context.Background(), profile, plan)
	require.NoError(t, err)
	assert.Equal(t, []string{"Review sleep habits with a specialist"}, insights)
	assert.Equal(t, 50, received.Profile.Age)
}

func TestHTTPEnricherServerError(t *testing.T) {
	collaborator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer collaborator.Close()

	enricher := NewHTTPEnricher(domain.EnrichmentConfig{
		BaseURL: collaborator.URL,
		Timeout: time.Second,
	}, testLogger())

	_, err := enricher.Enrich(context.Background(), &domain.PatientProfile{}, domain.NewCarePlan())
	assert.Error(t, err)
}

func TestHTTPEnricherBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	collaborator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer collaborator.Close()

	enricher := NewHTTPEnricher(domain.EnrichmentConfig{
		BaseURL:     collaborator.URL,
		Timeout:     time.Second,
		MaxFailures: 2,
		OpenTimeout: time.Minute,
	}, testLogger())

	profile := &domain.PatientProfile{}
	plan := domain.NewCarePlan()

	for i := 0; i < 2; i++ {
		_, err := enricher.Enrich(context.Background(), profile, plan)
		require.Error(t, err)
	}

	// Breaker is now open: the collaborator is no longer called.
	_, err := enricher.Enrich(context.Background(), profile, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
