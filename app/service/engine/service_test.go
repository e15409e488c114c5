package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"heartline/app/client/heart"
	"heartline/app/config"
	"heartline/app/service/decision"
	"heartline/app/service/queue"
	"heartline/app/service/speakstate"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInjector(t *testing.T, endpoint string) *do.Injector {
	t.Helper()

	cfg := &config.Config{}
	cfg.Heart.EndpointURL = endpoint
	cfg.Heart.TimeoutSeconds = 5
	cfg.State.Path = filepath.Join(t.TempDir(), "speakstate.json")
	cfg.Decision.CooldownMinutes = 60

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, cfg)
	do.Provide(di, heart.NewClient)
	do.Provide(di, speakstate.New)
	do.Provide(di, decision.New)
	do.Provide(di, queue.New)
	do.Provide(di, New)

	return di
}

func alwaysSpeakOpts() decision.Options {
	rate := 1.0
	daytimeOnly := false

	return decision.Options{
		BaseRate:    &rate,
		DaytimeOnly: &daytimeOnly,
	}
}

func TestHandleTurn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"weather": "fog", "phrase": {}}`))
	}))
	defer server.Close()

	svc := do.MustInvoke[*Service](newTestInjector(t, server.URL))

	result, err := svc.HandleTurn(context.Background(), heart.PersonaArisa, alwaysSpeakOpts())
	require.NoError(t, err)

	assert.True(t, result.Spoke)
	assert.Equal(t, decision.OutcomeSpoken, result.Outcome)
	assert.NotEmpty(t, result.Line)
}

func TestHandleTurnUnknownPersona(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := do.MustInvoke[*Service](newTestInjector(t, server.URL))

	_, err := svc.HandleTurn(context.Background(), heart.Persona("nobody"), alwaysSpeakOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown persona")
}

func TestHandleTurnFetchFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := do.MustInvoke[*Service](newTestInjector(t, server.URL))

	_, err := svc.HandleTurn(context.Background(), heart.PersonaArisa, alwaysSpeakOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not fetch heart snapshot")
}
