//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tarifario/internal/infra/gateway"
	"tarifario/internal/pkg/config"
	"tarifario/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgentsGateway(t *testing.T, handler http.HandlerFunc) *gateway.AgentsGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewAgentsGateway(config.AgentsConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

func TestAgentsGateway_Search(t *testing.T) {
	agents := []queries.Agent{
		{ID: uuid.New(), DisplayName: "Viajes Horizonte", Email: "reservas@viajeshorizonte.example"},
	}

	t.Run("passes name and email as query parameters", func(t *testing.T) {
		g := newAgentsGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/agents", r.URL.Path)
			assert.Equal(t, "horizonte", r.URL.Query().Get("name"))
			assert.Equal(t, "reservas@viajeshorizonte.example", r.URL.Query().Get("email"))
			_ = json.NewEncoder(w).Encode(agents)
		})

		got, err := g.Search(context.Background(), "horizonte", "reservas@viajeshorizonte.example")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, agents[0].ID, got[0].ID)
	})

	t.Run("null body becomes an empty slice", func(t *testing.T) {
		g := newAgentsGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("null"))
		})

		got, err := g.Search(context.Background(), "nadie", "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		g := newAgentsGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := g.Search(context.Background(), "horizonte", "")
		require.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		g := newAgentsGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("{not-json"))
		})

		_, err := g.Search(context.Background(), "horizonte", "")
		require.Error(t, err)
	})

	t.Run("concurrent searches do not interfere", func(t *testing.T) {
		release := make(chan struct{})
		blocked := make(chan struct{})
		g := newAgentsGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("name") == "slow" {
				close(blocked)
				<-release
			}
			_ = json.NewEncoder(w).Encode(agents)
		})

		type outcome struct {
			agents []queries.Agent
			err    error
		}
		slowCh := make(chan outcome, 1)
		go func() {
			got, err := g.Search(context.Background(), "slow", "")
			slowCh <- outcome{got, err}
		}()

		<-blocked
		fast, err := g.Search(context.Background(), "fast", "")
		require.NoError(t, err)
		assert.Len(t, fast, 1)

		close(release)
		slow := <-slowCh
		require.NoError(t, slow.err)
		assert.Len(t, slow.agents, 1)
	})
}
