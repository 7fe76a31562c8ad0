package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"tarifario/internal/pkg/config"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

// AgentsGateway queries the external agent directory. Superseding of
// overlapping searches is handled per caller in the query layer; the gateway
// itself is a plain client.
type AgentsGateway struct {
	client  *http.Client
	baseURL string
}

func NewAgentsGateway(cfg config.AgentsConfig) *AgentsGateway {
	return &AgentsGateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

func (g *AgentsGateway) Search(ctx context.Context, name, email string) ([]queries.Agent, error) {
	endpoint, err := url.Parse(g.baseURL + "/agents")
	if err != nil {
		return nil, errs.Wrap(err, "invalid agents base URL")
	}
	q := endpoint.Query()
	if name != "" {
		q.Set("name", name)
	}
	if email != "" {
		q.Set("email", email)
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build agent search request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "agent search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New("agent directory returned status " + resp.Status)
	}

	var agents []queries.Agent
	if err := json.NewDecoder(resp.Body).Decode(&agents); err != nil {
		return nil, errs.Wrap(err, "failed to decode agent search response")
	}
	if agents == nil {
		agents = []queries.Agent{}
	}
	return agents, nil
}
