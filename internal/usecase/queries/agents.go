package queries

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"tarifario/internal/pkg/errs"
)

// Agent is the directory entry returned by the external agent-search service.
type Agent struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
}

// AgentDirectory is the external lookup collaborator. An empty result means
// "no match", never an error.
type AgentDirectory interface {
	Search(ctx context.Context, name, email string) ([]Agent, error)
}

type AgentQueries interface {
	// Search proxies the directory lookup. Overlapping searches from the
	// same operator supersede each other: a result that comes back after
	// the operator has already issued a newer search is dropped.
	Search(ctx context.Context, operatorID uuid.UUID, name, email string) ([]Agent, error)
}

type agentQueriesImpl struct {
	directory AgentDirectory
	sessions  sync.Map // operator ID -> *searchSession
}

// searchSession tracks one operator's latest search. The sequence is scoped
// per operator so concurrent operators never discard each other's results.
type searchSession struct {
	seq atomic.Uint64
}

func NewAgentQueries(directory AgentDirectory) AgentQueries {
	return &agentQueriesImpl{directory: directory}
}

func (q *agentQueriesImpl) Search(ctx context.Context, operatorID uuid.UUID, name, email string) ([]Agent, error) {
	sess := q.session(operatorID)
	seq := sess.seq.Add(1)

	agents, err := q.directory.Search(ctx, name, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	// a superseded search just yields nothing; the operator's newer search
	// renders its own result
	if seq < sess.seq.Load() {
		return []Agent{}, nil
	}

	if agents == nil {
		agents = []Agent{}
	}
	return agents, nil
}

func (q *agentQueriesImpl) session(operatorID uuid.UUID) *searchSession {
	if sess, ok := q.sessions.Load(operatorID); ok {
		return sess.(*searchSession)
	}
	sess, _ := q.sessions.LoadOrStore(operatorID, &searchSession{})
	return sess.(*searchSession)
}
