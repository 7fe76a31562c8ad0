//go:build unit

package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
	queriesmock "tarifario/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgentQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockDirectory *queriesmock.MockAgentDirectory
	queries       queries.AgentQueries
}

func (s *AgentQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDirectory = queriesmock.NewMockAgentDirectory(s.mockCtrl)
	s.queries = queries.NewAgentQueries(s.mockDirectory)
}

func (s *AgentQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgentQueriesSuite(t *testing.T) {
	suite.Run(t, new(AgentQueriesTestSuite))
}

func (s *AgentQueriesTestSuite) TestSearch() {
	ctx := context.Background()
	operatorID := uuid.New()
	match := []queries.Agent{
		{ID: uuid.New(), DisplayName: "Viajes Horizonte", Email: "reservas@viajeshorizonte.example"},
	}

	s.Run("returns directory matches", func() {
		s.mockDirectory.EXPECT().Search(ctx, "horizonte", "").
			Return(match, nil).Times(1)

		agents, err := s.queries.Search(ctx, operatorID, "horizonte", "")
		s.NoError(err)
		s.Equal(match, agents)
	})

	s.Run("nil directory result becomes an empty slice", func() {
		s.mockDirectory.EXPECT().Search(ctx, "nadie", "").
			Return(nil, nil).Times(1)

		agents, err := s.queries.Search(ctx, operatorID, "nadie", "")
		s.NoError(err)
		s.NotNil(agents)
		s.Empty(agents)
	})

	s.Run("directory failure is marked as gateway unavailable", func() {
		s.mockDirectory.EXPECT().Search(ctx, "horizonte", "").
			Return(nil, errors.New("connection refused")).Times(1)

		_, err := s.queries.Search(ctx, operatorID, "horizonte", "")
		s.ErrorIs(err, errs.ErrGatewayUnavailable)
	})

	s.Run("a newer search from the same operator supersedes the slower one", func() {
		release := make(chan struct{})
		blocked := make(chan struct{})

		s.mockDirectory.EXPECT().Search(gomock.Any(), "slow", "").
			DoAndReturn(func(context.Context, string, string) ([]queries.Agent, error) {
				close(blocked)
				<-release
				return match, nil
			}).Times(1)
		s.mockDirectory.EXPECT().Search(gomock.Any(), "fast", "").
			Return(match, nil).Times(1)

		slowCh := make(chan []queries.Agent, 1)
		go func() {
			agents, err := s.queries.Search(ctx, operatorID, "slow", "")
			s.NoError(err)
			slowCh <- agents
		}()

		<-blocked
		fast, err := s.queries.Search(ctx, operatorID, "fast", "")
		s.NoError(err)
		s.Len(fast, 1)

		close(release)
		s.Empty(<-slowCh, "the superseded search must not render its result")
	})

	s.Run("operators never supersede each other", func() {
		otherOperatorID := uuid.New()

		release := make(chan struct{})
		blocked := make(chan struct{})

		s.mockDirectory.EXPECT().Search(gomock.Any(), "horizonte", "").
			DoAndReturn(func(context.Context, string, string) ([]queries.Agent, error) {
				close(blocked)
				<-release
				return match, nil
			}).Times(1)
		s.mockDirectory.EXPECT().Search(gomock.Any(), "fantasia", "").
			Return(match, nil).Times(1)

		var wg sync.WaitGroup
		wg.Add(1)
		slowCh := make(chan []queries.Agent, 1)
		go func() {
			defer wg.Done()
			agents, err := s.queries.Search(ctx, operatorID, "horizonte", "")
			s.NoError(err)
			slowCh <- agents
		}()

		// the second operator searches while the first is still in flight
		<-blocked
		other, err := s.queries.Search(ctx, otherOperatorID, "fantasia", "")
		s.NoError(err)
		s.Len(other, 1)

		close(release)
		wg.Wait()
		s.Len(<-slowCh, 1, "a search is only superseded by the same operator")
	})
}
