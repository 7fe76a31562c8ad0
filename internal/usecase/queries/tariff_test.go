//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"tarifario/internal/domain/tariff"
	"tarifario/internal/infra"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
	"tarifario/tests/common/builder"
	queriesmock "tarifario/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TariffQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockTariffReadStore
	queries   queries.TariffQueries
}

func (s *TariffQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockTariffReadStore(s.mockCtrl)
	s.queries = queries.NewTariffQueries(s.mockStore)
}

func (s *TariffQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTariffQueriesSuite(t *testing.T) {
	suite.Run(t, new(TariffQueriesTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("tariff not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func (s *TariffQueriesTestSuite) TestResolve() {
	ctx := context.Background()
	hotelID := uuid.New()
	agentID := uuid.New()

	generalView := builder.NewTariffBuilder().WithHotelID(hotelID).BuildView()
	preferentialView := builder.NewTariffBuilder().WithHotelID(hotelID).WithAgent(agentID).BuildView()

	s.Run("preferential rate wins for the exact triple", func() {
		s.mockStore.EXPECT().FindPreferential(ctx, hotelID, tariff.CategoryDouble, agentID).
			Return(preferentialView, nil).Times(1)

		view, err := s.queries.Resolve(ctx, hotelID, tariff.CategoryDouble, &agentID)
		s.NoError(err)
		s.Equal(preferentialView, view)
	})

	s.Run("falls back to general when no preferential rate exists", func() {
		s.mockStore.EXPECT().FindPreferential(ctx, hotelID, tariff.CategoryDouble, agentID).
			Return(nil, notFoundErr()).Times(1)
		s.mockStore.EXPECT().FindGeneral(ctx, hotelID, tariff.CategoryDouble).
			Return(generalView, nil).Times(1)

		view, err := s.queries.Resolve(ctx, hotelID, tariff.CategoryDouble, &agentID)
		s.NoError(err)
		s.Equal(generalView, view)
	})

	s.Run("no agent goes straight to the general rate", func() {
		s.mockStore.EXPECT().FindGeneral(ctx, hotelID, tariff.CategorySingle).
			Return(generalView, nil).Times(1)

		view, err := s.queries.Resolve(ctx, hotelID, tariff.CategorySingle, nil)
		s.NoError(err)
		s.Equal(generalView, view)
	})

	s.Run("neither rate configured yields ErrNoTariffConfigured", func() {
		s.mockStore.EXPECT().FindPreferential(ctx, hotelID, tariff.CategoryDouble, agentID).
			Return(nil, notFoundErr()).Times(1)
		s.mockStore.EXPECT().FindGeneral(ctx, hotelID, tariff.CategoryDouble).
			Return(nil, notFoundErr()).Times(1)

		view, err := s.queries.Resolve(ctx, hotelID, tariff.CategoryDouble, &agentID)
		s.ErrorIs(err, errs.ErrNoTariffConfigured)
		s.Nil(view)
	})

	s.Run("preferential lookup failure is not swallowed", func() {
		dbErr := infra.WrapRepoErr("query failed", errors.New("connection reset"))
		s.mockStore.EXPECT().FindPreferential(ctx, hotelID, tariff.CategoryDouble, agentID).
			Return(nil, dbErr).Times(1)

		view, err := s.queries.Resolve(ctx, hotelID, tariff.CategoryDouble, &agentID)
		s.Error(err)
		s.NotErrorIs(err, errs.ErrNoTariffConfigured)
		s.Nil(view)
	})
}

func (s *TariffQueriesTestSuite) TestListByHotel() {
	ctx := context.Background()
	hotelID := uuid.New()

	views := []*queries.TariffView{
		builder.NewTariffBuilder().WithHotelID(hotelID).BuildView(),
		builder.NewTariffBuilder().WithHotelID(hotelID).WithAgent(uuid.New()).BuildView(),
	}

	s.Run("returns all tariffs for the hotel", func() {
		s.mockStore.EXPECT().ListByHotel(ctx, hotelID).Return(views, nil).Times(1)

		got, err := s.queries.ListByHotel(ctx, hotelID)
		s.NoError(err)
		s.Equal(views, got)
	})

	s.Run("store failure is wrapped", func() {
		s.mockStore.EXPECT().ListByHotel(ctx, hotelID).
			Return(nil, errors.New("connection reset")).Times(1)

		got, err := s.queries.ListByHotel(ctx, hotelID)
		s.Error(err)
		s.Nil(got)
	})
}

func TestTariffViewToDomain(t *testing.T) {
	t.Run("rebuilds a preferential tariff", func(t *testing.T) {
		agentID := uuid.New()
		view := builder.NewTariffBuilder().WithAgent(agentID).BuildView()

		trf, err := queries.TariffViewToDomain(view)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := trf.Category(); got != tariff.CategoryDouble {
			t.Errorf("category = %v, want double", got)
		}
		gotAgent, ok := trf.Scope().AgentID()
		if !ok || gotAgent != agentID {
			t.Errorf("scope agent = %v (%v), want %v", gotAgent, ok, agentID)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		view := builder.NewTariffBuilder().BuildView()
		view.Category = "suite"

		if _, err := queries.TariffViewToDomain(view); err == nil {
			t.Fatal("expected error for unknown category")
		}
	})
}
