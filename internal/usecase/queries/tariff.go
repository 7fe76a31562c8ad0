package queries

import (
	"context"

	"github.com/google/uuid"

	"tarifario/internal/domain/tariff"
	"tarifario/internal/infra"
	"tarifario/internal/pkg/errs"
)

type TariffQueries interface {
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*TariffView, error)
	// Resolve returns the preferential tariff for the exact
	// (hotel, category, agent) triple when one exists, otherwise the general
	// tariff; errs.ErrNoTariffConfigured when neither is present.
	Resolve(ctx context.Context, hotelID uuid.UUID, category tariff.Category, agentID *uuid.UUID) (*TariffView, error)
}

type TariffReadStore interface {
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*TariffView, error)
	FindGeneral(ctx context.Context, hotelID uuid.UUID, category tariff.Category) (*TariffView, error)
	FindPreferential(ctx context.Context, hotelID uuid.UUID, category tariff.Category, agentID uuid.UUID) (*TariffView, error)
}

type tariffQueriesImpl struct {
	store TariffReadStore
}

func NewTariffQueries(store TariffReadStore) TariffQueries {
	return &tariffQueriesImpl{store: store}
}

func (q *tariffQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*TariffView, error) {
	views, err := q.store.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list tariffs")
	}
	return views, nil
}

func (q *tariffQueriesImpl) Resolve(ctx context.Context, hotelID uuid.UUID, category tariff.Category, agentID *uuid.UUID) (*TariffView, error) {
	if agentID != nil {
		view, err := q.store.FindPreferential(ctx, hotelID, category, *agentID)
		if err == nil {
			return view, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrap(err, "failed to find preferential tariff")
		}
		// fall through to the general rate
	}

	view, err := q.store.FindGeneral(ctx, hotelID, category)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoTariffConfigured
		}
		return nil, errs.Wrap(err, "failed to find general tariff")
	}
	return view, nil
}

// TariffViewToDomain rebuilds the domain entity from its read model, e.g. to
// feed a resolved tariff into the allocation engine.
func TariffViewToDomain(view *TariffView) (*tariff.Tariff, error) {
	category, err := tariff.ParseCategory(view.Category)
	if err != nil {
		return nil, err
	}

	scope := tariff.GeneralScope()
	if view.AgentID != nil {
		scope, err = tariff.PreferentialScope(*view.AgentID)
		if err != nil {
			return nil, err
		}
	}

	room, err := tariff.NewRoomDetails(
		category,
		view.Room.IncludesBreakfast,
		view.Room.BreakfastType,
		view.Room.BreakfastPrice,
		view.Room.Comments,
		view.Room.ExtraNightPrice,
		view.Room.ExtraPersonPrice,
	)
	if err != nil {
		return nil, err
	}

	return tariff.Reconstruct(
		view.ID,
		view.HotelID,
		category,
		scope,
		view.Cost,
		view.Price,
		room,
		view.CreatedAt,
		view.UpdatedAt,
	), nil
}
