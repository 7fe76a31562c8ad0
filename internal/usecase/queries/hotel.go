package queries

import (
	"context"

	"github.com/google/uuid"

	"tarifario/internal/infra"
	"tarifario/internal/pkg/errs"
)

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context) ([]*HotelView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	store HotelReadStore
}

func NewHotelQueries(store HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{store: store}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to find hotel")
	}
	return view, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context) ([]*HotelView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list hotels")
	}
	return views, nil
}
