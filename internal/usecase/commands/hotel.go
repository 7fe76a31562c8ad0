package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tarifario/internal/domain/hotel"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

type CreateHotelRequest struct {
	Name        string
	Destination string
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, req CreateHotelRequest) (*queries.HotelView, error)
}

type hotelUseCaseImpl struct {
	hotelRepo HotelRepository
	db        *pgxpool.Pool
}

func NewHotelCommands(hotelRepo HotelRepository, db *pgxpool.Pool) HotelCommands {
	return &hotelUseCaseImpl{hotelRepo: hotelRepo, db: db}
}

func (uc *hotelUseCaseImpl) CreateHotel(ctx context.Context, req CreateHotelRequest) (*queries.HotelView, error) {
	h, err := hotel.NewHotel(req.Name, req.Destination)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	view, err := uc.hotelRepo.Create(ctx, uc.db, h)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}
