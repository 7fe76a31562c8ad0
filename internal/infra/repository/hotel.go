package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"tarifario/internal/domain/hotel"
	"tarifario/internal/infra"
	"tarifario/internal/infra/db"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/queries"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

const createHotelSQL = `
INSERT INTO hotels (name, destination)
VALUES ($1, $2)
RETURNING id, name, destination, created_at
`

func (r *HotelRepository) Create(ctx context.Context, dbtx db.DBTX, h *hotel.Hotel) (*queries.HotelView, error) {
	row := dbtx.QueryRow(ctx, createHotelSQL, h.Name(), h.Destination())

	var view queries.HotelView
	var createdAt pgtype.Timestamptz
	if err := row.Scan(&view.ID, &view.Name, &view.Destination, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to create hotel", err, classifyPgErr(err))
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

// classifyPgErr maps constraint violations onto repository error kinds so the
// usecase layer never sees raw PostgreSQL codes.
func classifyPgErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case "23505":
		return infra.KindDuplicateKey
	case "23503":
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}
