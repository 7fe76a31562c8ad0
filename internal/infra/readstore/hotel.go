package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tarifario/internal/infra"
	"tarifario/internal/infra/db"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/queries"
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

const findHotelByIDSQL = `
SELECT id, name, destination, created_at
FROM hotels
WHERE id = $1
`

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row := r.db.QueryRow(ctx, findHotelByIDSQL, id)

	var view queries.HotelView
	var createdAt pgtype.Timestamptz
	if err := row.Scan(&view.ID, &view.Name, &view.Destination, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

const listHotelsSQL = `
SELECT id, name, destination, created_at
FROM hotels
ORDER BY name, id
`

func (r *HotelReadStore) List(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.db.Query(ctx, listHotelsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	views := make([]*queries.HotelView, 0)
	for rows.Next() {
		var view queries.HotelView
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&view.ID, &view.Name, &view.Destination, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}
	return views, nil
}
