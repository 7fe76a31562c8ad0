package readstore

import (
	"context"

	"github.com/google/uuid"

	"tarifario/internal/domain/tariff"
	"tarifario/internal/infra"
	"tarifario/internal/infra/db"
	"tarifario/internal/infra/repository/converter"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/queries"
)

type TariffReadStore struct {
	db db.DBTX
}

func NewTariffReadStore(dbtx db.DBTX) *TariffReadStore {
	return &TariffReadStore{db: dbtx}
}

const tariffColumns = `id, hotel_id, category, agent_id, cost, price, room_meta, created_at, updated_at`

const listTariffsByHotelSQL = `
SELECT ` + tariffColumns + `
FROM tariffs
WHERE hotel_id = $1
ORDER BY category, agent_id NULLS FIRST
`

func (r *TariffReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.TariffView, error) {
	rows, err := r.db.Query(ctx, listTariffsByHotelSQL, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tariffs by hotel", err)
	}
	defer rows.Close()

	views := make([]*queries.TariffView, 0)
	for rows.Next() {
		view, err := converter.TariffViewFromRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan tariff row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tariff rows", err)
	}
	return views, nil
}

const findGeneralTariffSQL = `
SELECT ` + tariffColumns + `
FROM tariffs
WHERE hotel_id = $1 AND category = $2 AND agent_id IS NULL
`

func (r *TariffReadStore) FindGeneral(ctx context.Context, hotelID uuid.UUID, category tariff.Category) (*queries.TariffView, error) {
	view, err := converter.TariffViewFromRow(r.db.QueryRow(ctx, findGeneralTariffSQL, hotelID, category.String()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("general tariff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get general tariff", err)
	}
	return view, nil
}

const findPreferentialTariffSQL = `
SELECT ` + tariffColumns + `
FROM tariffs
WHERE hotel_id = $1 AND category = $2 AND agent_id = $3
`

func (r *TariffReadStore) FindPreferential(ctx context.Context, hotelID uuid.UUID, category tariff.Category, agentID uuid.UUID) (*queries.TariffView, error) {
	view, err := converter.TariffViewFromRow(r.db.QueryRow(ctx, findPreferentialTariffSQL, hotelID, category.String(), agentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("preferential tariff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get preferential tariff", err)
	}
	return view, nil
}
