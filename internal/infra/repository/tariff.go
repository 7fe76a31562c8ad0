package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tarifario/internal/domain/tariff"
	"tarifario/internal/infra"
	"tarifario/internal/infra/db"
	"tarifario/internal/infra/repository/converter"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/queries"
)

type TariffRepository struct {
	db db.DBTX
}

func NewTariffRepository(dbtx db.DBTX) *TariffRepository {
	return &TariffRepository{db: dbtx}
}

// The two upsert statements target the partial unique indexes: one general
// rate per (hotel, category), one preferential rate per (hotel, category,
// agent). A second upsert for the same slot replaces the stored rate.
const upsertGeneralTariffSQL = `
INSERT INTO tariffs (hotel_id, category, agent_id, cost, price, room_meta)
VALUES ($1, $2, NULL, $3, $4, $5)
ON CONFLICT (hotel_id, category) WHERE agent_id IS NULL
DO UPDATE SET
    cost       = EXCLUDED.cost,
    price      = EXCLUDED.price,
    room_meta  = EXCLUDED.room_meta,
    updated_at = now()
RETURNING id, hotel_id, category, agent_id, cost, price, room_meta, created_at, updated_at
`

const upsertPreferentialTariffSQL = `
INSERT INTO tariffs (hotel_id, category, agent_id, cost, price, room_meta)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (hotel_id, category, agent_id) WHERE agent_id IS NOT NULL
DO UPDATE SET
    cost       = EXCLUDED.cost,
    price      = EXCLUDED.price,
    room_meta  = EXCLUDED.room_meta,
    updated_at = now()
RETURNING id, hotel_id, category, agent_id, cost, price, room_meta, created_at, updated_at
`

func (r *TariffRepository) Upsert(ctx context.Context, dbtx db.DBTX, t *tariff.Tariff) (*queries.TariffView, error) {
	roomMeta, err := converter.RoomMetaToJSON(t.Room())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode room metadata", err)
	}

	var row pgx.Row
	if agentID, ok := t.Scope().AgentID(); ok {
		row = dbtx.QueryRow(ctx, upsertPreferentialTariffSQL,
			t.HotelID(), t.Category().String(), agentID,
			pgconv.DecimalToNumeric(t.Cost()), pgconv.DecimalToNumeric(t.Price()), roomMeta)
	} else {
		row = dbtx.QueryRow(ctx, upsertGeneralTariffSQL,
			t.HotelID(), t.Category().String(),
			pgconv.DecimalToNumeric(t.Cost()), pgconv.DecimalToNumeric(t.Price()), roomMeta)
	}

	view, err := converter.TariffViewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert tariff", err, classifyPgErr(err))
	}
	return view, nil
}

const deletePreferentialTariffSQL = `
DELETE FROM tariffs
WHERE hotel_id = $1 AND category = $2 AND agent_id = $3
`

func (r *TariffRepository) DeletePreferential(ctx context.Context, dbtx db.DBTX, hotelID uuid.UUID, category tariff.Category, agentID uuid.UUID) error {
	// deleting an absent entry is a no-op, matched rows are not checked
	if _, err := dbtx.Exec(ctx, deletePreferentialTariffSQL, hotelID, category.String(), agentID); err != nil {
		return infra.WrapRepoErr("failed to delete preferential tariff", err)
	}
	return nil
}

