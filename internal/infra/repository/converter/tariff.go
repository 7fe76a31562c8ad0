package converter

import (
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"tarifario/internal/domain/tariff"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/queries"
)

// roomMetaJSON is the stored shape of the room metadata column. The keys are
// Spanish because the operator-facing systems that consume the column expect
// them that way; they never change casing or language.
type roomMetaJSON struct {
	Incluye            bool             `json:"incluye"`
	TipoDesayuno       string           `json:"tipo_desayuno"`
	Precio             decimal.Decimal  `json:"precio"`
	Comentarios        string           `json:"comentarios"`
	PrecioNocheExtra   decimal.Decimal  `json:"precio_noche_extra"`
	PrecioPersonaExtra *decimal.Decimal `json:"precio_persona_extra,omitempty"`
}

func RoomMetaToJSON(room tariff.RoomDetails) ([]byte, error) {
	meta := roomMetaJSON{
		Incluye:          room.IncludesBreakfast(),
		TipoDesayuno:     room.BreakfastType(),
		Precio:           room.BreakfastPrice(),
		Comentarios:      room.Comments(),
		PrecioNocheExtra: room.ExtraNightPrice(),
	}
	if extraPerson, ok := room.ExtraPersonPrice(); ok {
		meta.PrecioPersonaExtra = &extraPerson
	}
	return json.Marshal(meta)
}

func RoomViewFromJSON(data []byte) (queries.RoomDetailsView, error) {
	var meta roomMetaJSON
	if err := json.Unmarshal(data, &meta); err != nil {
		return queries.RoomDetailsView{}, err
	}
	return queries.RoomDetailsView{
		IncludesBreakfast: meta.Incluye,
		BreakfastType:     meta.TipoDesayuno,
		BreakfastPrice:    meta.Precio,
		Comments:          meta.Comentarios,
		ExtraNightPrice:   meta.PrecioNocheExtra,
		ExtraPersonPrice:  meta.PrecioPersonaExtra,
	}, nil
}

// TariffViewFromRow scans the canonical tariff column list shared by the
// write and read sides:
// id, hotel_id, category, agent_id, cost, price, room_meta, created_at, updated_at.
func TariffViewFromRow(row pgx.Row) (*queries.TariffView, error) {
	var view queries.TariffView
	var agentID pgtype.UUID
	var cost, price pgtype.Numeric
	var roomMeta []byte
	var createdAt, updatedAt pgtype.Timestamptz

	if err := row.Scan(&view.ID, &view.HotelID, &view.Category, &agentID, &cost, &price, &roomMeta, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	view.AgentID = pgconv.UUIDPtrFromPgtype(agentID)
	view.Scope = tariff.ScopeGeneral
	if view.AgentID != nil {
		view.Scope = tariff.ScopePreferential
	}

	var err error
	if view.Cost, err = pgconv.DecimalFromNumeric(cost); err != nil {
		return nil, err
	}
	if view.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, err
	}
	if view.Room, err = RoomViewFromJSON(roomMeta); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
