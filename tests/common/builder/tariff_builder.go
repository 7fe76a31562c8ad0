//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tarifario/internal/domain/tariff"
	reqdto "tarifario/internal/handler/dto/request"
	"tarifario/internal/usecase/queries"
)

type TariffBuilder struct {
	hotelID           uuid.UUID
	category          tariff.Category
	agentID           *uuid.UUID
	cost              decimal.Decimal
	price             decimal.Decimal
	includesBreakfast bool
	breakfastType     string
	breakfastPrice    decimal.Decimal
	comments          string
	extraNightPrice   decimal.Decimal
	extraPersonPrice  *decimal.Decimal
}

func NewTariffBuilder() *TariffBuilder {
	extraPerson := decimal.NewFromInt(250)
	return &TariffBuilder{
		hotelID:           uuid.New(),
		category:          tariff.CategoryDouble,
		cost:              decimal.NewFromInt(1000),
		price:             decimal.NewFromInt(1200),
		includesBreakfast: true,
		breakfastType:     "continental",
		breakfastPrice:    decimal.NewFromInt(150),
		comments:          "rate negotiated for 2026 season",
		extraNightPrice:   decimal.NewFromInt(800),
		extraPersonPrice:  &extraPerson,
	}
}

func (b *TariffBuilder) WithHotelID(id uuid.UUID) *TariffBuilder {
	b.hotelID = id
	return b
}

func (b *TariffBuilder) WithCategory(c tariff.Category) *TariffBuilder {
	b.category = c
	if !c.AllowsExtraPerson() {
		b.extraPersonPrice = nil
	}
	return b
}

func (b *TariffBuilder) WithAgent(agentID uuid.UUID) *TariffBuilder {
	b.agentID = &agentID
	return b
}

func (b *TariffBuilder) WithCost(cost decimal.Decimal) *TariffBuilder {
	b.cost = cost
	return b
}

func (b *TariffBuilder) WithPrice(price decimal.Decimal) *TariffBuilder {
	b.price = price
	return b
}

func (b *TariffBuilder) WithBreakfast(included bool, kind string, price decimal.Decimal) *TariffBuilder {
	b.includesBreakfast = included
	b.breakfastType = kind
	b.breakfastPrice = price
	return b
}

func (b *TariffBuilder) WithExtraPersonPrice(price *decimal.Decimal) *TariffBuilder {
	b.extraPersonPrice = price
	return b
}

func (b *TariffBuilder) BuildRoomDetails() (tariff.RoomDetails, error) {
	return tariff.NewRoomDetails(
		b.category,
		b.includesBreakfast,
		b.breakfastType,
		b.breakfastPrice,
		b.comments,
		b.extraNightPrice,
		b.extraPersonPrice,
	)
}

func (b *TariffBuilder) BuildDraft() (tariff.Draft, error) {
	room, err := b.BuildRoomDetails()
	if err != nil {
		return tariff.Draft{}, err
	}
	return tariff.NewDraft(b.cost, b.price, room)
}

func (b *TariffBuilder) BuildDomain() (*tariff.Tariff, error) {
	draft, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}

	scope := tariff.GeneralScope()
	if b.agentID != nil {
		scope, err = tariff.PreferentialScope(*b.agentID)
		if err != nil {
			return nil, err
		}
	}

	return tariff.NewTariff(b.hotelID, b.category, scope, draft)
}

func (b *TariffBuilder) buildRoomRequest() reqdto.RoomDetailsRequest {
	return reqdto.RoomDetailsRequest{
		IncludesBreakfast: b.includesBreakfast,
		BreakfastType:     b.breakfastType,
		BreakfastPrice:    b.breakfastPrice,
		Comments:          b.comments,
		ExtraNightPrice:   b.extraNightPrice,
		ExtraPersonPrice:  b.extraPersonPrice,
	}
}

func (b *TariffBuilder) BuildUpsertGeneralRequestDTO() reqdto.UpsertGeneralTariffRequest {
	return reqdto.UpsertGeneralTariffRequest{
		Category: string(b.category),
		Cost:     b.cost,
		Price:    b.price,
		Room:     b.buildRoomRequest(),
	}
}

func (b *TariffBuilder) BuildUpsertPreferentialRequestDTO() reqdto.UpsertPreferentialTariffRequest {
	agentID := uuid.New()
	if b.agentID != nil {
		agentID = *b.agentID
	}
	return reqdto.UpsertPreferentialTariffRequest{
		Agent: reqdto.AgentRefRequest{
			ID:    agentID,
			Name:  "Viajes Horizonte",
			Email: "reservas@viajeshorizonte.example",
		},
		Category: string(b.category),
		Cost:     b.cost,
		Price:    b.price,
		Room:     b.buildRoomRequest(),
	}
}

func (b *TariffBuilder) BuildView() *queries.TariffView {
	scope := "general"
	if b.agentID != nil {
		scope = "preferential"
	}
	now := time.Now().UTC().Truncate(time.Second)
	return &queries.TariffView{
		ID:       uuid.New(),
		HotelID:  b.hotelID,
		Category: string(b.category),
		Scope:    scope,
		AgentID:  b.agentID,
		Cost:     b.cost,
		Price:    b.price,
		Room: queries.RoomDetailsView{
			IncludesBreakfast: b.includesBreakfast,
			BreakfastType:     b.breakfastType,
			BreakfastPrice:    b.breakfastPrice,
			Comments:          b.comments,
			ExtraNightPrice:   b.extraNightPrice,
			ExtraPersonPrice:  b.extraPersonPrice,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
