package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tarifario/internal/usecase/commands"
)

type RoomDetailsRequest struct {
	IncludesBreakfast bool             `json:"includesBreakfast"`
	BreakfastType     string           `json:"breakfastType"`
	BreakfastPrice    decimal.Decimal  `json:"breakfastPrice"`
	Comments          string           `json:"comments"`
	ExtraNightPrice   decimal.Decimal  `json:"extraNightPrice"`
	ExtraPersonPrice  *decimal.Decimal `json:"extraPersonPrice,omitempty"`
}

type UpsertGeneralTariffRequest struct {
	Category string             `json:"category" binding:"required,oneof=single double"`
	Cost     decimal.Decimal    `json:"cost" binding:"required"`
	Price    decimal.Decimal    `json:"price" binding:"required"`
	Room     RoomDetailsRequest `json:"room"`
}

func (r UpsertGeneralTariffRequest) ToDraftInput() commands.TariffDraftInput {
	return commands.TariffDraftInput{
		Category:          r.Category,
		Cost:              r.Cost,
		Price:             r.Price,
		IncludesBreakfast: r.Room.IncludesBreakfast,
		BreakfastType:     r.Room.BreakfastType,
		BreakfastPrice:    r.Room.BreakfastPrice,
		Comments:          r.Room.Comments,
		ExtraNightPrice:   r.Room.ExtraNightPrice,
		ExtraPersonPrice:  r.Room.ExtraPersonPrice,
	}
}

type AgentRefRequest struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type UpsertPreferentialTariffRequest struct {
	Agent    AgentRefRequest    `json:"agent" binding:"required"`
	Category string             `json:"category" binding:"required,oneof=single double"`
	Cost     decimal.Decimal    `json:"cost" binding:"required"`
	Price    decimal.Decimal    `json:"price" binding:"required"`
	Room     RoomDetailsRequest `json:"room"`
}

func (r UpsertPreferentialTariffRequest) ToAgentRef() commands.AgentRef {
	return commands.AgentRef{
		ID:    r.Agent.ID,
		Name:  r.Agent.Name,
		Email: r.Agent.Email,
	}
}

func (r UpsertPreferentialTariffRequest) ToDraftInput() commands.TariffDraftInput {
	return commands.TariffDraftInput{
		Category:          r.Category,
		Cost:              r.Cost,
		Price:             r.Price,
		IncludesBreakfast: r.Room.IncludesBreakfast,
		BreakfastType:     r.Room.BreakfastType,
		BreakfastPrice:    r.Room.BreakfastPrice,
		Comments:          r.Room.Comments,
		ExtraNightPrice:   r.Room.ExtraNightPrice,
		ExtraPersonPrice:  r.Room.ExtraPersonPrice,
	}
}

// DeletePreferentialTariffQuery comes in as query parameters on the DELETE
// route; gin binds it with ShouldBindQuery.
type DeletePreferentialTariffQuery struct {
	Category string    `form:"category" binding:"required,oneof=single double"`
	AgentID  uuid.UUID `form:"agentId" binding:"required"`
}
