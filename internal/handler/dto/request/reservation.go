package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tarifario/internal/usecase/commands"
)

type SubmitReservationRequest struct {
	HotelID   uuid.UUID        `json:"hotelId" binding:"required"`
	Category  string           `json:"category" binding:"required,oneof=single double"`
	AgentID   *uuid.UUID       `json:"agentId,omitempty"`
	CheckIn   time.Time        `json:"checkIn" binding:"required"`
	CheckOut  time.Time        `json:"checkOut" binding:"required"`
	TotalCost decimal.Decimal  `json:"totalCost"`
	TaxRules  []TaxRuleRequest `json:"taxRules"`
}

func (r SubmitReservationRequest) ToInput() commands.SubmitReservationInput {
	return commands.SubmitReservationInput{
		HotelID:   r.HotelID,
		Category:  r.Category,
		AgentID:   r.AgentID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		TotalCost: r.TotalCost,
		TaxRules:  toTaxRuleInputs(r.TaxRules),
	}
}
