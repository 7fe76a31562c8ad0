package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tarifario/internal/usecase/queries"
)

type TaxRuleRequest struct {
	Name   string          `json:"name" binding:"required"`
	Kind   string          `json:"kind" binding:"required,oneof=ad_valorem fixed"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	Active bool            `json:"active"`
}

type QuoteRequest struct {
	HotelID   uuid.UUID        `json:"hotelId" binding:"required"`
	Category  string           `json:"category" binding:"required,oneof=single double"`
	AgentID   *uuid.UUID       `json:"agentId,omitempty"`
	CheckIn   time.Time        `json:"checkIn" binding:"required"`
	CheckOut  time.Time        `json:"checkOut" binding:"required"`
	TotalCost decimal.Decimal  `json:"totalCost"`
	TaxRules  []TaxRuleRequest `json:"taxRules"`
}

func (r QuoteRequest) ToInput() queries.QuoteInput {
	return queries.QuoteInput{
		HotelID:   r.HotelID,
		Category:  r.Category,
		AgentID:   r.AgentID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		TotalCost: r.TotalCost,
		TaxRules:  toTaxRuleInputs(r.TaxRules),
	}
}

func toTaxRuleInputs(rules []TaxRuleRequest) []queries.TaxRuleInput {
	inputs := make([]queries.TaxRuleInput, len(rules))
	for i, rule := range rules {
		inputs[i] = queries.TaxRuleInput{
			Name:   rule.Name,
			Kind:   rule.Kind,
			Rate:   rule.Rate,
			Amount: rule.Amount,
			Active: rule.Active,
		}
	}
	return inputs
}
