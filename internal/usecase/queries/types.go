package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HotelView is the read model for back-office hotel lists.
type HotelView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RoomDetailsView struct {
	IncludesBreakfast bool             `json:"includesBreakfast"`
	BreakfastType     string           `json:"breakfastType"`
	BreakfastPrice    decimal.Decimal  `json:"breakfastPrice"`
	Comments          string           `json:"comments"`
	ExtraNightPrice   decimal.Decimal  `json:"extraNightPrice"`
	ExtraPersonPrice  *decimal.Decimal `json:"extraPersonPrice,omitempty"`
}

type TariffView struct {
	ID        uuid.UUID       `json:"id"`
	HotelID   uuid.UUID       `json:"hotelId"`
	Category  string          `json:"category"`
	Scope     string          `json:"scope"`
	AgentID   *uuid.UUID      `json:"agentId,omitempty"`
	Cost      decimal.Decimal `json:"cost"`
	Price     decimal.Decimal `json:"price"`
	Room      RoomDetailsView `json:"room"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TaxRuleInput is the per-reservation tax selection supplied by the caller.
type TaxRuleInput struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	Active bool            `json:"active"`
}

type QuoteInput struct {
	HotelID   uuid.UUID
	Category  string
	AgentID   *uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	TotalCost decimal.Decimal
	TaxRules  []TaxRuleInput
}

type TaxLineView struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Base         decimal.Decimal `json:"base"`
	RateOrAmount decimal.Decimal `json:"rateOrAmount"`
	Total        decimal.Decimal `json:"total"`
}

type NightView struct {
	Night          int             `json:"night"`
	BaseCost       decimal.Decimal `json:"baseCost"`
	Taxes          []TaxLineView   `json:"taxes"`
	TotalWithTaxes decimal.Decimal `json:"totalCostWithTaxes"`
	SaleSubtotal   decimal.Decimal `json:"saleSubtotal"`
	SaleTax        decimal.Decimal `json:"saleTax"`
	SaleTotal      decimal.Decimal `json:"saleTotal"`
}

type SummaryView struct {
	TotalSale          decimal.Decimal  `json:"totalSale"`
	TotalCostWithTaxes decimal.Decimal  `json:"totalCostWithTaxes"`
	MarkupPercent      *decimal.Decimal `json:"markupPercent"`
}

// QuoteView is a complete allocation result plus the tariff it was priced
// from. Transient: never persisted, rebuilt on every request.
type QuoteView struct {
	Tariff   TariffView  `json:"tariff"`
	CheckIn  time.Time   `json:"checkIn"`
	CheckOut time.Time   `json:"checkOut"`
	Nights   []NightView `json:"nights"`
	Summary  SummaryView `json:"summary"`
}

type SubmissionView struct {
	ID                 uuid.UUID        `json:"id"`
	HotelID            uuid.UUID        `json:"hotelId"`
	Category           string           `json:"category"`
	AgentID            *uuid.UUID       `json:"agentId,omitempty"`
	CheckIn            time.Time        `json:"checkIn"`
	CheckOut           time.Time        `json:"checkOut"`
	TotalSale          decimal.Decimal  `json:"totalSale"`
	TotalCostWithTaxes decimal.Decimal  `json:"totalCostWithTaxes"`
	MarkupPercent      *decimal.Decimal `json:"markupPercent"`
	ExternalRef        string           `json:"externalRef"`
	SubmittedAt        time.Time        `json:"submittedAt"`
}
