package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tarifario/internal/domain/hotel"
	"tarifario/internal/domain/tariff"
	"tarifario/internal/infra/db"
	"tarifario/internal/usecase/queries"
)

type HotelRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, h *hotel.Hotel) (*queries.HotelView, error)
}

type TariffRepository interface {
	// Upsert replaces any existing tariff for the same
	// (hotel, category, scope) triple.
	Upsert(ctx context.Context, dbtx db.DBTX, t *tariff.Tariff) (*queries.TariffView, error)
	// DeletePreferential is idempotent; deleting an absent entry is a no-op.
	DeletePreferential(ctx context.Context, dbtx db.DBTX, hotelID uuid.UUID, category tariff.Category, agentID uuid.UUID) error
}

type IdempotencyRecord struct {
	Key                uuid.UUID
	OperatorID         uuid.UUID
	Status             string
	RequestHash        string
	ResultSubmissionID *uuid.UUID
	ExpiresAt          time.Time
}

type IdempotencyRepository interface {
	// TryInsert claims the key; false means a live row already holds it.
	TryInsert(ctx context.Context, key, operatorID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, operatorID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, operatorID uuid.UUID, resultSubmissionID uuid.UUID) error
}

// SubmissionRecord is the write model for the audit row kept for every
// payload pushed to the reservation service.
type SubmissionRecord struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Category           tariff.Category
	AgentID            *uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	TotalSale          decimal.Decimal
	TotalCostWithTaxes decimal.Decimal
	MarkupPercent      *decimal.Decimal
	ExternalRef        string
	Payload            []byte
}

type SubmissionRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rec *SubmissionRecord) (*queries.SubmissionView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.SubmissionView, error)
}

// BookingNight mirrors the night-granular records the reservation service
// expects; one entry per night, never an aggregate.
type BookingNight struct {
	Total        decimal.Decimal `json:"total"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Taxes        decimal.Decimal `json:"taxes"`
	CostTotal    decimal.Decimal `json:"costTotal"`
	CostSubtotal decimal.Decimal `json:"costSubtotal"`
	CostTaxes    decimal.Decimal `json:"costTaxes"`
}

type BookingPayload struct {
	HotelID            uuid.UUID        `json:"hotelId"`
	Category           string           `json:"category"`
	Scope              string           `json:"scope"`
	AgentID            *uuid.UUID       `json:"agentId,omitempty"`
	CheckIn            time.Time        `json:"checkIn"`
	CheckOut           time.Time        `json:"checkOut"`
	Nights             []BookingNight   `json:"nights"`
	TotalSale          decimal.Decimal  `json:"totalSale"`
	TotalCostWithTaxes decimal.Decimal  `json:"totalCostWithTaxes"`
	MarkupPercent      *decimal.Decimal `json:"markupPercent,omitempty"`
}

type BookingReceipt struct {
	Reference string
}

type BookingGateway interface {
	Submit(ctx context.Context, payload BookingPayload) (*BookingReceipt, error)
}
