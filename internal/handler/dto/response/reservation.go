package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tarifario/internal/usecase/queries"
)

type SubmissionResponse struct {
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
	Replayed           bool             `json:"replayed"`
}

func FromSubmissionView(view *queries.SubmissionView, replayed bool) *SubmissionResponse {
	return &SubmissionResponse{
		ID:                 view.ID,
		HotelID:            view.HotelID,
		Category:           view.Category,
		AgentID:            view.AgentID,
		CheckIn:            view.CheckIn,
		CheckOut:           view.CheckOut,
		TotalSale:          view.TotalSale,
		TotalCostWithTaxes: view.TotalCostWithTaxes,
		MarkupPercent:      view.MarkupPercent,
		ExternalRef:        view.ExternalRef,
		SubmittedAt:        view.SubmittedAt,
		Replayed:           replayed,
	}
}
