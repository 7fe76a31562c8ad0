//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	reqdto "tarifario/internal/handler/dto/request"
	"tarifario/internal/usecase/queries"
)

// ReservationBuilder assembles the request DTOs and views around a single
// stay: quote requests, submission requests and the recorded submission.
type ReservationBuilder struct {
	hotelID   uuid.UUID
	category  string
	agentID   *uuid.UUID
	checkIn   time.Time
	checkOut  time.Time
	totalCost decimal.Decimal
	taxRules  []reqdto.TaxRuleRequest
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		hotelID:   uuid.New(),
		category:  "double",
		checkIn:   checkIn,
		checkOut:  checkIn.AddDate(0, 0, 3),
		totalCost: decimal.NewFromInt(3000),
		taxRules: []reqdto.TaxRuleRequest{
			{Name: "IVA", Kind: "ad_valorem", Rate: decimal.NewFromFloat(0.16), Active: true},
			{Name: "ISH", Kind: "ad_valorem", Rate: decimal.NewFromFloat(0.03), Active: true},
		},
	}
}

func (b *ReservationBuilder) WithHotelID(id uuid.UUID) *ReservationBuilder {
	b.hotelID = id
	return b
}

func (b *ReservationBuilder) WithCategory(category string) *ReservationBuilder {
	b.category = category
	return b
}

func (b *ReservationBuilder) WithAgent(agentID uuid.UUID) *ReservationBuilder {
	b.agentID = &agentID
	return b
}

func (b *ReservationBuilder) WithNights(n int) *ReservationBuilder {
	b.checkOut = b.checkIn.AddDate(0, 0, n)
	return b
}

func (b *ReservationBuilder) WithTotalCost(cost decimal.Decimal) *ReservationBuilder {
	b.totalCost = cost
	return b
}

func (b *ReservationBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		HotelID:   b.hotelID,
		Category:  b.category,
		AgentID:   b.agentID,
		CheckIn:   b.checkIn,
		CheckOut:  b.checkOut,
		TotalCost: b.totalCost,
		TaxRules:  b.taxRules,
	}
}

func (b *ReservationBuilder) BuildSubmitRequestDTO() reqdto.SubmitReservationRequest {
	return reqdto.SubmitReservationRequest{
		HotelID:   b.hotelID,
		Category:  b.category,
		AgentID:   b.agentID,
		CheckIn:   b.checkIn,
		CheckOut:  b.checkOut,
		TotalCost: b.totalCost,
		TaxRules:  b.taxRules,
	}
}

func (b *ReservationBuilder) BuildSubmissionView() *queries.SubmissionView {
	markup := decimal.NewFromFloat(18.5)
	return &queries.SubmissionView{
		ID:                 uuid.New(),
		HotelID:            b.hotelID,
		Category:           b.category,
		AgentID:            b.agentID,
		CheckIn:            b.checkIn,
		CheckOut:           b.checkOut,
		TotalSale:          decimal.NewFromInt(4176),
		TotalCostWithTaxes: decimal.NewFromInt(3570),
		MarkupPercent:      &markup,
		ExternalRef:        "RSV-2026-000123",
		SubmittedAt:        time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) BuildQuoteView(tariffView *queries.TariffView) *queries.QuoteView {
	nights := int(b.checkOut.Sub(b.checkIn).Hours() / 24)
	perNight := b.totalCost.Div(decimal.NewFromInt(int64(nights))).Round(2)
	views := make([]queries.NightView, nights)
	for i := range views {
		views[i] = queries.NightView{
			Night:          i + 1,
			BaseCost:       perNight,
			Taxes:          []queries.TaxLineView{},
			TotalWithTaxes: perNight,
			SaleSubtotal:   perNight,
			SaleTax:        decimal.Zero,
			SaleTotal:      perNight,
		}
	}
	return &queries.QuoteView{
		Tariff:   *tariffView,
		CheckIn:  b.checkIn,
		CheckOut: b.checkOut,
		Nights:   views,
		Summary: queries.SummaryView{
			TotalSale:          b.totalCost,
			TotalCostWithTaxes: b.totalCost,
			MarkupPercent:      nil,
		},
	}
}
