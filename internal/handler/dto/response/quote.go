package response

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

type TaxLineResponse struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Base         decimal.Decimal `json:"base"`
	RateOrAmount decimal.Decimal `json:"rateOrAmount"`
	Total        decimal.Decimal `json:"total"`
}

type NightResponse struct {
	Night          int               `json:"night"`
	BaseCost       decimal.Decimal   `json:"baseCost"`
	Taxes          []TaxLineResponse `json:"taxes"`
	TotalWithTaxes decimal.Decimal   `json:"totalCostWithTaxes"`
	SaleSubtotal   decimal.Decimal   `json:"saleSubtotal"`
	SaleTax        decimal.Decimal   `json:"saleTax"`
	SaleTotal      decimal.Decimal   `json:"saleTotal"`
}

type SummaryResponse struct {
	TotalSale          decimal.Decimal  `json:"totalSale"`
	TotalCostWithTaxes decimal.Decimal  `json:"totalCostWithTaxes"`
	MarkupPercent      *decimal.Decimal `json:"markupPercent"`
}

type QuoteResponse struct {
	Tariff   TariffResponse  `json:"tariff"`
	CheckIn  time.Time       `json:"checkIn"`
	CheckOut time.Time       `json:"checkOut"`
	Nights   []NightResponse `json:"nights"`
	Summary  SummaryResponse `json:"summary"`
}

func FromQuoteView(view *queries.QuoteView) (*QuoteResponse, error) {
	var resp QuoteResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map quote view")
	}
	return &resp, nil
}
