package allocation

import (
	"github.com/shopspring/decimal"
)

// Sale-side VAT is a statutory 16% on the traveler price, independent of the
// negotiated cost-side tax set.
var (
	saleTaxRate      = decimal.New(16, -2)
	saleSubtotalRate = decimal.New(84, -2)
)

// Allocate splits the provider's total cost across the nights of the stay and
// computes the per-night tax breakdown plus sale/cost/markup aggregates.
//
// Active fixed taxes are carved out of the aggregate before the even split so
// their flat amounts don't compound rounding error night by night; ad-valorem
// taxes are then computed on the remaining per-night base and the fixed
// amounts added back per night. Per-night tax amounts are rounded
// individually and the difference is not redistributed.
//
// The function is pure: same inputs, same output, and nothing is reused from
// a previous call.
func Allocate(stay Stay, totalCost decimal.Decimal, rules []TaxRule) (*Result, error) {
	nights := stay.Nights()
	if nights < 1 {
		return nil, ErrInvalidDateRange
	}
	if totalCost.IsNegative() {
		return nil, ErrNegativeTotalCost
	}

	adValorem, fixed := partitionActive(rules)

	fixedPerNight := decimal.Zero
	for _, r := range fixed {
		fixedPerNight = fixedPerNight.Add(r.Amount())
	}

	nightsDec := decimal.NewFromInt(int64(nights))
	baseCost := totalCost.Sub(nightsDec.Mul(fixedPerNight)).Div(nightsDec).Round(2)

	price := stay.Tariff().Price()
	saleSubtotal := price.Mul(saleSubtotalRate).Round(2)
	saleTax := price.Mul(saleTaxRate).Round(2)

	result := &Result{Nights: make([]Night, 0, nights)}
	totalSale := decimal.Zero
	totalCostWithTaxes := decimal.Zero

	for i := 1; i <= nights; i++ {
		taxes := make([]TaxLine, 0, len(adValorem)+len(fixed))
		nightTotal := baseCost

		for _, r := range adValorem {
			amount := baseCost.Mul(r.Rate()).Round(2)
			taxes = append(taxes, TaxLine{
				Name:         r.Name(),
				Kind:         TaxAdValorem,
				Base:         baseCost,
				RateOrAmount: r.Rate(),
				Total:        amount,
			})
			nightTotal = nightTotal.Add(amount)
		}
		for _, r := range fixed {
			taxes = append(taxes, TaxLine{
				Name:         r.Name(),
				Kind:         TaxFixed,
				Base:         baseCost,
				RateOrAmount: r.Amount(),
				Total:        r.Amount(),
			})
			nightTotal = nightTotal.Add(r.Amount())
		}

		result.Nights = append(result.Nights, Night{
			Index:          i,
			BaseCost:       baseCost,
			Taxes:          taxes,
			TotalWithTaxes: nightTotal,
			SaleSubtotal:   saleSubtotal,
			SaleTax:        saleTax,
			SaleTotal:      price,
		})

		totalSale = totalSale.Add(price)
		totalCostWithTaxes = totalCostWithTaxes.Add(nightTotal)
	}

	result.Summary = Summary{
		TotalSale:          totalSale.Round(2),
		TotalCostWithTaxes: totalCostWithTaxes.Round(2),
		MarkupPercent:      markupPercent(totalSale, totalCostWithTaxes),
	}

	return result, nil
}

func partitionActive(rules []TaxRule) (adValorem, fixed []TaxRule) {
	for _, r := range rules {
		if !r.Active() {
			continue
		}
		switch r.Kind() {
		case TaxAdValorem:
			adValorem = append(adValorem, r)
		case TaxFixed:
			fixed = append(fixed, r)
		}
	}
	return adValorem, fixed
}

func markupPercent(totalSale, totalCostWithTaxes decimal.Decimal) *decimal.Decimal {
	if totalCostWithTaxes.IsZero() {
		return nil
	}
	hundred := decimal.NewFromInt(100)
	m := totalSale.Sub(totalCostWithTaxes).Div(totalCostWithTaxes).Mul(hundred).Round(2)
	return &m
}
