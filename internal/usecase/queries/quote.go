package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tarifario/internal/domain/allocation"
	"tarifario/internal/domain/tariff"
	"tarifario/internal/pkg/errs"
)

type QuoteQueries interface {
	// BuildQuote resolves the applicable tariff and runs the night
	// allocation. The result is transient; every call recomputes from
	// scratch.
	BuildQuote(ctx context.Context, in QuoteInput) (*QuoteView, error)
	// ExportQuote renders the same allocation as an xlsx workbook the
	// operator forwards to the client.
	ExportQuote(ctx context.Context, in QuoteInput) (*QuoteExport, error)
}

// QuoteRenderer turns a finished quote into a downloadable document.
type QuoteRenderer interface {
	Render(hotel *HotelView, quote *QuoteView) ([]byte, error)
}

type QuoteExport struct {
	Filename string
	Content  []byte
}

type quoteQueriesImpl struct {
	tariffs  TariffQueries
	hotels   HotelQueries
	renderer QuoteRenderer
}

func NewQuoteQueries(tariffs TariffQueries, hotels HotelQueries, renderer QuoteRenderer) QuoteQueries {
	return &quoteQueriesImpl{tariffs: tariffs, hotels: hotels, renderer: renderer}
}

func (q *quoteQueriesImpl) BuildQuote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	category, err := tariff.ParseCategory(in.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	view, err := q.tariffs.Resolve(ctx, in.HotelID, category, in.AgentID)
	if err != nil {
		return nil, err
	}

	trf, err := TariffViewToDomain(view)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	stay, err := allocation.NewStay(in.CheckIn, in.CheckOut, trf)
	if err != nil {
		if errors.Is(err, allocation.ErrInvalidDateRange) {
			return nil, errs.ErrInvalidDateRange
		}
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	rules, err := BuildTaxRules(in.TaxRules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	result, err := allocation.Allocate(stay, in.TotalCost, rules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	return quoteViewFromResult(view, stay, result), nil
}

func (q *quoteQueriesImpl) ExportQuote(ctx context.Context, in QuoteInput) (*QuoteExport, error) {
	hotel, err := q.hotels.GetByID(ctx, in.HotelID)
	if err != nil {
		return nil, err
	}

	quote, err := q.BuildQuote(ctx, in)
	if err != nil {
		return nil, err
	}

	content, err := q.renderer.Render(hotel, quote)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render quote workbook")
	}

	filename := fmt.Sprintf("quote_%s_%s.xlsx",
		slugify(hotel.Name), quote.CheckIn.Format("2006-01-02"))
	return &QuoteExport{Filename: filename, Content: content}, nil
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	return strings.Trim(string(out), "-")
}

// BuildTaxRules converts caller-supplied tax selections into domain rules.
func BuildTaxRules(inputs []TaxRuleInput) ([]allocation.TaxRule, error) {
	rules := make([]allocation.TaxRule, 0, len(inputs))
	for _, in := range inputs {
		var (
			rule allocation.TaxRule
			err  error
		)
		switch allocation.TaxKind(in.Kind) {
		case allocation.TaxFixed:
			rule, err = allocation.NewFixedTax(in.Name, in.Amount, in.Active)
		case allocation.TaxAdValorem:
			rule, err = allocation.NewAdValoremTax(in.Name, in.Rate, in.Active)
		default:
			return nil, errs.New("unknown tax kind: " + in.Kind)
		}
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func quoteViewFromResult(trf *TariffView, stay allocation.Stay, result *allocation.Result) *QuoteView {
	nights := make([]NightView, len(result.Nights))
	for i, night := range result.Nights {
		taxes := make([]TaxLineView, len(night.Taxes))
		for j, line := range night.Taxes {
			taxes[j] = TaxLineView{
				Name:         line.Name,
				Kind:         string(line.Kind),
				Base:         line.Base,
				RateOrAmount: line.RateOrAmount,
				Total:        line.Total,
			}
		}
		nights[i] = NightView{
			Night:          night.Index,
			BaseCost:       night.BaseCost,
			Taxes:          taxes,
			TotalWithTaxes: night.TotalWithTaxes,
			SaleSubtotal:   night.SaleSubtotal,
			SaleTax:        night.SaleTax,
			SaleTotal:      night.SaleTotal,
		}
	}

	return &QuoteView{
		Tariff:   *trf,
		CheckIn:  stay.CheckIn(),
		CheckOut: stay.CheckOut(),
		Nights:   nights,
		Summary: SummaryView{
			TotalSale:          result.Summary.TotalSale,
			TotalCostWithTaxes: result.Summary.TotalCostWithTaxes,
			MarkupPercent:      result.Summary.MarkupPercent,
		},
	}
}
