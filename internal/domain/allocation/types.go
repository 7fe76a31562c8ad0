package allocation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tarifario/internal/domain/tariff"
)

var (
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrNegativeTotalCost = errors.New("total cost cannot be negative")
	ErrMissingTariff     = errors.New("stay requires a resolved tariff")
	ErrInvalidTaxRate    = errors.New("ad-valorem rate must be between 0 and 1")
	ErrNegativeTaxAmount = errors.New("fixed tax amount cannot be negative")
)

// TaxKind separates taxes proportional to the per-night base from flat
// per-night charges.
type TaxKind string

const (
	TaxAdValorem TaxKind = "ad_valorem"
	TaxFixed     TaxKind = "fixed"
)

// TaxRule is selected per reservation at allocation time; it is never
// persisted on a tariff.
type TaxRule struct {
	name   string
	kind   TaxKind
	rate   decimal.Decimal
	amount decimal.Decimal
	active bool
}

func NewAdValoremTax(name string, rate decimal.Decimal, active bool) (TaxRule, error) {
	one := decimal.NewFromInt(1)
	if rate.IsNegative() || rate.GreaterThan(one) {
		return TaxRule{}, ErrInvalidTaxRate
	}
	return TaxRule{name: name, kind: TaxAdValorem, rate: rate, active: active}, nil
}

func NewFixedTax(name string, amount decimal.Decimal, active bool) (TaxRule, error) {
	if amount.IsNegative() {
		return TaxRule{}, ErrNegativeTaxAmount
	}
	return TaxRule{name: name, kind: TaxFixed, amount: amount, active: active}, nil
}

func (t TaxRule) Name() string            { return t.name }
func (t TaxRule) Kind() TaxKind           { return t.kind }
func (t TaxRule) Rate() decimal.Decimal   { return t.rate }
func (t TaxRule) Amount() decimal.Decimal { return t.amount }
func (t TaxRule) Active() bool            { return t.active }

// Stay is a validated (check-in, check-out, tariff) triple. Construction
// rejects stays of less than one night so they never reach Allocate.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
	trf      *tariff.Tariff
}

func NewStay(checkIn, checkOut time.Time, trf *tariff.Tariff) (Stay, error) {
	if trf == nil {
		return Stay{}, ErrMissingTariff
	}
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidDateRange
	}
	return Stay{checkIn: in, checkOut: out, trf: trf}, nil
}

func (s Stay) CheckIn() time.Time     { return s.checkIn }
func (s Stay) CheckOut() time.Time    { return s.checkOut }
func (s Stay) Tariff() *tariff.Tariff { return s.trf }

// Nights is the whole-day difference between check-out and check-in.
func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TaxLine is one tax applied to one night. RateOrAmount carries the
// ad-valorem rate or the fixed amount, depending on Kind.
type TaxLine struct {
	Name         string
	Kind         TaxKind
	Base         decimal.Decimal
	RateOrAmount decimal.Decimal
	Total        decimal.Decimal
}

// Night is the cost and tax breakdown for a single night of the stay.
type Night struct {
	Index          int
	BaseCost       decimal.Decimal
	Taxes          []TaxLine
	TotalWithTaxes decimal.Decimal
	SaleSubtotal   decimal.Decimal
	SaleTax        decimal.Decimal
	SaleTotal      decimal.Decimal
}

// Summary aggregates the night rows. MarkupPercent is nil when the cost with
// taxes is zero; the figure is reported as undefined, not computed.
type Summary struct {
	TotalSale          decimal.Decimal
	TotalCostWithTaxes decimal.Decimal
	MarkupPercent      *decimal.Decimal
}

// Result is a complete allocation. It is rebuilt from scratch on every
// Allocate call; no field survives an input change.
type Result struct {
	Nights  []Night
	Summary Summary
}
