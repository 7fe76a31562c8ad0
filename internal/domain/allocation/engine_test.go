//go:build unit

package allocation_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarifario/internal/domain/allocation"
	"tarifario/tests/common/builder"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustStay(t *testing.T, nights int, cost, price string) allocation.Stay {
	t.Helper()
	stay, err := builder.NewStayBuilder().
		WithNights(nights).
		WithTariff(builder.NewTariffBuilder().WithCost(dec(cost)).WithPrice(dec(price))).
		BuildDomain()
	require.NoError(t, err)
	return stay
}

func iva16(t *testing.T) allocation.TaxRule {
	t.Helper()
	r, err := allocation.NewAdValoremTax("IVA", dec("0.16"), true)
	require.NoError(t, err)
	return r
}

func saneamiento32(t *testing.T) allocation.TaxRule {
	t.Helper()
	r, err := allocation.NewFixedTax("Saneamiento", dec("32"), true)
	require.NoError(t, err)
	return r
}

func TestAllocate(t *testing.T) {
	t.Run("three nights with mixed taxes", func(t *testing.T) {
		stay := mustStay(t, 3, "1000", "1200")
		rules := []allocation.TaxRule{iva16(t), saneamiento32(t)}

		result, err := allocation.Allocate(stay, dec("3300"), rules)
		require.NoError(t, err)
		require.Len(t, result.Nights, 3)

		for _, night := range result.Nights {
			// (3300 - 3*32) / 3
			assert.True(t, night.BaseCost.Equal(dec("1068")), "base cost = %s", night.BaseCost)
			require.Len(t, night.Taxes, 2)

			iva := night.Taxes[0]
			assert.Equal(t, "IVA", iva.Name)
			assert.True(t, iva.Total.Equal(dec("170.88")), "IVA = %s", iva.Total)

			fixed := night.Taxes[1]
			assert.Equal(t, "Saneamiento", fixed.Name)
			assert.True(t, fixed.Total.Equal(dec("32")))

			assert.True(t, night.TotalWithTaxes.Equal(dec("1270.88")), "night total = %s", night.TotalWithTaxes)
			assert.True(t, night.SaleSubtotal.Equal(dec("1008")))
			assert.True(t, night.SaleTax.Equal(dec("192")))
			assert.True(t, night.SaleTotal.Equal(dec("1200")))
		}

		assert.True(t, result.Summary.TotalCostWithTaxes.Equal(dec("3812.64")), "cost total = %s", result.Summary.TotalCostWithTaxes)
		assert.True(t, result.Summary.TotalSale.Equal(dec("3600")), "sale total = %s", result.Summary.TotalSale)
		require.NotNil(t, result.Summary.MarkupPercent)
		assert.True(t, result.Summary.MarkupPercent.Equal(dec("-5.58")), "markup = %s", result.Summary.MarkupPercent)
	})

	t.Run("markup round trip", func(t *testing.T) {
		// one night, no taxes: sale 5800 vs cost 5000 must yield 16.00%
		stay := mustStay(t, 1, "5000", "5800")

		result, err := allocation.Allocate(stay, dec("5000"), nil)
		require.NoError(t, err)

		assert.True(t, result.Summary.TotalSale.Equal(dec("5800")))
		assert.True(t, result.Summary.TotalCostWithTaxes.Equal(dec("5000")))
		require.NotNil(t, result.Summary.MarkupPercent)
		assert.True(t, result.Summary.MarkupPercent.Equal(dec("16")))
	})

	t.Run("markup undefined at zero cost", func(t *testing.T) {
		stay := mustStay(t, 2, "0", "500")

		result, err := allocation.Allocate(stay, dec("0"), nil)
		require.NoError(t, err)

		assert.True(t, result.Summary.TotalCostWithTaxes.IsZero())
		assert.Nil(t, result.Summary.MarkupPercent)
	})

	t.Run("inactive rules do not participate", func(t *testing.T) {
		inactiveIVA, err := allocation.NewAdValoremTax("IVA", dec("0.16"), false)
		require.NoError(t, err)
		inactiveFee, err := allocation.NewFixedTax("Saneamiento", dec("32"), false)
		require.NoError(t, err)

		stay := mustStay(t, 2, "1000", "1200")
		result, err := allocation.Allocate(stay, dec("2000"), []allocation.TaxRule{inactiveIVA, inactiveFee})
		require.NoError(t, err)

		for _, night := range result.Nights {
			assert.Empty(t, night.Taxes)
			assert.True(t, night.BaseCost.Equal(dec("1000")))
			assert.True(t, night.TotalWithTaxes.Equal(dec("1000")))
		}
	})

	t.Run("fixed taxes carved out before the even split", func(t *testing.T) {
		stay := mustStay(t, 4, "1000", "1200")
		result, err := allocation.Allocate(stay, dec("4128"), []allocation.TaxRule{saneamiento32(t)})
		require.NoError(t, err)

		for _, night := range result.Nights {
			// (4128 - 4*32) / 4
			assert.True(t, night.BaseCost.Equal(dec("1000")))
			assert.True(t, night.TotalWithTaxes.Equal(dec("1032")))
		}
		assert.True(t, result.Summary.TotalCostWithTaxes.Equal(dec("4128")))
	})

	t.Run("base cost conservation within rounding tolerance", func(t *testing.T) {
		cases := []struct {
			name      string
			nights    int
			totalCost string
			fixed     string
		}{
			{name: "uneven split", nights: 3, totalCost: "100", fixed: "0"},
			{name: "uneven split with fixed tax", nights: 7, totalCost: "999.97", fixed: "15.5"},
			{name: "single night", nights: 1, totalCost: "1234.56", fixed: "32"},
			{name: "long stay", nights: 30, totalCost: "45678.91", fixed: "1.25"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				stay := mustStay(t, tc.nights, "1000", "1200")
				fee, err := allocation.NewFixedTax("fee", dec(tc.fixed), true)
				require.NoError(t, err)

				result, err := allocation.Allocate(stay, dec(tc.totalCost), []allocation.TaxRule{fee})
				require.NoError(t, err)

				sum := decimal.Zero
				for _, night := range result.Nights {
					sum = sum.Add(night.BaseCost)
				}

				nightsDec := decimal.NewFromInt(int64(tc.nights))
				expected := dec(tc.totalCost).Sub(nightsDec.Mul(dec(tc.fixed)))
				tolerance := nightsDec.Mul(dec("0.01"))
				diff := sum.Sub(expected).Abs()
				assert.True(t, diff.LessThanOrEqual(tolerance),
					"sum %s, expected %s, diff %s beyond tolerance %s", sum, expected, diff, tolerance)
			})
		}
	})

	t.Run("negative total cost rejected", func(t *testing.T) {
		stay := mustStay(t, 2, "1000", "1200")
		result, err := allocation.Allocate(stay, dec("-1"), nil)
		require.ErrorIs(t, err, allocation.ErrNegativeTotalCost)
		assert.Nil(t, result)
	})

	t.Run("identical input produces identical output", func(t *testing.T) {
		stay := mustStay(t, 3, "1000", "1200")
		rules := []allocation.TaxRule{iva16(t), saneamiento32(t)}

		first, err := allocation.Allocate(stay, dec("3300"), rules)
		require.NoError(t, err)
		second, err := allocation.Allocate(stay, dec("3300"), rules)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("allocation is not deterministic (-first +second):\n%s", diff)
		}
	})

	t.Run("changed tax set fully replaces the previous result", func(t *testing.T) {
		stay := mustStay(t, 3, "1000", "1200")

		withTaxes, err := allocation.Allocate(stay, dec("3300"), []allocation.TaxRule{iva16(t), saneamiento32(t)})
		require.NoError(t, err)
		withoutTaxes, err := allocation.Allocate(stay, dec("3300"), nil)
		require.NoError(t, err)

		assert.Empty(t, withoutTaxes.Nights[0].Taxes)
		assert.True(t, withoutTaxes.Nights[0].BaseCost.Equal(dec("1100")))
		assert.False(t, withoutTaxes.Summary.TotalCostWithTaxes.Equal(withTaxes.Summary.TotalCostWithTaxes))
	})
}

func TestNewStay(t *testing.T) {
	t.Run("checkout equal to checkin is rejected", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		trf, err := builder.NewTariffBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = allocation.NewStay(checkIn, checkIn, trf)
		require.ErrorIs(t, err, allocation.ErrInvalidDateRange)
	})

	t.Run("checkout before checkin is rejected", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		trf, err := builder.NewTariffBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = allocation.NewStay(checkIn, checkIn.AddDate(0, 0, -2), trf)
		require.ErrorIs(t, err, allocation.ErrInvalidDateRange)
	})

	t.Run("nil tariff is rejected", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := allocation.NewStay(checkIn, checkIn.AddDate(0, 0, 2), nil)
		require.ErrorIs(t, err, allocation.ErrMissingTariff)
	})

	t.Run("time-of-day is ignored when counting nights", func(t *testing.T) {
		trf, err := builder.NewTariffBuilder().BuildDomain()
		require.NoError(t, err)

		checkIn := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 3, 1, 15, 0, 0, time.UTC)
		stay, err := allocation.NewStay(checkIn, checkOut, trf)
		require.NoError(t, err)
		assert.Equal(t, 2, stay.Nights())
	})
}

func TestTaxRuleValidation(t *testing.T) {
	t.Run("ad-valorem rate above 1 rejected", func(t *testing.T) {
		_, err := allocation.NewAdValoremTax("IVA", dec("1.01"), true)
		require.ErrorIs(t, err, allocation.ErrInvalidTaxRate)
	})

	t.Run("ad-valorem negative rate rejected", func(t *testing.T) {
		_, err := allocation.NewAdValoremTax("IVA", dec("-0.1"), true)
		require.ErrorIs(t, err, allocation.ErrInvalidTaxRate)
	})

	t.Run("negative fixed amount rejected", func(t *testing.T) {
		_, err := allocation.NewFixedTax("fee", dec("-5"), true)
		require.ErrorIs(t, err, allocation.ErrNegativeTaxAmount)
	})
}
