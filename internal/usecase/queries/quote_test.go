//go:build unit

package queries_test

import (
	"testing"

	"tarifario/internal/domain/allocation"
	"tarifario/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTaxRules(t *testing.T) {
	t.Run("builds ad-valorem and fixed rules", func(t *testing.T) {
		rules, err := queries.BuildTaxRules([]queries.TaxRuleInput{
			{Name: "IVA", Kind: "ad_valorem", Rate: decimal.NewFromFloat(0.16), Active: true},
			{Name: "Resort fee", Kind: "fixed", Amount: decimal.NewFromInt(50), Active: true},
		})
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, allocation.TaxAdValorem, rules[0].Kind())
		assert.Equal(t, allocation.TaxFixed, rules[1].Kind())
	})

	t.Run("rejects an unrecognized kind", func(t *testing.T) {
		_, err := queries.BuildTaxRules([]queries.TaxRuleInput{
			{Name: "IVA", Kind: "percentage", Rate: decimal.NewFromFloat(0.16), Active: true},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tax kind")
	})

	t.Run("empty input yields no rules", func(t *testing.T) {
		rules, err := queries.BuildTaxRules(nil)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}
