//go:build unit

package tariff_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarifario/internal/domain/tariff"
	"tarifario/tests/common/builder"
)

type testCase struct {
	name   string
	mutate func(*builder.TariffBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewTariffBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestTariff(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewTariffBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, tariff.CategoryDouble, actual.Category())
		assert.False(t, actual.Scope().IsPreferential())
		assert.True(t, actual.Cost().Equal(decimal.NewFromInt(1000)))
		assert.True(t, actual.Price().Equal(decimal.NewFromInt(1200)))
		assert.True(t, actual.Room().IncludesBreakfast())

		extra, ok := actual.Room().ExtraPersonPrice()
		require.True(t, ok)
		assert.True(t, extra.Equal(decimal.NewFromInt(250)))
	})

	t.Run("preferential tariff carries the agent", func(t *testing.T) {
		agentID := uuid.New()
		actual, err := builder.NewTariffBuilder().WithAgent(agentID).BuildDomain()
		require.NoError(t, err)

		require.True(t, actual.Scope().IsPreferential())
		got, ok := actual.Scope().AgentID()
		require.True(t, ok)
		assert.Equal(t, agentID, got)
		assert.Equal(t, "preferential", actual.Scope().String())
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative cost",
				mutate: func(b *builder.TariffBuilder) { b.WithCost(decimal.NewFromInt(-1)) },
				errIs:  tariff.ErrNegativeCost,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.TariffBuilder) { b.WithPrice(decimal.NewFromInt(-1)) },
				errIs:  tariff.ErrNegativePrice,
			},
			{
				name:   "zero cost is allowed",
				mutate: func(b *builder.TariffBuilder) { b.WithCost(decimal.Zero) },
			},
			{
				name: "negative breakfast price",
				mutate: func(b *builder.TariffBuilder) {
					b.WithBreakfast(true, "buffet", decimal.NewFromInt(-10))
				},
				errIs: tariff.ErrNegativeAmount,
			},
		})
	})

	t.Run("breakfast metadata validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "included breakfast requires a type",
				mutate: func(b *builder.TariffBuilder) {
					b.WithBreakfast(true, "", decimal.NewFromInt(150))
				},
				errIs: tariff.ErrBreakfastTypeRequired,
			},
			{
				name: "no breakfast needs no type",
				mutate: func(b *builder.TariffBuilder) {
					b.WithBreakfast(false, "", decimal.Zero)
				},
			},
		})
	})

	t.Run("extra person price only for double rooms", func(t *testing.T) {
		extra := decimal.NewFromInt(250)
		_, err := builder.NewTariffBuilder().
			WithCategory(tariff.CategorySingle).
			WithExtraPersonPrice(&extra).
			BuildDomain()
		require.ErrorIs(t, err, tariff.ErrExtraPersonNotAllowed)
	})

	t.Run("single room drops the extra person surcharge", func(t *testing.T) {
		actual, err := builder.NewTariffBuilder().
			WithCategory(tariff.CategorySingle).
			BuildDomain()
		require.NoError(t, err)

		_, ok := actual.Room().ExtraPersonPrice()
		assert.False(t, ok)
	})
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"single", "double"} {
		c, err := tariff.ParseCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, c.String())
	}

	for _, invalid := range []string{"", "triple", "Single", "DOUBLE"} {
		_, err := tariff.ParseCategory(invalid)
		require.ErrorIs(t, err, tariff.ErrInvalidCategory, "input %q", invalid)
	}
}

func TestPreferentialScope(t *testing.T) {
	t.Run("nil agent rejected", func(t *testing.T) {
		_, err := tariff.PreferentialScope(uuid.Nil)
		require.ErrorIs(t, err, tariff.ErrMissingAgent)
	})

	t.Run("general scope has no agent", func(t *testing.T) {
		s := tariff.GeneralScope()
		_, ok := s.AgentID()
		assert.False(t, ok)
		assert.Equal(t, "general", s.String())
	})
}
