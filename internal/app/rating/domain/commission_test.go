package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeCommissions(t *testing.T) {
	t.Run("equal split across the flow", func(t *testing.T) {
		rules := []CommissionRule{
			{
				ID:                "c1",
				Name:              "standard incentive",
				CommissionPercent: dec("10"),
				Flow:              []Layer{LayerMarineAgent, LayerSellingAgent},
			},
		}

		res, err := DistributeCommissions(rules, dec("300"))
		require.NoError(t, err)

		assert.Equal(t, "30", res.TotalCommission.String())
		assert.Equal(t, "15", res.Distribution[LayerMarineAgent].String())
		assert.Equal(t, "15", res.Distribution[LayerSellingAgent].String())
	})

	t.Run("a layer in several flows accumulates", func(t *testing.T) {
		rules := []CommissionRule{
			{ID: "c1", CommissionPercent: dec("10"), Flow: []Layer{LayerSellingAgent, LayerMarineAgent}},
			{ID: "c2", CommissionPercent: dec("6"), Flow: []Layer{LayerSellingAgent}},
		}

		res, err := DistributeCommissions(rules, dec("100"))
		require.NoError(t, err)

		assert.Equal(t, "16", res.TotalCommission.String())
		// 5 from c1 plus 6 from c2.
		assert.Equal(t, "11", res.Distribution[LayerSellingAgent].String())
		assert.Equal(t, "5", res.Distribution[LayerMarineAgent].String())
	})

	t.Run("empty flow counts toward the total but distributes nothing", func(t *testing.T) {
		rules := []CommissionRule{
			{ID: "c1", CommissionPercent: dec("8")},
		}

		res, err := DistributeCommissions(rules, dec("100"))
		require.NoError(t, err)

		assert.Equal(t, "8", res.TotalCommission.String())
		assert.Empty(t, res.Distribution)
		require.Len(t, res.Applied, 1)
		assert.Equal(t, "8", res.Applied[0].Commission.String())
	})

	t.Run("no matched rules is a valid zero result", func(t *testing.T) {
		res, err := DistributeCommissions(nil, dec("100"))
		require.NoError(t, err)

		assert.True(t, res.TotalCommission.IsZero())
		assert.Empty(t, res.Distribution)
		assert.Empty(t, res.Applied)
	})

	t.Run("negative base price is rejected", func(t *testing.T) {
		_, err := DistributeCommissions(nil, dec("-0.01"))
		assert.ErrorIs(t, err, ErrNegativeBasePrice)
	})

	t.Run("three-way split keeps full precision until presentation", func(t *testing.T) {
		rules := []CommissionRule{
			{ID: "c1", CommissionPercent: dec("10"), Flow: []Layer{LayerMarineAgent, LayerCommercialAgent, LayerSellingAgent}},
		}

		res, err := DistributeCommissions(rules, dec("100"))
		require.NoError(t, err)

		sum := res.Distribution[LayerMarineAgent].
			Add(res.Distribution[LayerCommercialAgent]).
			Add(res.Distribution[LayerSellingAgent])
		// 10/3 three ways; the shares must still sum back to the total
		// within division precision.
		assert.True(t, res.TotalCommission.Sub(sum).Abs().LessThan(dec("0.000000000001")))
	})
}
