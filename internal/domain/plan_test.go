package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVariants() []PriceVariant {
	return []PriceVariant{
		{ID: "1", Name: "Standard", PeriodDays: 30, Currency: "RUB", Price: 199},
		{ID: "2", Name: "standard ", PeriodDays: 30, Currency: "USD", Price: 2.5, Description: "  one month  "},
		{ID: "3", Name: "Standard", PeriodDays: 90, Currency: "RUB", Price: 499},
		{ID: "4", Name: "Pro", PeriodDays: 365, Currency: "XTR", Price: 1500, IsTop: true},
		{ID: "5", Name: "STANDARD", PeriodDays: 30, Currency: "XTR", Price: 100, Description: "ignored"},
		{ID: "6", Name: "Pro  Max", PeriodDays: 30, Currency: "UAH", Price: 80},
	}
}

func TestNormalizePlanName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lower-cases", in: "Standard", want: "standard"},
		{name: "trims", in: "  basic ", want: "basic"},
		{name: "collapses inner whitespace", in: "Pro \t Max", want: "pro max"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePlanName(tt.in))
		})
	}
}

func TestGroupVariantsMergesByNameAndPeriod(t *testing.T) {
	t.Parallel()

	groups := GroupVariants(sampleVariants())
	require.Len(t, groups, 4)

	standard, ok := FindPlanGroup(groups, "standard::30")
	require.True(t, ok)
	require.Len(t, standard.Variants, 3)
	assert.Equal(t, []string{"1", "2", "5"}, variantIDs(standard.Variants))
	assert.Equal(t, "one month", standard.Description)
	assert.Equal(t, "Standard", standard.DisplayName)

	for _, group := range groups {
		for _, variant := range group.Variants {
			assert.Equal(t, group.Key, PlanGroupKey(variant.Name, variant.PeriodDays))
		}
	}
}

func TestGroupVariantsSortsTopFirstThenByPeriod(t *testing.T) {
	t.Parallel()

	groups := GroupVariants(sampleVariants())

	keys := make([]string, 0, len(groups))
	for _, group := range groups {
		keys = append(keys, group.Key)
	}
	assert.Equal(t, []string{"pro::365", "standard::30", "pro max::30", "standard::90"}, keys)

	for i := 1; i < len(groups); i++ {
		prev, cur := groups[i-1], groups[i]
		if prev.IsTop == cur.IsTop {
			assert.LessOrEqual(t, prev.PeriodDays, cur.PeriodDays)
		} else {
			assert.True(t, prev.IsTop)
		}
	}
}

func TestGroupVariantsTopIsSticky(t *testing.T) {
	t.Parallel()

	groups := GroupVariants([]PriceVariant{
		{ID: "a", Name: "Basic", PeriodDays: 7, Currency: "RUB"},
		{ID: "b", Name: "Basic", PeriodDays: 7, Currency: "USD", IsTop: true},
		{ID: "c", Name: "Basic", PeriodDays: 7, Currency: "XTR"},
	})

	require.Len(t, groups, 1)
	assert.True(t, groups[0].IsTop)
}

func TestGroupVariantsIsIdempotent(t *testing.T) {
	t.Parallel()

	variants := sampleVariants()
	first := GroupVariants(variants)
	second := GroupVariants(variants)

	assert.Equal(t, first, second)
}

func TestGroupVariantsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupVariants(nil))
}

func variantIDs(variants []PriceVariant) []string {
	ids := make([]string, 0, len(variants))
	for _, variant := range variants {
		ids = append(ids, variant.ID)
	}
	return ids
}
