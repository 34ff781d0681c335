package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allProviders = []Provider{ProviderCard, ProviderCrypto, ProviderStars}

func multiCurrencyGroup() PlanGroup {
	return PlanGroup{
		Key:        "standard::30",
		PeriodDays: 30,
		Variants: []PriceVariant{
			{ID: "rub", Name: "Standard", PeriodDays: 30, Currency: "RUB", Price: 199},
			{ID: "usd", Name: "Standard", PeriodDays: 30, Currency: "USD", Price: 2.5},
			{ID: "uah", Name: "Standard", PeriodDays: 30, Currency: "UAH", Price: 99},
			{ID: "xtr", Name: "Standard", PeriodDays: 30, Currency: "XTR", Price: 150},
		},
	}
}

func TestResolveVariantCryptoFollowsLanguagePriority(t *testing.T) {
	t.Parallel()

	policy := DefaultCurrencyPolicy()
	group := multiCurrencyGroup()

	tests := []struct {
		lang string
		want string
	}{
		{lang: "uk", want: "uah"},
		{lang: "uk-UA", want: "uah"},
		{lang: "en", want: "usd"},
		{lang: "ru", want: "usd"},
		{lang: "", want: "usd"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			variant, ok := ResolveVariant(group, ProviderCrypto, tt.lang, policy)
			require.True(t, ok)
			assert.Equal(t, tt.want, variant.ID)
		})
	}
}

func TestResolveVariantCryptoNeverUsesCardOrNativeCurrency(t *testing.T) {
	t.Parallel()

	policy := DefaultCurrencyPolicy()
	group := PlanGroup{Variants: []PriceVariant{
		{ID: "rub", Currency: "RUB", Price: 199},
		{ID: "xtr", Currency: "XTR", Price: 150},
	}}

	for _, lang := range []string{"uk", "en", "ru"} {
		_, ok := ResolveVariant(group, ProviderCrypto, lang, policy)
		assert.False(t, ok, lang)
	}
}

func TestResolveVariantCryptoFallsBackToRemainingVariants(t *testing.T) {
	t.Parallel()

	group := GroupVariants([]PriceVariant{
		{ID: "rub", Name: "Standard", PeriodDays: 30, Currency: "RUB", Price: 199},
		{ID: "eur", Name: "Standard", PeriodDays: 30, Currency: "EUR", Price: 3},
		{ID: "xtr", Name: "Standard", PeriodDays: 30, Currency: "XTR", Price: 150},
	})[0]

	for _, lang := range []string{"en", "uk"} {
		variant, ok := ResolveVariant(group, ProviderCrypto, lang, DefaultCurrencyPolicy())
		require.True(t, ok, lang)
		assert.Equal(t, "eur", variant.ID, lang)
	}

	assert.Equal(t, []Provider{ProviderCard, ProviderCrypto, ProviderStars}, AvailableProviders(group, allProviders, "en", DefaultCurrencyPolicy()))
}

func TestResolveVariantCardIsExclusive(t *testing.T) {
	t.Parallel()

	policy := DefaultCurrencyPolicy()

	variant, ok := ResolveVariant(multiCurrencyGroup(), ProviderCard, "en", policy)
	require.True(t, ok)
	assert.Equal(t, "rub", variant.ID)

	noRub := PlanGroup{Variants: []PriceVariant{
		{ID: "usd", Currency: "USD", Price: 2.5},
		{ID: "uah", Currency: "UAH", Price: 99},
	}}
	_, ok = ResolveVariant(noRub, ProviderCard, "en", policy)
	assert.False(t, ok)
}

func TestResolveVariantStarsUsesNativeCurrency(t *testing.T) {
	t.Parallel()

	variant, ok := ResolveVariant(multiCurrencyGroup(), ProviderStars, "en", DefaultCurrencyPolicy())
	require.True(t, ok)
	assert.Equal(t, "xtr", variant.ID)
}

func TestResolveVariantPrefersExplicitBinding(t *testing.T) {
	t.Parallel()

	group := multiCurrencyGroup()
	group.Variants = append(group.Variants, PriceVariant{
		ID: "tagged", Currency: "EUR", Price: 3, ProviderCode: "Crypto",
	})

	variant, ok := ResolveVariant(group, ProviderCrypto, "uk", DefaultCurrencyPolicy())
	require.True(t, ok)
	assert.Equal(t, "tagged", variant.ID)
}

func TestBindingOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExplicitProvider{Provider: ProviderStars}, BindingOf(PriceVariant{ProviderCode: " stars "}))
	assert.Equal(t, InferredFromCurrency{Currency: "USD"}, BindingOf(PriceVariant{ProviderCode: "paypal", Currency: "usd"}))
}

func TestDisplayPrice(t *testing.T) {
	t.Parallel()

	policy := DefaultCurrencyPolicy()

	tests := []struct {
		name    string
		group   PlanGroup
		enabled []Provider
		lang    string
		want    string
	}{
		{
			name:    "all providers in fixed order",
			group:   multiCurrencyGroup(),
			enabled: allProviders,
			lang:    "en",
			want:    "199 ₽ / 2.5 $ / 150 ⭐",
		},
		{
			name:    "ukrainian crypto price",
			group:   multiCurrencyGroup(),
			enabled: allProviders,
			lang:    "uk",
			want:    "199 ₽ / 99 ₴ / 150 ⭐",
		},
		{
			name:    "disabled provider is skipped",
			group:   multiCurrencyGroup(),
			enabled: []Provider{ProviderStars},
			lang:    "en",
			want:    "150 ⭐",
		},
		{
			name: "identical strings are collapsed",
			group: PlanGroup{Variants: []PriceVariant{
				{ID: "a", Currency: "USD", Price: 5, ProviderCode: "card"},
				{ID: "b", Currency: "USD", Price: 5},
			}},
			enabled: allProviders,
			lang:    "en",
			want:    "5 $",
		},
		{
			name:    "crypto falls back to a currency outside the priority list",
			group:   PlanGroup{Variants: []PriceVariant{{ID: "gbp", Currency: "GBP", Price: 4}}},
			enabled: allProviders,
			lang:    "en",
			want:    "4 GBP",
		},
		{
			name:    "nothing resolvable",
			group:   PlanGroup{Variants: []PriceVariant{{ID: "gbp", Currency: "GBP", Price: 4}}},
			enabled: []Provider{ProviderCard, ProviderStars},
			lang:    "en",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayPrice(tt.group, tt.enabled, tt.lang, policy))
		})
	}
}

func TestAvailableProviders(t *testing.T) {
	t.Parallel()

	group := PlanGroup{Variants: []PriceVariant{
		{ID: "xtr", Currency: "XTR", Price: 150},
		{ID: "usd", Currency: "USD", Price: 2},
	}}

	assert.Equal(t, []Provider{ProviderCrypto, ProviderStars}, AvailableProviders(group, allProviders, "ru", DefaultCurrencyPolicy()))
}

func TestFormatPriceUnknownCurrencyFallsBackToCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4.5 GBP", FormatPrice(PriceVariant{Currency: "gbp", Price: 4.5}))
}

func TestParseProvider(t *testing.T) {
	t.Parallel()

	provider, err := ParseProvider("CARD")
	require.NoError(t, err)
	assert.Equal(t, ProviderCard, provider)

	_, err = ParseProvider("paypal")
	require.Error(t, err)
}
