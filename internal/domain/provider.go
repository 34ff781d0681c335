package domain

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

type Provider string

const (
	ProviderCard   Provider = "card"
	ProviderCrypto Provider = "crypto"
	ProviderStars  Provider = "stars"
)

// DisplayOrder is the fixed order in which provider prices are shown.
var DisplayOrder = []Provider{ProviderCard, ProviderCrypto, ProviderStars}

func ParseProvider(raw string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(raw)))
	switch provider {
	case ProviderCard, ProviderCrypto, ProviderStars:
		return provider, nil
	default:
		return "", fmt.Errorf("unsupported payment method %q", raw)
	}
}

// ProviderBinding says how a variant maps to a provider: either the record
// names it, or it has to be inferred from the currency.
type ProviderBinding interface {
	isProviderBinding()
}

type ExplicitProvider struct {
	Provider Provider
}

type InferredFromCurrency struct {
	Currency string
}

func (ExplicitProvider) isProviderBinding()     {}
func (InferredFromCurrency) isProviderBinding() {}

func BindingOf(variant PriceVariant) ProviderBinding {
	if provider, err := ParseProvider(variant.ProviderCode); err == nil {
		return ExplicitProvider{Provider: provider}
	}
	return InferredFromCurrency{Currency: normalizeCurrency(variant.Currency)}
}

type CurrencyPolicy struct {
	// NativeCurrency is the host's in-app currency marker.
	NativeCurrency string
	// CardCurrency is reserved for the card provider.
	CardCurrency          string
	CryptoPriority        map[string][]string
	DefaultCryptoPriority []string
}

func DefaultCurrencyPolicy() CurrencyPolicy {
	return CurrencyPolicy{
		NativeCurrency: "XTR",
		CardCurrency:   "RUB",
		CryptoPriority: map[string][]string{
			"uk": {"UAH", "USD", "RUB"},
		},
		DefaultCryptoPriority: []string{"USD", "RUB", "UAH"},
	}
}

func (p CurrencyPolicy) CryptoPriorityFor(lang string) []string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if priority, ok := p.CryptoPriority[lang]; ok {
		return priority
	}
	if base, _, found := strings.Cut(strings.ReplaceAll(lang, "_", "-"), "-"); found {
		if priority, ok := p.CryptoPriority[base]; ok {
			return priority
		}
	}
	return p.DefaultCryptoPriority
}

// ResolveVariant picks the variant that represents provider's price inside
// group. Explicitly tagged variants win; otherwise the currency decides.
func ResolveVariant(group PlanGroup, provider Provider, lang string, policy CurrencyPolicy) (PriceVariant, bool) {
	inferred := make([]PriceVariant, 0, len(group.Variants))
	for _, variant := range group.Variants {
		switch binding := BindingOf(variant).(type) {
		case ExplicitProvider:
			if binding.Provider == provider {
				return variant, true
			}
		case InferredFromCurrency:
			inferred = append(inferred, variant)
		}
	}

	switch provider {
	case ProviderStars:
		return firstWithCurrency(inferred, policy.NativeCurrency)
	case ProviderCard:
		return firstWithCurrency(inferred, policy.CardCurrency)
	case ProviderCrypto:
		for _, currency := range policy.CryptoPriorityFor(lang) {
			if sameCurrency(currency, policy.CardCurrency) || sameCurrency(currency, policy.NativeCurrency) {
				continue
			}
			if variant, ok := firstWithCurrency(inferred, currency); ok {
				return variant, true
			}
		}
		for _, variant := range inferred {
			if !sameCurrency(variant.Currency, policy.CardCurrency) && !sameCurrency(variant.Currency, policy.NativeCurrency) {
				return variant, true
			}
		}
	}

	return PriceVariant{}, false
}

// AvailableProviders lists the enabled providers, in display order, that
// resolve to a variant in group.
func AvailableProviders(group PlanGroup, enabled []Provider, lang string, policy CurrencyPolicy) []Provider {
	providers := make([]Provider, 0, len(DisplayOrder))
	for _, provider := range DisplayOrder {
		if !containsProvider(enabled, provider) {
			continue
		}
		if _, ok := ResolveVariant(group, provider, lang, policy); ok {
			providers = append(providers, provider)
		}
	}
	return providers
}

// DisplayPrice joins the formatted price of every enabled provider. An empty
// result means no provider can sell this group.
func DisplayPrice(group PlanGroup, enabled []Provider, lang string, policy CurrencyPolicy) string {
	parts := make([]string, 0, len(DisplayOrder))
	seen := make(map[string]struct{}, len(DisplayOrder))

	for _, provider := range AvailableProviders(group, enabled, lang, policy) {
		variant, _ := ResolveVariant(group, provider, lang, policy)
		formatted := FormatPrice(variant)
		if _, ok := seen[formatted]; ok {
			continue
		}
		seen[formatted] = struct{}{}
		parts = append(parts, formatted)
	}

	return strings.Join(parts, " / ")
}

var currencySymbols = map[string]string{
	"RUB": "₽",
	"UAH": "₴",
	"USD": "$",
	"EUR": "€",
	"XTR": "⭐",
}

func FormatPrice(variant PriceVariant) string {
	currency := normalizeCurrency(variant.Currency)
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	return humanize.Ftoa(variant.Price) + " " + symbol
}

func firstWithCurrency(variants []PriceVariant, currency string) (PriceVariant, bool) {
	if currency == "" {
		return PriceVariant{}, false
	}
	for _, variant := range variants {
		if sameCurrency(variant.Currency, currency) {
			return variant, true
		}
	}
	return PriceVariant{}, false
}

func sameCurrency(a, b string) bool {
	return normalizeCurrency(a) == normalizeCurrency(b)
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func containsProvider(providers []Provider, provider Provider) bool {
	for _, p := range providers {
		if p == provider {
			return true
		}
	}
	return false
}
