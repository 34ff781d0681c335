package domain

import (
	"fmt"
	"sort"
	"strings"
)

type PriceVariant struct {
	ID           string
	Name         string
	PeriodDays   int
	Currency     string
	Price        float64
	ProviderCode string
	IsTop        bool
	Description  string
}

// PlanGroup is one user-facing offer. Every variant shares the normalized name
// and PeriodDays of the group.
type PlanGroup struct {
	Key         string
	DisplayName string
	PeriodDays  int
	Description string
	IsTop       bool
	Variants    []PriceVariant
}

func NormalizePlanName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func PlanGroupKey(name string, periodDays int) string {
	return fmt.Sprintf("%s::%d", NormalizePlanName(name), periodDays)
}

// GroupVariants builds offers from a flat variant list. Groups are rebuilt from
// scratch on every call; top offers sort first, then by ascending period, and
// groups that tie keep their first-seen order.
func GroupVariants(variants []PriceVariant) []PlanGroup {
	groups := make([]PlanGroup, 0, len(variants))
	index := make(map[string]int, len(variants))

	for _, variant := range variants {
		key := PlanGroupKey(variant.Name, variant.PeriodDays)

		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, PlanGroup{
				Key:         key,
				DisplayName: strings.TrimSpace(variant.Name),
				PeriodDays:  variant.PeriodDays,
			})
			i = len(groups) - 1
		}

		group := &groups[i]
		group.Variants = append(group.Variants, variant)
		group.IsTop = group.IsTop || variant.IsTop
		if group.Description == "" {
			group.Description = strings.TrimSpace(variant.Description)
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].IsTop != groups[b].IsTop {
			return groups[a].IsTop
		}
		return groups[a].PeriodDays < groups[b].PeriodDays
	})

	return groups
}

func FindPlanGroup(groups []PlanGroup, key string) (PlanGroup, bool) {
	for _, group := range groups {
		if group.Key == key {
			return group, true
		}
	}
	return PlanGroup{}, false
}
