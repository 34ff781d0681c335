package application

import "github.com/bnema/vpnc/internal/domain"

// Snapshot is a read-only copy of the controller state for presentation.
type Snapshot struct {
	Screen       domain.Screen
	BackVisible  bool
	Language     string
	Status       *domain.SubscriptionStatus
	Locations    []domain.Location
	Plans        []PlanOffer
	SelectedPlan string
	Connection   *domain.ConnectionConfig
	Continuation *domain.PaymentContinuation
	Notice       *domain.Notice
	Busy         BusyFlags
}

type PlanOffer struct {
	Group        domain.PlanGroup
	DisplayPrice string
	Methods      []domain.Provider
	Paying       bool
}

type BusyFlags struct {
	Bootstrap    bool
	Locations    bool
	Plans        bool
	Config       bool
	BrowserLogin bool
	Activating   []string
	Paying       []string
}

func (b BusyFlags) IsActivating(locationID string) bool {
	for _, id := range b.Activating {
		if id == locationID {
			return true
		}
	}
	return false
}

func (s Snapshot) Offer(key string) (PlanOffer, bool) {
	for _, offer := range s.Plans {
		if offer.Group.Key == key {
			return offer, true
		}
	}
	return PlanOffer{}, false
}
