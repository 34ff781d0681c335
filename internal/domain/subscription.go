package domain

import (
	"strings"
	"time"
)

type SubscriptionState string

const (
	SubscriptionNew     SubscriptionState = "NEW"
	SubscriptionActive  SubscriptionState = "ACTIVE"
	SubscriptionBlocked SubscriptionState = "BLOCKED"
	SubscriptionExpired SubscriptionState = "EXPIRED"
)

// ParseSubscriptionState maps a wire value onto a known state. Unknown values
// are treated as NEW.
func ParseSubscriptionState(raw string) SubscriptionState {
	switch SubscriptionState(strings.ToUpper(strings.TrimSpace(raw))) {
	case SubscriptionActive:
		return SubscriptionActive
	case SubscriptionBlocked:
		return SubscriptionBlocked
	case SubscriptionExpired:
		return SubscriptionExpired
	default:
		return SubscriptionNew
	}
}

type AssignedServer struct {
	ID   string
	Name string
}

type SubscriptionStatus struct {
	State           SubscriptionState
	ExpiresAt       *time.Time
	DaysLeft        *int
	ProgressPct     *int
	AssignedServers []AssignedServer
	DisplayName     string
}

func (s SubscriptionStatus) HasAssignedServer() bool {
	return len(s.AssignedServers) > 0
}

func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

type Location struct {
	ID          string
	Name        string
	FreeSlots   *int
	Recommended *bool
}

func (l Location) IsRecommended() bool {
	return l.Recommended != nil && *l.Recommended
}

type ConnectionConfig struct {
	ServerName string
	Payload    string
}
