package application

import (
	"fmt"

	"github.com/bnema/vpnc/internal/domain"
)

type Action string

const (
	ActionRetry               Action = "retry"
	ActionGoHome              Action = "go-home"
	ActionOpenConfig          Action = "open-config"
	ActionOpenPlans           Action = "open-plans"
	ActionRefreshLocations    Action = "refresh-locations"
	ActionActivateLocation    Action = "activate-location"
	ActionOpenHelp            Action = "open-help"
	ActionSelectPlan          Action = "select-plan"
	ActionChoosePaymentMethod Action = "choose-payment-method"
	ActionCopyConfig          Action = "copy-config"
	ActionRefreshStatus       Action = "refresh-status"
	ActionStartBrowserLogin   Action = "start-browser-login"
	ActionPollBrowserLogin    Action = "poll-browser-login"
	ActionClearNotice         Action = "clear-notice"
)

func (a Action) Valid() bool {
	switch a {
	case ActionRetry, ActionGoHome, ActionOpenConfig, ActionOpenPlans, ActionRefreshLocations,
		ActionActivateLocation, ActionOpenHelp, ActionSelectPlan, ActionChoosePaymentMethod,
		ActionCopyConfig, ActionRefreshStatus, ActionStartBrowserLogin, ActionPollBrowserLogin,
		ActionClearNotice:
		return true
	default:
		return false
	}
}

// Command is one user intent. Only the fields relevant to Action are read.
type Command struct {
	Action     Action
	LocationID string
	PlanKey    string
	Provider   domain.Provider
}

type UnknownActionError struct {
	Action Action
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q", string(e.Action))
}
