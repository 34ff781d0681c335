package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialUnavailable = errors.New("credential unavailable")
	ErrStandaloneAccess      = errors.New("opened outside the platform host")
	ErrPlatformUnavailable   = errors.New("platform source unavailable")
	ErrCredentialRejected    = errors.New("credential rejected")
	ErrMethodUnavailable     = errors.New("method unavailable for this plan")
	ErrPaymentInProgress     = errors.New("payment already in progress")
	ErrActionInProgress      = errors.New("action already in progress")
	ErrPlanNotFound          = errors.New("plan not found")
	ErrNoAssignedLocation    = errors.New("no assigned location")
	ErrConfigNotLoaded       = errors.New("connection config not loaded")
	ErrLoginExpired          = errors.New("browser login expired")
)

// RemoteError is a failure reported by the remote API. Message is whatever the
// server put in the response body and may be empty.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote status %d: %s", e.StatusCode, e.Message)
}
