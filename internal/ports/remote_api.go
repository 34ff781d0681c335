package ports

import (
	"context"

	"github.com/bnema/vpnc/internal/domain"
)

type RemoteAPI interface {
	FetchStatus(ctx context.Context, credential domain.Credential) (domain.SubscriptionStatus, error)
	FetchLocations(ctx context.Context, credential domain.Credential) ([]domain.Location, error)
	FetchPlans(ctx context.Context, credential domain.Credential) ([]domain.PriceVariant, error)
	FetchConfig(ctx context.Context, credential domain.Credential) (domain.ConnectionConfig, error)
	ActivateLocation(ctx context.Context, credential domain.Credential, locationID string) error
	InitiatePayment(ctx context.Context, credential domain.Credential, request domain.PaymentRequest) (domain.PaymentContinuation, error)

	StartBrowserLogin(ctx context.Context) (domain.BrowserLogin, error)
	// BrowserLoginStatus returns the credential once the login is confirmed.
	BrowserLoginStatus(ctx context.Context, loginID string) (domain.BrowserLogin, domain.Credential, error)
}
