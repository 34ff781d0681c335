package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bnema/vpnc/internal/domain"
)

// flexID accepts identifiers encoded as JSON strings or numbers.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*id = flexID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*id = flexID(number.String())
	return nil
}

type authRequest struct {
	InitData string `json:"init_data"`
}

type activateRequest struct {
	InitData string `json:"init_data"`
	ServerID string `json:"server_id"`
}

type paymentRequest struct {
	InitData       string `json:"init_data"`
	PlanID         string `json:"plan_id"`
	Method         string `json:"method"`
	IdempotencyKey string `json:"idempotency_key"`
}

type browserLoginStatusRequest struct {
	LoginID string `json:"login_id"`
}

type serverDTO struct {
	ID          flexID `json:"id"`
	Name        string `json:"name"`
	FreeSlots   *int   `json:"free_slots"`
	Recommended *bool  `json:"recommended"`
}

type statusResponse struct {
	Status      string      `json:"status"`
	ExpiresAt   *time.Time  `json:"expires_at"`
	DaysLeft    *int        `json:"days_left"`
	Progress    *int        `json:"progress"`
	Servers     []serverDTO `json:"servers"`
	DisplayName string      `json:"display_name"`
}

func (r statusResponse) toDomain() (domain.SubscriptionStatus, error) {
	if strings.TrimSpace(r.Status) == "" {
		return domain.SubscriptionStatus{}, errors.New("status response missing status")
	}

	status := domain.SubscriptionStatus{
		State:       domain.ParseSubscriptionState(r.Status),
		ExpiresAt:   r.ExpiresAt,
		DaysLeft:    r.DaysLeft,
		DisplayName: r.DisplayName,
	}
	if r.Progress != nil {
		progress := domain.ClampPercent(*r.Progress)
		status.ProgressPct = &progress
	}
	for _, server := range r.Servers {
		status.AssignedServers = append(status.AssignedServers, domain.AssignedServer{
			ID:   string(server.ID),
			Name: server.Name,
		})
	}
	return status, nil
}

type serversResponse struct {
	Servers []serverDTO `json:"servers"`
}

func (r serversResponse) toDomain() []domain.Location {
	locations := make([]domain.Location, 0, len(r.Servers))
	for _, server := range r.Servers {
		locations = append(locations, domain.Location{
			ID:          string(server.ID),
			Name:        server.Name,
			FreeSlots:   server.FreeSlots,
			Recommended: server.Recommended,
		})
	}
	return locations
}

type planDTO struct {
	ID           flexID  `json:"id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"duration_days"`
	Currency     string  `json:"currency"`
	Price        float64 `json:"price"`
	Provider     string  `json:"provider"`
	IsTop        bool    `json:"is_top"`
	Description  string  `json:"description"`
}

type plansResponse struct {
	Plans []planDTO `json:"plans"`
}

func (r plansResponse) toDomain() []domain.PriceVariant {
	variants := make([]domain.PriceVariant, 0, len(r.Plans))
	for _, plan := range r.Plans {
		if plan.Price < 0 {
			continue
		}
		variants = append(variants, domain.PriceVariant{
			ID:           string(plan.ID),
			Name:         plan.Name,
			PeriodDays:   plan.DurationDays,
			Currency:     plan.Currency,
			Price:        plan.Price,
			ProviderCode: plan.Provider,
			IsTop:        plan.IsTop,
			Description:  plan.Description,
		})
	}
	return variants
}

type configResponse struct {
	ServerName string `json:"server_name"`
	Config     string `json:"config"`
}

type paymentResponse struct {
	PaymentURL string `json:"payment_url"`
	Invoice    string `json:"invoice"`
}

func (r paymentResponse) toDomain() (domain.PaymentContinuation, error) {
	switch {
	case r.Invoice != "":
		return domain.PaymentContinuation{Kind: domain.ContinuationInvoice, Invoice: r.Invoice}, nil
	case r.PaymentURL != "":
		return domain.PaymentContinuation{Kind: domain.ContinuationCheckoutURL, URL: r.PaymentURL}, nil
	default:
		return domain.PaymentContinuation{}, errors.New("payment response has neither payment_url nor invoice")
	}
}

type browserLoginResponse struct {
	LoginID   flexID     `json:"login_id"`
	Status    string     `json:"status"`
	BotURL    string     `json:"bot_url"`
	ExpiresAt *time.Time `json:"expires_at"`
	InitData  string     `json:"init_data"`
}

func (r browserLoginResponse) toDomain() (domain.BrowserLogin, domain.Credential) {
	login := domain.BrowserLogin{
		ID:     string(r.LoginID),
		Status: domain.BrowserLoginStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		BotURL: r.BotURL,
	}
	if r.ExpiresAt != nil {
		login.ExpiresAt = *r.ExpiresAt
	}
	return login, domain.Credential(r.InitData)
}

type errorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Error   json.RawMessage `json:"error"`
	Message json.RawMessage `json:"message"`
}

// message returns the first of detail, error and message that is a
// non-empty string.
func (r errorResponse) message() string {
	for _, raw := range []json.RawMessage{r.Detail, r.Error, r.Message} {
		if len(raw) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	return ""
}
