package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/vpnc/internal/domain"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

const DefaultRequestTimeout = 15 * time.Second

const (
	statusPath             = "/api/miniapp/status"
	serversPath            = "/api/miniapp/servers"
	plansPath              = "/api/miniapp/plans"
	configPath             = "/api/miniapp/config"
	activatePath           = "/api/miniapp/servers/activate"
	paymentsPath           = "/api/miniapp/payments"
	browserLoginStartPath  = "/api/miniapp/browser-login/start"
	browserLoginStatusPath = "/api/miniapp/browser-login/status"
)

// Client talks to the mini-app API. Every call is a JSON POST carrying the
// credential in the init_data field.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

func (c Client) FetchStatus(ctx context.Context, credential domain.Credential) (domain.SubscriptionStatus, error) {
	var payload statusResponse
	if err := c.post(ctx, statusPath, authRequest{InitData: string(credential)}, &payload); err != nil {
		return domain.SubscriptionStatus{}, fmt.Errorf("fetch status: %w", err)
	}
	return payload.toDomain()
}

func (c Client) FetchLocations(ctx context.Context, credential domain.Credential) ([]domain.Location, error) {
	var payload serversResponse
	if err := c.post(ctx, serversPath, authRequest{InitData: string(credential)}, &payload); err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	return payload.toDomain(), nil
}

func (c Client) FetchPlans(ctx context.Context, credential domain.Credential) ([]domain.PriceVariant, error) {
	var payload plansResponse
	if err := c.post(ctx, plansPath, authRequest{InitData: string(credential)}, &payload); err != nil {
		return nil, fmt.Errorf("fetch plans: %w", err)
	}
	return payload.toDomain(), nil
}

func (c Client) FetchConfig(ctx context.Context, credential domain.Credential) (domain.ConnectionConfig, error) {
	var payload configResponse
	if err := c.post(ctx, configPath, authRequest{InitData: string(credential)}, &payload); err != nil {
		return domain.ConnectionConfig{}, fmt.Errorf("fetch config: %w", err)
	}
	if strings.TrimSpace(payload.Config) == "" {
		return domain.ConnectionConfig{}, errors.New("fetch config: response missing config")
	}
	return domain.ConnectionConfig{ServerName: payload.ServerName, Payload: payload.Config}, nil
}

func (c Client) ActivateLocation(ctx context.Context, credential domain.Credential, locationID string) error {
	if locationID == "" {
		return errors.New("location id is required")
	}

	body := activateRequest{InitData: string(credential), ServerID: locationID}
	if err := c.post(ctx, activatePath, body, nil); err != nil {
		return fmt.Errorf("activate location %s: %w", locationID, err)
	}
	return nil
}

func (c Client) InitiatePayment(ctx context.Context, credential domain.Credential, request domain.PaymentRequest) (domain.PaymentContinuation, error) {
	body := paymentRequest{
		InitData:       string(credential),
		PlanID:         request.VariantID,
		Method:         string(request.Provider),
		IdempotencyKey: request.IdempotencyKey,
	}

	var payload paymentResponse
	if err := c.post(ctx, paymentsPath, body, &payload); err != nil {
		return domain.PaymentContinuation{}, fmt.Errorf("initiate payment: %w", err)
	}
	return payload.toDomain()
}

func (c Client) StartBrowserLogin(ctx context.Context) (domain.BrowserLogin, error) {
	var payload browserLoginResponse
	if err := c.post(ctx, browserLoginStartPath, struct{}{}, &payload); err != nil {
		return domain.BrowserLogin{}, fmt.Errorf("start browser login: %w", err)
	}
	if payload.LoginID == "" {
		return domain.BrowserLogin{}, errors.New("start browser login: response missing login id")
	}

	login, _ := payload.toDomain()
	if login.Status == "" {
		login.Status = domain.BrowserLoginPending
	}
	return login, nil
}

func (c Client) BrowserLoginStatus(ctx context.Context, loginID string) (domain.BrowserLogin, domain.Credential, error) {
	if loginID == "" {
		return domain.BrowserLogin{}, "", errors.New("login id is required")
	}

	var payload browserLoginResponse
	if err := c.post(ctx, browserLoginStatusPath, browserLoginStatusRequest{LoginID: loginID}, &payload); err != nil {
		return domain.BrowserLogin{}, "", fmt.Errorf("browser login status: %w", err)
	}
	if payload.LoginID == "" {
		payload.LoginID = flexID(loginID)
	}

	login, credential := payload.toDomain()
	return login, credential, nil
}

func (c Client) post(ctx context.Context, path string, body any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger().Debug("api response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeRemoteError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeRemoteError turns a non-2xx response into a domain.RemoteError.
// Rejected credentials also match domain.ErrCredentialRejected.
func decodeRemoteError(resp *http.Response) error {
	remote := &domain.RemoteError{StatusCode: resp.StatusCode}

	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err == nil {
		remote.Message = payload.message()
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %w", domain.ErrCredentialRejected, remote)
	}
	return remote
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
