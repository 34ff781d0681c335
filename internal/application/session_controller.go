package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
	"github.com/cenkalti/backoff/v4"
	"github.com/filecoin-project/go-clock"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultNoticeTTL         = 4 * time.Second
	DefaultLoginPollInterval = 2 * time.Second
	defaultLoginTTL          = 10 * time.Minute
)

var ErrBrowserLoginDisabled = errors.New("browser login is disabled")

type CredentialSource interface {
	Resolve(ctx context.Context) (domain.Credential, error)
}

type ControllerOptions struct {
	// Language overrides the language announced by the credential.
	Language          string
	Providers         []domain.Provider
	Policy            domain.CurrencyPolicy
	BrowserLogin      bool
	ReconcileDelay    time.Duration
	NoticeTTL         time.Duration
	LoginPollInterval time.Duration
}

// busyState counts waiters for shared fetches so a caller that leaves early
// does not clear the flag for the ones still waiting.
type busyState struct {
	bootstrap    bool
	locations    int
	plans        int
	config       int
	browserLogin bool
	activating   map[string]struct{}
}

// Controller owns the session: screen, credential, fetched data, notice and
// busy flags. Presentation adapters read it through Snapshot and drive it
// through actions.
type Controller struct {
	credentials CredentialSource
	api         ports.RemoteAPI
	clipboard   ports.Clipboard
	payments    *PaymentOrchestrator
	clock       ports.Clock
	opts        ControllerOptions
	logger      *zap.Logger

	mu           sync.Mutex
	screen       domain.Screen
	credential   domain.Credential
	lang         string
	status       *domain.SubscriptionStatus
	locations    []domain.Location
	plans        []domain.PlanGroup
	selectedPlan string
	connection   *domain.ConnectionConfig
	continuation *domain.PaymentContinuation
	login        *domain.BrowserLogin
	loginCancel  context.CancelFunc
	notice       *domain.Notice
	noticeSeq    uint64
	noticeTimer  *clock.Timer
	busy         busyState

	flights singleflight.Group
	tasks   conc.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	changes chan struct{}
}

func NewController(credentials CredentialSource, api ports.RemoteAPI, clipboard ports.Clipboard, clock ports.Clock, opts ControllerOptions, logger *zap.Logger) *Controller {
	if clock == nil {
		clock = ports.NewSystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(opts.Providers) == 0 {
		opts.Providers = append([]domain.Provider(nil), domain.DisplayOrder...)
	}
	if opts.Policy.NativeCurrency == "" && opts.Policy.CardCurrency == "" {
		opts.Policy = domain.DefaultCurrencyPolicy()
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = DefaultNoticeTTL
	}
	if opts.LoginPollInterval <= 0 {
		opts.LoginPollInterval = DefaultLoginPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		credentials: credentials,
		api:         api,
		clipboard:   clipboard,
		clock:       clock,
		opts:        opts,
		logger:      logger,
		screen:      domain.LoadingScreen(),
		lang:        MatchLanguage(opts.Language),
		busy:        busyState{activating: make(map[string]struct{})},
		ctx:         ctx,
		cancel:      cancel,
		changes:     make(chan struct{}, 1),
	}
	c.payments = NewPaymentOrchestrator(api, clock, PaymentOptions{
		Providers:      opts.Providers,
		Policy:         opts.Policy,
		ReconcileDelay: opts.ReconcileDelay,
		Reconcile:      c.reconcile,
		Changed:        c.notify,
	}, logger.Named("payments"))

	return c
}

// Changes signals that a new snapshot is available. Signals coalesce.
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

// Wait blocks until background fetches and scheduled reconciles are done.
func (c *Controller) Wait() {
	c.tasks.Wait()
	c.payments.Wait()
}

func (c *Controller) Close() {
	c.cancel()

	c.mu.Lock()
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
	c.mu.Unlock()

	c.payments.Close()
	c.tasks.Wait()
}

func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd.Action {
	case ActionRetry:
		return c.Retry(ctx)
	case ActionGoHome:
		c.GoHome()
		return nil
	case ActionOpenConfig:
		return c.OpenConfig(ctx)
	case ActionOpenPlans:
		return c.OpenPlans(ctx)
	case ActionRefreshLocations:
		return c.RefreshLocations(ctx)
	case ActionActivateLocation:
		return c.ActivateLocation(ctx, cmd.LocationID)
	case ActionOpenHelp:
		c.OpenHelp()
		return nil
	case ActionSelectPlan:
		return c.SelectPlan(cmd.PlanKey)
	case ActionChoosePaymentMethod:
		_, err := c.ChoosePaymentMethod(ctx, cmd.PlanKey, cmd.Provider)
		return err
	case ActionCopyConfig:
		return c.CopyConfig(ctx)
	case ActionRefreshStatus:
		return c.RefreshStatus(ctx)
	case ActionStartBrowserLogin:
		return c.StartBrowserLogin(ctx)
	case ActionPollBrowserLogin:
		return c.PollBrowserLogin(ctx)
	case ActionClearNotice:
		c.ClearNotice()
		return nil
	default:
		return UnknownActionError{Action: cmd.Action}
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{
		Screen:       c.screen,
		BackVisible:  c.screen.BackVisible(),
		Language:     c.lang,
		Locations:    append([]domain.Location(nil), c.locations...),
		SelectedPlan: c.selectedPlan,
		Busy: BusyFlags{
			Bootstrap:    c.busy.bootstrap,
			Locations:    c.busy.locations > 0,
			Plans:        c.busy.plans > 0,
			Config:       c.busy.config > 0,
			BrowserLogin: c.busy.browserLogin,
			Activating:   sortedKeys(c.busy.activating),
			Paying:       c.payments.PendingGroups(),
		},
	}
	sort.Strings(snapshot.Busy.Paying)

	if c.status != nil {
		status := *c.status
		snapshot.Status = &status
	}
	if c.connection != nil {
		connection := *c.connection
		snapshot.Connection = &connection
	}
	if c.continuation != nil {
		continuation := *c.continuation
		snapshot.Continuation = &continuation
	}
	if c.notice != nil {
		notice := *c.notice
		snapshot.Notice = &notice
	}

	snapshot.Plans = make([]PlanOffer, 0, len(c.plans))
	for _, group := range c.plans {
		snapshot.Plans = append(snapshot.Plans, PlanOffer{
			Group:        group,
			DisplayPrice: domain.DisplayPrice(group, c.opts.Providers, c.lang, c.opts.Policy),
			Methods:      domain.AvailableProviders(group, c.opts.Providers, c.lang, c.opts.Policy),
			Paying:       c.payments.Pending(group.Key),
		})
	}

	return snapshot
}

// Start runs the bootstrap from the initial Loading screen.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.busy.bootstrap {
		c.mu.Unlock()
		return domain.ErrActionInProgress
	}
	if c.screen.Kind != domain.ScreenLoading {
		c.mu.Unlock()
		return nil
	}
	c.busy.bootstrap = true
	c.mu.Unlock()
	c.notify()

	defer c.endBootstrap()
	return c.bootstrap(ctx)
}

// Retry restarts the bootstrap from a fatal error or a login gate.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	if c.busy.bootstrap {
		c.mu.Unlock()
		return domain.ErrActionInProgress
	}
	if c.screen.Kind != domain.ScreenLoading {
		c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventRetry})
		if c.screen.Kind != domain.ScreenLoading {
			c.mu.Unlock()
			return nil
		}
	}
	c.resetSessionLocked()
	c.busy.bootstrap = true
	c.mu.Unlock()
	c.notify()

	defer c.endBootstrap()
	return c.bootstrap(ctx)
}

func (c *Controller) GoHome() {
	c.transition(domain.ScreenEvent{Kind: domain.EventBack})
}

func (c *Controller) OpenHelp() {
	c.transition(domain.ScreenEvent{Kind: domain.EventOpenHelp})
}

// OpenConfig moves Home to Config and loads the connection config. Without an
// assigned server the screen does not change.
func (c *Controller) OpenConfig(ctx context.Context) error {
	c.mu.Lock()
	hasLocation := c.status != nil && c.status.HasAssignedServer()
	if c.screen.Kind != domain.ScreenHome {
		c.mu.Unlock()
		return nil
	}
	if !hasLocation {
		c.mu.Unlock()
		return domain.ErrNoAssignedLocation
	}
	c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventOpenConfig, HasLocation: hasLocation})
	credential := c.credential
	c.mu.Unlock()
	c.notify()

	return c.loadConfig(ctx, credential)
}

func (c *Controller) OpenPlans(ctx context.Context) error {
	c.mu.Lock()
	if c.screen.Kind != domain.ScreenHome {
		c.mu.Unlock()
		return nil
	}
	c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventOpenPlans})
	c.mu.Unlock()
	c.notify()

	return c.RefreshPlans(ctx)
}

func (c *Controller) RefreshStatus(ctx context.Context) error {
	credential, err := c.currentCredential()
	if err != nil {
		return err
	}

	status, err := c.fetchStatus(ctx, credential)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.logger.Warn("status refresh failed", zap.Error(err))
		c.errorNotice(c.failureText(err, msgStatusFailed))
		return err
	}

	c.storeStatus(status)
	return nil
}

func (c *Controller) RefreshLocations(ctx context.Context) error {
	credential, err := c.currentCredential()
	if err != nil {
		return err
	}

	if _, err := c.loadLocations(ctx, credential); err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.logger.Warn("location refresh failed", zap.Error(err))
		c.errorNotice(c.failureText(err, msgLocationsFailed))
		return err
	}
	return nil
}

func (c *Controller) RefreshPlans(ctx context.Context) error {
	credential, err := c.currentCredential()
	if err != nil {
		return err
	}

	c.setBusy(func(b *busyState) { b.plans++ })
	defer c.setBusy(func(b *busyState) { b.plans-- })

	result, err := c.shared(ctx, "plans", func(ctx context.Context) (any, error) {
		return c.api.FetchPlans(ctx, credential)
	})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.logger.Warn("plan refresh failed", zap.Error(err))
		c.errorNotice(c.failureText(err, msgPlansFailed))
		return err
	}

	groups := domain.GroupVariants(result.([]domain.PriceVariant))

	c.mu.Lock()
	c.plans = groups
	if _, ok := domain.FindPlanGroup(groups, c.selectedPlan); !ok {
		c.selectedPlan = ""
	}
	c.mu.Unlock()
	c.notify()

	return nil
}

func (c *Controller) ActivateLocation(ctx context.Context, locationID string) error {
	c.mu.Lock()
	if c.credential.IsEmpty() {
		c.mu.Unlock()
		return domain.ErrCredentialUnavailable
	}
	if _, busy := c.busy.activating[locationID]; busy {
		c.mu.Unlock()
		return domain.ErrActionInProgress
	}
	c.busy.activating[locationID] = struct{}{}
	credential := c.credential
	c.mu.Unlock()
	c.notify()

	err := c.api.ActivateLocation(ctx, credential, locationID)
	c.setBusy(func(b *busyState) { delete(b.activating, locationID) })
	if err != nil {
		c.logger.Warn("location activation failed", zap.String("location", locationID), zap.Error(err))
		c.errorNotice(c.failureText(err, msgActivateFailed))
		return err
	}

	c.successNotice(msgActivated)

	status, err := c.fetchStatus(ctx, credential)
	if err != nil {
		c.logger.Debug("status refresh after activation failed", zap.Error(err))
		return nil
	}
	c.storeStatus(status)
	return nil
}

func (c *Controller) SelectPlan(key string) error {
	c.mu.Lock()
	if _, ok := domain.FindPlanGroup(c.plans, key); !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrPlanNotFound, key)
	}
	c.selectedPlan = key
	c.mu.Unlock()
	c.notify()
	return nil
}

// ChoosePaymentMethod starts a payment for planKey, or for the selected plan
// when planKey is empty.
func (c *Controller) ChoosePaymentMethod(ctx context.Context, planKey string, provider domain.Provider) (domain.PaymentContinuation, error) {
	c.mu.Lock()
	if planKey == "" {
		planKey = c.selectedPlan
	}
	group, found := domain.FindPlanGroup(c.plans, planKey)
	credential := c.credential
	lang := c.lang
	c.mu.Unlock()

	if !found {
		err := fmt.Errorf("%w: %s", domain.ErrPlanNotFound, planKey)
		c.errorNotice(c.failureText(err, msgPaymentFailed))
		return domain.PaymentContinuation{}, err
	}

	continuation, err := c.payments.Initiate(ctx, credential, group, provider, lang)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentInProgress) {
			return domain.PaymentContinuation{}, err
		}
		c.errorNotice(c.failureText(err, msgPaymentFailed))
		return domain.PaymentContinuation{}, err
	}

	c.mu.Lock()
	c.continuation = &continuation
	c.publishNoticeLocked(domain.NoticeSuccess, translate(c.lang, msgPaymentStarted))
	c.mu.Unlock()
	c.notify()

	return continuation, nil
}

func (c *Controller) CopyConfig(ctx context.Context) error {
	c.mu.Lock()
	connection := c.connection
	c.mu.Unlock()

	if connection == nil {
		c.errorNotice(c.failureText(domain.ErrConfigNotLoaded, msgConfigNotLoaded))
		return domain.ErrConfigNotLoaded
	}
	if c.clipboard == nil {
		err := errors.New("no clipboard configured")
		c.errorNotice(c.failureText(err, msgCopyFailed))
		return err
	}

	if err := c.clipboard.Copy(ctx, connection.Payload); err != nil {
		c.logger.Warn("copy config failed", zap.Error(err))
		c.errorNotice(c.failureText(err, msgCopyFailed))
		return fmt.Errorf("copy config: %w", err)
	}

	c.successNotice(msgConfigCopied)
	return nil
}

func (c *Controller) ClearNotice() {
	c.mu.Lock()
	c.noticeSeq++
	c.notice = nil
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
	c.mu.Unlock()
	c.notify()
}

// StartBrowserLogin opens a browser login from a login gate and watches it in
// the background until it is confirmed or expires.
func (c *Controller) StartBrowserLogin(ctx context.Context) error {
	c.mu.Lock()
	if !c.opts.BrowserLogin {
		c.mu.Unlock()
		return ErrBrowserLoginDisabled
	}
	if c.screen.Kind != domain.ScreenStandaloneGate && c.screen.Kind != domain.ScreenBrowserLoginGate {
		c.mu.Unlock()
		return nil
	}
	if c.busy.browserLogin || (c.login != nil && c.login.Status == domain.BrowserLoginPending) {
		c.mu.Unlock()
		return domain.ErrActionInProgress
	}
	c.busy.browserLogin = true
	c.mu.Unlock()
	c.notify()

	login, err := c.api.StartBrowserLogin(ctx)
	c.setBusy(func(b *busyState) { b.browserLogin = false })
	if err != nil {
		c.logger.Warn("browser login start failed", zap.Error(err))
		c.errorNotice(c.failureText(err, msgBrowserLoginFailed))
		return err
	}
	if login.ExpiresAt.IsZero() {
		login.ExpiresAt = c.clock.Now().Add(defaultLoginTTL)
	}
	if login.Status == "" {
		login.Status = domain.BrowserLoginPending
	}

	watchCtx, cancel := c.clock.WithDeadline(c.ctx, login.ExpiresAt)

	c.mu.Lock()
	if c.loginCancel != nil {
		c.loginCancel()
	}
	c.login = &login
	c.loginCancel = cancel
	c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventLoginUpdated, Login: &login})
	c.mu.Unlock()
	c.notify()

	c.logger.Info("browser login started", zap.String("login", login.ID), zap.Time("expires_at", login.ExpiresAt))
	c.spawn(func(context.Context) {
		defer cancel()
		c.watchBrowserLogin(watchCtx, login)
	})
	return nil
}

// PollBrowserLogin checks the pending browser login once.
func (c *Controller) PollBrowserLogin(ctx context.Context) error {
	c.mu.Lock()
	var login domain.BrowserLogin
	pending := c.login != nil && c.login.Status == domain.BrowserLoginPending
	if pending {
		login = *c.login
	}
	c.mu.Unlock()

	if !pending {
		return nil
	}
	_, err := c.pollBrowserLogin(ctx, login)
	return err
}

func (c *Controller) bootstrap(ctx context.Context) error {
	credential, err := c.credentials.Resolve(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrStandaloneAccess) {
			c.logger.Info("no platform host detected", zap.Bool("browser_login", c.opts.BrowserLogin))
			if c.opts.BrowserLogin {
				c.transition(domain.ScreenEvent{Kind: domain.EventStandalone, Message: c.text(msgStandalone)})
				return err
			}
			c.transition(domain.ScreenEvent{Kind: domain.EventCredentialMissing, Message: c.text(msgStandalone)})
			return err
		}

		c.logger.Warn("credential unavailable", zap.Error(err))
		c.transition(domain.ScreenEvent{Kind: domain.EventCredentialMissing, Message: c.text(msgCredentialMissing)})
		return err
	}

	return c.establish(ctx, credential)
}

// establish finishes a bootstrap once a credential is known: the first status
// fetch gates the Home screen, locations load in the background.
func (c *Controller) establish(ctx context.Context, credential domain.Credential) error {
	lang := c.opts.Language
	if lang == "" {
		lang = credential.LanguageCode()
	}

	c.mu.Lock()
	c.credential = credential
	c.lang = MatchLanguage(lang)
	c.mu.Unlock()

	status, err := c.fetchStatus(ctx, credential)
	if err != nil {
		c.logger.Warn("initial status fetch failed", zap.Error(err))
		c.transition(domain.ScreenEvent{Kind: domain.EventStatusFailed, Message: c.failureText(err, msgStatusFailed)})
		return err
	}

	c.mu.Lock()
	c.status = &status
	c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventStatusLoaded})
	c.mu.Unlock()
	c.notify()

	c.logger.Debug("session established", zap.String("state", string(status.State)), zap.String("language", c.language()))
	c.spawn(func(ctx context.Context) {
		if _, err := c.loadLocations(ctx, credential); err != nil {
			c.logger.Debug("background location fetch failed", zap.Error(err))
		}
	})
	return nil
}

func (c *Controller) fetchStatus(ctx context.Context, credential domain.Credential) (domain.SubscriptionStatus, error) {
	result, err := c.shared(ctx, "status", func(ctx context.Context) (any, error) {
		return c.api.FetchStatus(ctx, credential)
	})
	if err != nil {
		return domain.SubscriptionStatus{}, err
	}
	return result.(domain.SubscriptionStatus), nil
}

func (c *Controller) loadLocations(ctx context.Context, credential domain.Credential) ([]domain.Location, error) {
	c.setBusy(func(b *busyState) { b.locations++ })
	defer c.setBusy(func(b *busyState) { b.locations-- })

	result, err := c.shared(ctx, "locations", func(ctx context.Context) (any, error) {
		return c.api.FetchLocations(ctx, credential)
	})
	if err != nil {
		return nil, err
	}

	locations := result.([]domain.Location)
	c.mu.Lock()
	c.locations = locations
	c.mu.Unlock()
	c.notify()

	return locations, nil
}

func (c *Controller) loadConfig(ctx context.Context, credential domain.Credential) error {
	c.setBusy(func(b *busyState) { b.config++ })
	defer c.setBusy(func(b *busyState) { b.config-- })

	result, err := c.shared(ctx, "config", func(ctx context.Context) (any, error) {
		return c.api.FetchConfig(ctx, credential)
	})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.logger.Warn("config fetch failed", zap.Error(err))
		c.errorNotice(c.failureText(err, msgConfigFailed))
		return err
	}

	connection := result.(domain.ConnectionConfig)
	c.mu.Lock()
	c.connection = &connection
	c.mu.Unlock()
	c.notify()

	return nil
}

// shared runs fetch once for every concurrent caller of key. The fetch runs
// on the controller context, so a caller that gives up only stops waiting.
func (c *Controller) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	results := c.flights.DoChan(key, func() (any, error) {
		return fetch(c.ctx)
	})

	select {
	case result := <-results:
		return result.Val, result.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Controller) reconcile(ctx context.Context) {
	if err := c.RefreshStatus(ctx); err != nil {
		c.logger.Debug("payment reconcile failed", zap.Error(err))
	}
}

var errLoginPending = errors.New("browser login pending")

func (c *Controller) watchBrowserLogin(ctx context.Context, login domain.BrowserLogin) {
	policy := backoff.WithContext(backoff.NewConstantBackOff(c.opts.LoginPollInterval), ctx)

	err := backoff.RetryNotifyWithTimer(func() error {
		done, err := c.pollBrowserLogin(ctx, login)
		if done {
			if err != nil {
				return backoff.Permanent(err)
			}
			return nil
		}
		if err != nil {
			return err
		}
		return errLoginPending
	}, policy, func(err error, _ time.Duration) {
		if !errors.Is(err, errLoginPending) {
			c.logger.Debug("browser login poll failed", zap.String("login", login.ID), zap.Error(err))
		}
	}, newClockTimer(c.clock))

	if errors.Is(err, context.DeadlineExceeded) {
		c.expireLogin(login.ID)
	}
}

// pollBrowserLogin reports done once the login reached a final state.
func (c *Controller) pollBrowserLogin(ctx context.Context, login domain.BrowserLogin) (bool, error) {
	updated, credential, err := c.api.BrowserLoginStatus(ctx, login.ID)
	if err != nil {
		return false, err
	}

	switch updated.Status {
	case domain.BrowserLoginConfirmed:
		if credential.IsEmpty() {
			return false, fmt.Errorf("browser login %s confirmed without a session", login.ID)
		}

		c.mu.Lock()
		if c.login == nil || c.login.ID != login.ID || c.busy.bootstrap {
			c.mu.Unlock()
			return true, nil
		}
		c.login = nil
		c.loginCancel = nil
		c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventLoginConfirmed})
		c.busy.bootstrap = true
		c.mu.Unlock()
		c.notify()

		c.logger.Info("browser login confirmed", zap.String("login", login.ID))
		defer c.endBootstrap()
		return true, c.establish(ctx, credential)
	case domain.BrowserLoginExpired:
		c.expireLogin(login.ID)
		return true, domain.ErrLoginExpired
	default:
		return false, nil
	}
}

func (c *Controller) expireLogin(loginID string) {
	c.mu.Lock()
	if c.login == nil || c.login.ID != loginID || c.login.Status != domain.BrowserLoginPending {
		c.mu.Unlock()
		return
	}
	expired := *c.login
	expired.Status = domain.BrowserLoginExpired
	c.login = &expired
	c.loginCancel = nil
	c.screen = domain.Transition(c.screen, domain.ScreenEvent{Kind: domain.EventLoginUpdated, Login: &expired})
	c.publishNoticeLocked(domain.NoticeError, translate(c.lang, msgBrowserLoginExpired))
	c.mu.Unlock()
	c.notify()

	c.logger.Info("browser login expired", zap.String("login", loginID))
}

func (c *Controller) resetSessionLocked() {
	if c.loginCancel != nil {
		c.loginCancel()
		c.loginCancel = nil
	}
	c.credential = ""
	c.status = nil
	c.locations = nil
	c.plans = nil
	c.selectedPlan = ""
	c.connection = nil
	c.continuation = nil
	c.login = nil
}

func (c *Controller) failureText(err error, fallback string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && strings.TrimSpace(remote.Message) != "" {
		return strings.TrimSpace(remote.Message)
	}

	switch {
	case errors.Is(err, domain.ErrCredentialRejected):
		return c.text(msgSessionExpired)
	case errors.Is(err, domain.ErrMethodUnavailable):
		return c.text(msgMethodUnavailable)
	case errors.Is(err, domain.ErrConfigNotLoaded):
		return c.text(msgConfigNotLoaded)
	case errors.Is(err, domain.ErrLoginExpired):
		return c.text(msgBrowserLoginExpired)
	case fallback != "":
		return c.text(fallback)
	default:
		return c.text(msgGeneric)
	}
}

func (c *Controller) currentCredential() (domain.Credential, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.credential.IsEmpty() {
		return "", domain.ErrCredentialUnavailable
	}
	return c.credential, nil
}

func (c *Controller) storeStatus(status domain.SubscriptionStatus) {
	c.mu.Lock()
	c.status = &status
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) transition(event domain.ScreenEvent) {
	c.mu.Lock()
	c.screen = domain.Transition(c.screen, event)
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) setBusy(update func(*busyState)) {
	c.mu.Lock()
	update(&c.busy)
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) endBootstrap() {
	c.setBusy(func(b *busyState) { b.bootstrap = false })
}

func (c *Controller) errorNotice(message string) {
	c.mu.Lock()
	c.publishNoticeLocked(domain.NoticeError, message)
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) successNotice(key string) {
	c.mu.Lock()
	c.publishNoticeLocked(domain.NoticeSuccess, translate(c.lang, key))
	c.mu.Unlock()
	c.notify()
}

// publishNoticeLocked replaces the live notice. Success notices expire after
// NoticeTTL; error notices stay until replaced or cleared.
func (c *Controller) publishNoticeLocked(kind domain.NoticeKind, message string) {
	c.noticeSeq++
	seq := c.noticeSeq
	c.notice = &domain.Notice{Kind: kind, Message: message}

	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
	if kind == domain.NoticeSuccess {
		c.noticeTimer = c.clock.AfterFunc(c.opts.NoticeTTL, func() { c.expireNotice(seq) })
	}
}

func (c *Controller) expireNotice(seq uint64) {
	c.mu.Lock()
	if c.noticeSeq != seq {
		c.mu.Unlock()
		return
	}
	c.notice = nil
	c.noticeTimer = nil
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) text(key string) string {
	return translate(c.language(), key)
}

func (c *Controller) language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

func (c *Controller) spawn(task func(ctx context.Context)) {
	if c.ctx.Err() != nil {
		return
	}
	c.tasks.Go(func() { task(c.ctx) })
}

func (c *Controller) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
