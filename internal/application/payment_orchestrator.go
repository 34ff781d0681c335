package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const DefaultReconcileDelay = 3 * time.Second

type PaymentOptions struct {
	Providers      []domain.Provider
	Policy         domain.CurrencyPolicy
	ReconcileDelay time.Duration
	// Reconcile runs once, ReconcileDelay after every successful initiation.
	Reconcile func(ctx context.Context)
	// Changed is called whenever the set of pending groups changes.
	Changed func()
}

type paymentIntent struct {
	group    string
	provider domain.Provider
}

// PaymentOrchestrator turns a (plan group, provider) choice into a remote
// payment. At most one payment per group is in flight.
type PaymentOrchestrator struct {
	api    ports.RemoteAPI
	clock  ports.Clock
	opts   PaymentOptions
	logger *zap.Logger
	newKey func() string

	mu      sync.Mutex
	pending map[string]struct{}
	keys    map[paymentIntent]string

	ctx    context.Context
	cancel context.CancelFunc
	tasks  conc.WaitGroup
}

func NewPaymentOrchestrator(api ports.RemoteAPI, clock ports.Clock, opts PaymentOptions, logger *zap.Logger) *PaymentOrchestrator {
	if clock == nil {
		clock = ports.NewSystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ReconcileDelay <= 0 {
		opts.ReconcileDelay = DefaultReconcileDelay
	}
	if len(opts.Providers) == 0 {
		opts.Providers = append([]domain.Provider(nil), domain.DisplayOrder...)
	}
	if opts.Policy.NativeCurrency == "" && opts.Policy.CardCurrency == "" {
		opts.Policy = domain.DefaultCurrencyPolicy()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &PaymentOrchestrator{
		api:     api,
		clock:   clock,
		opts:    opts,
		logger:  logger,
		newKey:  uuid.NewString,
		pending: make(map[string]struct{}),
		keys:    make(map[paymentIntent]string),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (o *PaymentOrchestrator) Initiate(ctx context.Context, credential domain.Credential, group domain.PlanGroup, provider domain.Provider, lang string) (domain.PaymentContinuation, error) {
	if credential.IsEmpty() {
		return domain.PaymentContinuation{}, domain.ErrCredentialUnavailable
	}
	if !containsProvider(o.opts.Providers, provider) {
		return domain.PaymentContinuation{}, domain.ErrMethodUnavailable
	}
	variant, ok := domain.ResolveVariant(group, provider, lang, o.opts.Policy)
	if !ok {
		return domain.PaymentContinuation{}, domain.ErrMethodUnavailable
	}

	intent := paymentIntent{group: group.Key, provider: provider}
	key, err := o.begin(intent)
	if err != nil {
		return domain.PaymentContinuation{}, err
	}

	o.changed()

	continuation, err := o.api.InitiatePayment(ctx, credential, domain.PaymentRequest{
		VariantID:      variant.ID,
		Provider:       provider,
		IdempotencyKey: key,
	})
	o.finish(intent, err == nil)
	o.changed()
	if err != nil {
		o.logger.Warn("payment initiation failed",
			zap.String("plan", group.Key),
			zap.String("provider", string(provider)),
			zap.Error(err),
		)
		return domain.PaymentContinuation{}, fmt.Errorf("initiate %s payment: %w", provider, err)
	}

	o.logger.Info("payment initiated",
		zap.String("plan", group.Key),
		zap.String("provider", string(provider)),
		zap.String("variant", variant.ID),
	)
	o.scheduleReconcile()

	return continuation, nil
}

// Pending reports whether a payment for the group is in flight.
func (o *PaymentOrchestrator) Pending(groupKey string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.pending[groupKey]
	return ok
}

func (o *PaymentOrchestrator) PendingGroups() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	groups := make([]string, 0, len(o.pending))
	for key := range o.pending {
		groups = append(groups, key)
	}
	return groups
}

// Wait blocks until every scheduled reconcile has run or been cancelled.
func (o *PaymentOrchestrator) Wait() {
	o.tasks.Wait()
}

func (o *PaymentOrchestrator) Close() {
	o.cancel()
	o.tasks.Wait()
}

func (o *PaymentOrchestrator) begin(intent paymentIntent) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, busy := o.pending[intent.group]; busy {
		return "", domain.ErrPaymentInProgress
	}
	o.pending[intent.group] = struct{}{}

	key, ok := o.keys[intent]
	if !ok {
		key = o.newKey()
		o.keys[intent] = key
	}
	return key, nil
}

func (o *PaymentOrchestrator) finish(intent paymentIntent, succeeded bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.pending, intent.group)
	if succeeded {
		delete(o.keys, intent)
	}
}

func (o *PaymentOrchestrator) scheduleReconcile() {
	if o.opts.Reconcile == nil {
		return
	}

	timer := o.clock.Timer(o.opts.ReconcileDelay)
	o.tasks.Go(func() {
		select {
		case <-o.ctx.Done():
			timer.Stop()
		case <-timer.C:
			o.opts.Reconcile(o.ctx)
		}
	})
}

func (o *PaymentOrchestrator) changed() {
	if o.opts.Changed != nil {
		o.opts.Changed()
	}
}

func containsProvider(providers []domain.Provider, provider domain.Provider) bool {
	for _, p := range providers {
		if p == provider {
			return true
		}
	}
	return false
}
