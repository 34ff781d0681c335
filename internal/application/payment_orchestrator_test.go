package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports/mocks"
	"github.com/filecoin-project/go-clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const paymentCredential = domain.Credential("query_id=1&hash=abc")

func standardGroup() domain.PlanGroup {
	return domain.GroupVariants([]domain.PriceVariant{
		{ID: "rub", Name: "Standard", PeriodDays: 30, Currency: "RUB", Price: 199},
		{ID: "usd", Name: "Standard", PeriodDays: 30, Currency: "USD", Price: 2.5},
		{ID: "uah", Name: "Standard", PeriodDays: 30, Currency: "UAH", Price: 99},
		{ID: "xtr", Name: "Standard", PeriodDays: 30, Currency: "XTR", Price: 150},
	})[0]
}

func newTestOrchestrator(t *testing.T, api *mocks.MockRemoteAPI, clk *clock.Mock, reconciles *atomic.Int32) *PaymentOrchestrator {
	t.Helper()

	orchestrator := NewPaymentOrchestrator(api, clk, PaymentOptions{
		Reconcile: func(context.Context) { reconciles.Add(1) },
	}, zaptest.NewLogger(t))
	t.Cleanup(orchestrator.Close)
	return orchestrator
}

func TestPaymentOrchestratorInitiatesAndReconcilesOnce(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	api := mocks.NewMockRemoteAPI(t)
	var reconciles atomic.Int32
	orchestrator := newTestOrchestrator(t, api, clk, &reconciles)

	api.EXPECT().InitiatePayment(mock.Anything, paymentCredential, mock.MatchedBy(func(req domain.PaymentRequest) bool {
		return req.VariantID == "uah" && req.Provider == domain.ProviderCrypto && req.IdempotencyKey != ""
	})).Return(domain.PaymentContinuation{Kind: domain.ContinuationCheckoutURL, URL: "https://pay.example/1"}, nil).Once()

	continuation, err := orchestrator.Initiate(context.Background(), paymentCredential, standardGroup(), domain.ProviderCrypto, "uk")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/1", continuation.URL)
	assert.False(t, orchestrator.Pending(standardGroup().Key))

	clk.Add(2 * time.Second)
	assert.Equal(t, int32(0), reconciles.Load())

	clk.Add(time.Second)
	require.Eventually(t, func() bool { return reconciles.Load() == 1 }, time.Second, 5*time.Millisecond)

	clk.Add(time.Minute)
	orchestrator.Wait()
	assert.Equal(t, int32(1), reconciles.Load())
}

func TestPaymentOrchestratorRejectsUnavailableMethodWithoutRemoteCall(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	api := mocks.NewMockRemoteAPI(t)
	var reconciles atomic.Int32
	orchestrator := newTestOrchestrator(t, api, clk, &reconciles)

	group := domain.GroupVariants([]domain.PriceVariant{
		{ID: "usd", Name: "Lite", PeriodDays: 7, Currency: "USD", Price: 1},
	})[0]

	_, err := orchestrator.Initiate(context.Background(), paymentCredential, group, domain.ProviderCard, "en")
	require.ErrorIs(t, err, domain.ErrMethodUnavailable)
	assert.Equal(t, "method unavailable for this plan", err.Error())

	clk.Add(time.Minute)
	orchestrator.Wait()
	assert.Equal(t, int32(0), reconciles.Load())
}

func TestPaymentOrchestratorReusesIdempotencyKeyUntilSuccess(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	api := mocks.NewMockRemoteAPI(t)
	var reconciles atomic.Int32
	orchestrator := newTestOrchestrator(t, api, clk, &reconciles)

	var keys []string
	record := func(_ context.Context, _ domain.Credential, req domain.PaymentRequest) {
		keys = append(keys, req.IdempotencyKey)
	}

	api.EXPECT().InitiatePayment(mock.Anything, paymentCredential, mock.Anything).
		Run(record).Return(domain.PaymentContinuation{}, &domain.RemoteError{StatusCode: 502}).Once()
	api.EXPECT().InitiatePayment(mock.Anything, paymentCredential, mock.Anything).
		Run(record).Return(domain.PaymentContinuation{Kind: domain.ContinuationInvoice, Invoice: "inv-1"}, nil).Twice()

	group := standardGroup()

	_, err := orchestrator.Initiate(context.Background(), paymentCredential, group, domain.ProviderStars, "en")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)

	_, err = orchestrator.Initiate(context.Background(), paymentCredential, group, domain.ProviderStars, "en")
	require.NoError(t, err)

	_, err = orchestrator.Initiate(context.Background(), paymentCredential, group, domain.ProviderStars, "en")
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[1], keys[2])
}

func TestPaymentOrchestratorOnePaymentPerGroup(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	api := mocks.NewMockRemoteAPI(t)
	var reconciles atomic.Int32
	orchestrator := newTestOrchestrator(t, api, clk, &reconciles)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().InitiatePayment(mock.Anything, paymentCredential, mock.Anything).
		RunAndReturn(func(context.Context, domain.Credential, domain.PaymentRequest) (domain.PaymentContinuation, error) {
			close(entered)
			<-release
			return domain.PaymentContinuation{Kind: domain.ContinuationCheckoutURL, URL: "https://pay.example/2"}, nil
		}).Once()

	group := standardGroup()
	done := make(chan error, 1)
	go func() {
		_, err := orchestrator.Initiate(context.Background(), paymentCredential, group, domain.ProviderCard, "en")
		done <- err
	}()

	<-entered
	assert.True(t, orchestrator.Pending(group.Key))
	assert.Equal(t, []string{group.Key}, orchestrator.PendingGroups())

	_, err := orchestrator.Initiate(context.Background(), paymentCredential, group, domain.ProviderStars, "en")
	require.ErrorIs(t, err, domain.ErrPaymentInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, orchestrator.Pending(group.Key))
}

func TestPaymentOrchestratorPreconditions(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockRemoteAPI(t)
	orchestrator := NewPaymentOrchestrator(api, clock.NewMock(), PaymentOptions{
		Providers: []domain.Provider{domain.ProviderStars},
	}, zaptest.NewLogger(t))
	t.Cleanup(orchestrator.Close)

	_, err := orchestrator.Initiate(context.Background(), "", standardGroup(), domain.ProviderStars, "en")
	require.ErrorIs(t, err, domain.ErrCredentialUnavailable)

	_, err = orchestrator.Initiate(context.Background(), paymentCredential, standardGroup(), domain.ProviderCard, "en")
	require.ErrorIs(t, err, domain.ErrMethodUnavailable)
	assert.False(t, errors.Is(err, domain.ErrPaymentInProgress))
}
