package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/vpnc/internal/adapters/render/screen"
	"github.com/bnema/vpnc/internal/domain"
	"github.com/spf13/cobra"
)

func newBuyCmd(app *app) *cobra.Command {
	var planKey string
	var method string
	var wait bool

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Start a plan purchase with a payment method",
		Long:  "buy starts a payment for a plan (see `vpnc plans` for keys) and prints the checkout link or invoice. With --wait it stays until the subscription status has been refreshed after the payment.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, err := domain.ParseProvider(method)
			if err != nil {
				return err
			}

			s, err := app.startSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.controller.OpenPlans(cmd.Context()); err != nil {
				return actionError(s.controller.Snapshot(), err)
			}

			continuation, err := s.controller.ChoosePaymentMethod(cmd.Context(), planKey, provider)
			if err != nil {
				return actionError(s.controller.Snapshot(), err)
			}

			if err := writeContinuation(cmd, continuation); err != nil {
				return err
			}
			if !wait {
				return nil
			}

			err = screen.RunTask(cmd.Context(), cmd.ErrOrStderr(), "Waiting for the subscription to update...", func(context.Context) error {
				s.controller.Wait()
				return nil
			})
			if err != nil {
				return err
			}

			snapshot := s.controller.Snapshot()
			if snapshot.Status == nil {
				return nil
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", toStatusView(*snapshot.Status).State)
			return err
		},
	}

	cmd.Flags().StringVar(&planKey, "plan", "", "Plan key, e.g. \"standard::30\"")
	cmd.Flags().StringVar(&method, "method", "", "Payment method: card, crypto or stars")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the post-payment status refresh")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

func writeContinuation(cmd *cobra.Command, continuation domain.PaymentContinuation) error {
	var err error
	switch continuation.Kind {
	case domain.ContinuationInvoice:
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "invoice: %s\n", continuation.Invoice)
	default:
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "checkout: %s\n", continuation.URL)
	}
	return err
}
