package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectionCmd(app *app) *cobra.Command {
	var copyConfig bool

	cmd := &cobra.Command{
		Use:     "connection",
		Aliases: []string{"config"},
		Short:   "Print the connection config for the assigned server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.controller.OpenConfig(cmd.Context()); err != nil {
				return actionError(s.controller.Snapshot(), err)
			}

			if copyConfig {
				if err := s.controller.CopyConfig(cmd.Context()); err != nil {
					return actionError(s.controller.Snapshot(), err)
				}
				if notice := s.controller.Snapshot().Notice; notice != nil {
					_, err = fmt.Fprintln(cmd.ErrOrStderr(), notice.Message)
				}
				return err
			}

			connection := s.controller.Snapshot().Connection
			_, err = fmt.Fprintln(cmd.OutOrStdout(), connection.Payload)
			return err
		},
	}

	cmd.Flags().BoolVar(&copyConfig, "copy", false, "Copy the config to the clipboard (OSC52) instead of printing it")

	return cmd
}
