package cmd

import (
	"context"

	"github.com/bnema/vpnc/internal/config"
	"github.com/spf13/cobra"
)

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(newApp())
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vpnc",
		Short:         "VPN mini-client: subscription, locations, plans and payments",
		Long:          "vpnc picks up the platform launch credential, shows your VPN subscription, switches locations, hands out the connection config and buys plans through card, crypto or stars payments.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/vpnc/config.toml)")
	flags.StringVar(&app.launchURL, "launch-url", "", "Launch URL carrying tgWebAppData in its query or fragment")
	flags.String("lang", "", "Interface language (en, ru, uk)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	_ = app.config.BindPFlag(config.PathKey, flags.Lookup("config"))
	_ = app.config.BindPFlag("ui.language", flags.Lookup("lang"))
	_ = app.config.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(app),
		newStatusCmd(app),
		newLocationsCmd(app),
		newPlansCmd(app),
		newBuyCmd(app),
		newConnectionCmd(app),
		newUICmd(app),
	)

	return rootCmd
}
