package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/grocy-sync/internal/client"
	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// cli carries what every subcommand needs to open the client.
type cli struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
}

func newRootCmd() *cobra.Command {
	c := &cli{buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)}

	rootCmd := &cobra.Command{
		Use:   "grocy-sync",
		Short: "Offline-capable Grocy shopping list client",
		Long: `grocy-sync keeps a local copy of your Grocy shopping lists and syncs it
with the server. Changes made while offline are kept and pushed on the next
successful sync.

Item positions printed by show are what toggle and delete take; pass them
the same --filter and --search that show was run with.`,
		SilenceUsage: true,
	}
	c.flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		c.syncCmd(),
		c.showCmd(),
		c.toggleCmd(),
		c.selectCmd(),
		c.deleteCmd(),
		c.clearDoneCmd(),
		c.addMissingCmd(),
		c.notesCmd(),
		c.addCmd(),
		c.deleteListCmd(),
		c.watchCmd(),
		c.versionCmd(),
	)

	return rootCmd
}

// run opens the client for the duration of fn.
func (c *cli) run(ctx context.Context, fn func(ctx context.Context, app client.Client) error) error {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("grocy-sync", cfg.App.LogFile, cfg.App.Debug)

	app, err := client.NewApp(ctx, cfg, c.buildInfo, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close client app")
		}
	}()

	if err = fn(ctx, app); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
