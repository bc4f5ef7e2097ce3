package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/keyforge/internal/client"
	"github.com/MKhiriev/keyforge/internal/config"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, client.ErrGenerationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keyforge",
	Short: "keyforge - passphrase and key pair generator",
	Long: `keyforge is a terminal client for a generation service producing
passphrases, SSH key pairs, RSA key pairs and PGP keys.

Run without arguments to start the interactive UI, or use 'generate' to
produce a single result on stdout.

Examples:
  keyforge                                   # Start interactive UI
  keyforge -m ssh                            # Start on the SSH tab
  keyforge generate passphrase --length 24   # Print one passphrase
  keyforge generate ssh --comment me@host    # Print an SSH key pair
  keyforge generate pgp --name Me --email me@example.com --copy public-key
  keyforge health                            # Probe the service`,
	Version:       models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.Run(ctx)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the generation service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err = app.Health(commandContext(cmd)); err != nil {
			return fmt.Errorf("generation service is unhealthy: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())
	},
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	registerGenerateFlags(generateCmd.Flags())

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}

func newApp(cmd *cobra.Command) (*client.App, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.NewClientLogger("keyforge", cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.Commit).
		Str("address", cfg.Adapter.HTTPAddress).
		Msg("starting keyforge")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("init client app error: %w", err)
	}
	return app, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
