// Command erpctl is the operator CLI for the college hub backend: schema
// migration, seeding student profiles and accounts, and inspecting leave
// applications.
package main

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/database"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/logging"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
)

// env is populated by the root command before any subcommand runs.
type env struct {
	cfg   *config.Config
	store store.Store
	flush func()
}

var app env

var rootCmd = &cobra.Command{
	Use:           "erpctl",
	Short:         "Operate the college hub backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.open(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, studentCmd, accountCmd, leaveCmd)
}

func (e *env) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	e.cfg = cfg
	e.flush = logging.Setup(cfg)

	var fbApp *firebase.App
	if cfg.Store.Backend == "firestore" {
		fbApp, err = database.NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			return err
		}
	}

	e.store, err = store.Open(ctx, cfg, fbApp)
	return err
}

func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close data store")
		}
	}
	if e.flush != nil {
		e.flush()
	}
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	app.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "erpctl:", err)
		os.Exit(1)
	}
}
