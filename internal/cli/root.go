// Package cli wires the cobra command tree for the benefits binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"benefits-engine/internal/config"
	"benefits-engine/internal/logging"
	"benefits-engine/internal/ratetable"
)

// app carries state initialized in PersistentPreRunE for the subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	logger  *zap.Logger
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "benefits",
		Short: "Veteran benefits and budget estimator",
		Long: `benefits estimates VA disability compensation and military retired pay, rolls them
into a monthly budget, and lists recommendations for benefits the veteran may be missing.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/benefits/benefits.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default from BENEFITS_LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "", "log format: json, console (default from BENEFITS_LOG_FORMAT)")
	root.PersistentFlags().String("rate-table-path", "", "YAML bundle overriding the embedded rate tables")
	root.PersistentFlags().String("rate-table-url", "", "URL of a YAML bundle overriding the embedded rate tables")

	_ = a.v.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", root.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("rate_table.path", root.PersistentFlags().Lookup("rate-table-path"))
	_ = a.v.BindPFlag("rate_table.url", root.PersistentFlags().Lookup("rate-table-url"))

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.estimateCmd())
	root.AddCommand(a.compareCmd())
	root.AddCommand(a.tablesCmd())

	return root
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "benefits"))
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName("benefits")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Flags and the config file override the environment.
	if a.v.IsSet("logging.level") {
		cfg.LogLevel = a.v.GetString("logging.level")
	}
	if a.v.IsSet("logging.format") {
		cfg.LogFormat = a.v.GetString("logging.format")
	}
	if a.v.IsSet("server.port") {
		cfg.Port = a.v.GetString("server.port")
	}
	if a.v.IsSet("rate_table.path") {
		cfg.RateTablePath = a.v.GetString("rate_table.path")
	}
	if a.v.IsSet("rate_table.url") {
		cfg.RateTableURL = a.v.GetString("rate_table.url")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) loadTable(ctx context.Context) (*ratetable.Table, error) {
	return ratetable.Load(ctx, ratetable.Source{
		Path:    a.cfg.RateTablePath,
		URL:     a.cfg.RateTableURL,
		Timeout: a.cfg.RateTableTimeout,
		Logger:  a.logger,
	})
}
