package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/status-im/solana-price-feed/birdeye"
	"github.com/status-im/solana-price-feed/cache"
	"github.com/status-im/solana-price-feed/config"
	"github.com/status-im/solana-price-feed/core"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "price-feed",
		Short:        "Solana token prices from the Birdeye API",
		SilenceUsage: true,
	}

	addGlobalFlags(root.PersistentFlags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP price proxy",
		RunE:  runServe,
	}
	serveCmd.Flags().String("port", "", "listen port, overrides api.port")

	pricesCmd := &cobra.Command{
		Use:   "prices ADDRESS [ADDRESS...]",
		Short: "Print price and liquidity for token addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPrices,
	}

	overviewCmd := &cobra.Command{
		Use:   "overview ADDRESS",
		Short: "Print the listing entry of a token",
		Args:  cobra.ExactArgs(1),
		RunE:  runOverview,
	}

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print tokens sorted by 24h USD volume",
		RunE:  runTokens,
	}
	tokensCmd.Flags().Int("limit", 0, "print at most N tokens, 0 prints all")

	root.AddCommand(serveCmd, pricesCmd, overviewCmd, tokensCmd)
	return root
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file path (YAML)")
	flags.String("env-file", "", "env file holding BIRD_EYE_TOKEN")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
}

// environment is everything a command needs after startup configuration succeeded
type environment struct {
	cfg        *config.Config
	credential config.Credential
	logger     *zap.Logger
}

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	logLevel, _ := cmd.Flags().GetString("log-level")

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if envFile == "" {
		envFile = cfg.EnvFile
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	credential, err := config.LoadCredential(config.WithEnvFile(envFile))
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, credential: credential, logger: logger}, nil
}

func (e *environment) newClient() (*birdeye.Client, error) {
	return core.NewPriceFeed(e.cfg, e.credential, cache.NewService(e.cfg.Cache), e.logger)
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		env.cfg.API.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := core.Setup(env.cfg, env.credential, env.logger)
	if err != nil {
		return err
	}
	if err := registry.StartAll(ctx); err != nil {
		return err
	}

	env.logger.Info("price feed started",
		zap.String("birdeye_url", env.cfg.Birdeye.BaseURL),
		zap.String("port", env.cfg.API.Port),
		zap.Stringer("credential", env.credential))

	<-ctx.Done()
	env.logger.Info("received shutdown signal, stopping services")
	registry.StopAll()
	return nil
}

func runPrices(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, client *birdeye.Client) (interface{}, error) {
		return client.FetchPrices(ctx, args)
	})
}

func runOverview(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, client *birdeye.Client) (interface{}, error) {
		return client.FetchTokenOverview(ctx, args[0])
	})
}

func runTokens(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	return runClientCommand(cmd, func(ctx context.Context, client *birdeye.Client) (interface{}, error) {
		listing, err := client.ListTokensByVolume(ctx)
		if err != nil {
			return nil, err
		}
		if limit > 0 && limit < len(listing) {
			listing = listing[:limit]
		}
		return listing, nil
	})
}

func runClientCommand(cmd *cobra.Command, call func(context.Context, *birdeye.Client) (interface{}, error)) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	client, err := env.newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*env.cfg.Birdeye.RequestTimeout+time.Second)
	defer cancel()

	result, err := call(ctx, client)
	if err != nil {
		var upstreamErr *birdeye.UpstreamError
		if errors.As(err, &upstreamErr) {
			env.logger.Error("upstream request failed",
				zap.String("endpoint", upstreamErr.Endpoint),
				zap.Int("status", upstreamErr.StatusCode),
				zap.Error(err))
		}
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
