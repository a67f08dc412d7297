package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "GESTOR"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Operator tooling for the Gestor Financeiro reporting service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./reportctl.yaml when present)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	_ = v.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(exportCmd(v))
	cmd.AddCommand(tokenCmd(v))
	cmd.AddCommand(versionCmd())

	return cmd
}

// initConfig wires the config file and GESTOR_* environment variables into v.
// Nested keys map to env names with dots replaced, e.g. database.url -> GESTOR_DATABASE_URL.
func initConfig(v *viper.Viper, cfgFile string, logOut io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("reportctl")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if cfgFile != "" || !os.IsNotExist(err) {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	return setupLogging(v, logOut)
}

func setupLogging(v *viper.Viper, out io.Writer) error {
	var level slog.Level
	switch v.GetString("logging.level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", v.GetString("logging.level"))
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch v.GetString("logging.format") {
	case "console":
		handler = slog.NewTextHandler(out, opts)
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		return fmt.Errorf("invalid log format: %s", v.GetString("logging.format"))
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "reportctl", version)
		},
	}
}
