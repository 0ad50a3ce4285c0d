/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ssargent/maparr/pkg/config"
	"github.com/ssargent/maparr/pkg/di"
	"github.com/ssargent/maparr/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

type settingsKey struct{}

// settings are resolved once per invocation by the root command
type settings struct {
	config *config.Config
	logger zerolog.Logger
}

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "maparr",
	Short: "maparr - dense array-backed maps over a fixed key set",
	Long: `maparr generates Go map types whose keys are a closed set of identifiers
declared up front. Values live in a fixed-size array indexed by the key's
declaration position, so every key always has a value.

Declarations come from a YAML file (maparr gen -f maparr.yaml) or from flags
(maparr declare), usually through a //go:generate line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), settingsKey{}, s))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		failureColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Tool config file (default .maparr.yaml or ~/.config/maparr/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides the config file)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Shorthand for --log-level=debug")

	viper.SetEnvPrefix("MAPARR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"config", "log-level", "verbose"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// loadSettings reads the tool config and builds the logger. A missing config
// file is not an error unless it was named explicitly.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	path := viper.GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if explicit || config.ConfigExists(path) {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	level := cfg.Logging.Level
	if l := viper.GetString("log-level"); l != "" {
		level = l
	}
	if viper.GetBool("verbose") {
		level = "debug"
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}
	if explicit || config.ConfigExists(path) {
		logger.Debug().Str("path", path).Msg("loaded config")
	}
	return &settings{config: cfg, logger: logger}, nil
}

func settingsFrom(cmd *cobra.Command) (*settings, error) {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
			return s, nil
		}
	}
	return loadSettings(cmd)
}

// newGenerator builds a generator from the resolved settings through the
// injected factory.
func newGenerator(cmd *cobra.Command) (di.Generator, *settings, error) {
	if container == nil {
		return nil, nil, fmt.Errorf("dependency container not initialized")
	}
	s, err := settingsFrom(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts, err := s.config.GeneratorOptions()
	if err != nil {
		return nil, nil, err
	}
	return container.GetGeneratorFactory().CreateGenerator(opts, s.logger), s, nil
}
