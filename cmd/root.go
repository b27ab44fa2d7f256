// Package cmd implements the glint command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/salog0d/glint/internal/cachemanager"
	"github.com/salog0d/glint/internal/config"
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/highlight"
	"github.com/salog0d/glint/internal/log"
	"github.com/salog0d/glint/internal/tracing"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "glint <file>",
	Short: "A multi-language syntax highlighter with a parallel lexer",
	Long: `glint tokenizes Python, Racket and SQL sources with a chunked parallel
lexer and renders the result as colored terminal output, a standalone
HTML document or JSON. Large files are split at safe boundaries and
lexed concurrently; the output is identical to a sequential scan.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runGlint,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glint/config.yaml)")
	rootCmd.Flags().StringP("lang", "l", "",
		"source language: python, racket or sql (default: detect from extension)")
	rootCmd.Flags().StringP("format", "f", "",
		"output format: ansi, html or json")
	rootCmd.Flags().StringP("output", "o", "",
		"write output to file instead of stdout")
	rootCmd.Flags().IntP("jobs", "j", 0,
		"worker budget for parallel lexing (0 = one per CPU)")
	rootCmd.Flags().BoolP("watch", "w", false,
		"re-render when the input file changes")
	rootCmd.Flags().Bool("debug", false,
		"enable structured debug logging")
	rootCmd.Flags().Bool("save", false,
		"persist the format and jobs flags as new defaults")

	_ = viper.BindPFlag("language", rootCmd.Flags().Lookup("lang"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("jobs", rootCmd.Flags().Lookup("jobs"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("jobs", defaults.Jobs)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glint/config.yaml (current directory)
		// 2. ~/.config/glint/config.yaml (user config)
		if _, err := os.Stat(".glint/config.yaml"); err == nil {
			viper.SetConfigFile(".glint/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "glint"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .glint/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".glint/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runGlint(cmd *cobra.Command, args []string) error {
	path := args[0]

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("GLINT_DEBUG") != "" {
		logPath := cfg.LogFile
		if logPath == "" {
			logPath = "glint-debug.log"
		}
		if cleanup, err := log.Init(logPath); err == nil {
			defer cleanup()
		}
	} else {
		log.SetEnabled(false)
	}

	lang, err := resolveLanguage(path)
	if err != nil {
		return err
	}

	format, err := highlight.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			configPath = ".glint/config.yaml"
		}
		if err := config.SaveDefaults(configPath, cfg); err != nil {
			return fmt.Errorf("saving defaults: %w", err)
		}
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	r := &renderer{
		path:   path,
		lang:   lang,
		format: format,
		jobs:   cfg.Jobs,
		tracer: provider.Tracer(),
		output: mustString(cmd, "output"),
		cache: cachemanager.NewReadThroughCache(
			cachemanager.NewInMemoryCacheManager[string, string]("render", cfg.Cache.TTL, cachemanager.DefaultCleanupInterval),
			renderSource,
			!cfg.Cache.Enabled,
		),
		ttl: cfg.Cache.TTL,
	}

	if err := r.renderOnce(ctx); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return r.watchLoop(ctx)
	}
	return nil
}

// resolveLanguage picks the language from the --lang flag or config, and
// falls back to the file extension.
func resolveLanguage(path string) (grammar.Language, error) {
	if cfg.Language != "" {
		return grammar.ParseLanguage(cfg.Language)
	}
	return grammar.DetectLanguage(path)
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// hashKey builds the render cache key from content and render settings.
func hashKey(lang grammar.Language, format highlight.Format, src string) string {
	return fmt.Sprintf("%s/%s/%016x", lang, format, xxhash.Sum64String(src))
}
