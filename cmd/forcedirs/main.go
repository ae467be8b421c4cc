// Package main provides the forcedirs CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/dirforce"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forcedirs [flags] DIR...",
		Short: "Force directory metadata to stable storage",
		Long: `forcedirs flushes pending metadata changes (created, deleted and renamed
entries) of each directory to stable storage, in the order given.

It stops at the first directory that cannot be opened or flushed and exits
with status 1. Nothing is retried.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE:          runForce,
	}

	rootCmd.Flags().Bool("hierarchy", getEnvBool("FORCEDIRS_HIERARCHY", false), "Also flush every ancestor of each DIR, root first")
	rootCmd.Flags().Bool("tree", getEnvBool("FORCEDIRS_TREE", false), "Also flush every directory beneath each DIR")
	rootCmd.Flags().String("log-level", getEnvStr("FORCEDIRS_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.Flags().String("log-format", getEnvStr("FORCEDIRS_LOG_FORMAT", "text"), "Log format: text, json")
	rootCmd.Flags().Float64("rate", getEnvFloat("FORCEDIRS_RATE", 0), "Max flush calls per second (0 = unlimited)")
	rootCmd.MarkFlagsMutuallyExclusive("hierarchy", "tree")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "forcedirs v%s (%s)\n", version, commit)
		},
	})

	return rootCmd
}

func runForce(cmd *cobra.Command, args []string) error {
	hierarchy, _ := cmd.Flags().GetBool("hierarchy")
	tree, _ := cmd.Flags().GetBool("tree")
	levelName, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	syncRate, _ := cmd.Flags().GetFloat64("rate")

	logger, err := newLogger(cmd.ErrOrStderr(), levelName, format)
	if err != nil {
		return err
	}

	// Flag errors print usage; flush failures do not.
	cmd.SilenceUsage = true

	f := dirforce.New(
		dirforce.WithLogger(logger),
		dirforce.WithSyncRate(syncRate),
	)

	switch {
	case hierarchy:
		for _, dir := range args {
			if err := f.ForceHierarchy(dir); err != nil {
				return err
			}
		}
	case tree:
		for _, dir := range args {
			if err := f.ForceTree(dir); err != nil {
				return err
			}
		}
	default:
		if err := f.ForceDirectories(args); err != nil {
			return err
		}
	}

	logger.Info("directories flushed", "count", len(args))
	return nil
}

func newLogger(w io.Writer, levelName, format string) (*dirforce.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "text":
		return dirforce.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return dirforce.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvFloat returns environment variable as float64 or default
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// getEnvBool returns environment variable as bool or default
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
