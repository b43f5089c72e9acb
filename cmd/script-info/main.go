// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command script-info lists the built-in script filter classes, their
// pipeline operations and links to their source.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/script-info/internal/display"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		display.PrintError(err.Error())
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with settings read through v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "script-info",
		Short:         "Describe script filter classes",
		Long:          "script-info resolves filter class names to their operations, rendered in pipeline notation, and to links to their source.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./.script-info.yaml)")
	flags.String("format", formatText, "Output format: text, json or yaml")
	flags.String("link-prefix", "", "Base URL for filter classes without their own source link")
	flags.String("link-repo", "", "Git checkout whose remote and branch derive the link prefix")
	flags.String("link-repo-path", "", "Directory of the filter sources within --link-repo")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.Int("concurrency", 0, "Source parse workers (0 = NumCPU)")

	// Bind flags to viper.
	for _, name := range []string{"config", "format", "link-prefix", "link-repo", "link-repo-path", "log-level", "concurrency"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: SCRIPT_INFO_FORMAT, SCRIPT_INFO_LINK_PREFIX, etc.
	v.SetEnvPrefix("SCRIPT_INFO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(newFiltersCmd(v))
	rootCmd.AddCommand(newMethodsCmd(v))
	rootCmd.AddCommand(newLinkCmd(v))
	rootCmd.AddCommand(newServeCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig reads the config file named by --config, or the optional
// .script-info.yaml in the working directory.
func loadConfig(v *viper.Viper) error {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName(".script-info")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print script-info version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "script-info %s\n", version)
		},
	}
}
