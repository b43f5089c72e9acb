// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/script-info/internal/display"
	"github.com/petar-djukic/script-info/internal/server"
	"github.com/petar-djukic/script-info/pkg/scriptinfo"
)

// setup returns the logger and service for a command invocation.
func setup(cmd *cobra.Command, v *viper.Viper) (*zap.Logger, *scriptinfo.Service, error) {
	logger, err := newLogger(v.GetString("log-level"), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	svc, err := newService(v, logger)
	if err != nil {
		return nil, nil, err
	}
	return logger, svc, nil
}

// newFiltersCmd creates the "filters" command.
func newFiltersCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the known filter classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := setup(cmd, v)
			if err != nil {
				return err
			}
			names := svc.Filters()
			return writeOutput(cmd.OutOrStdout(), v.GetString("format"),
				server.FiltersResponse{Filters: names},
				func(p *display.Printer) error { return p.Filters(names) })
		},
	}
}

// newMethodsCmd creates the "methods" command.
func newMethodsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "methods <filter>",
		Short: "List the script operations of a filter class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := setup(cmd, v)
			if err != nil {
				return err
			}
			name := args[0]
			methods, err := svc.MethodsAvailable(name)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), v.GetString("format"),
				server.MethodsResponse{Filter: name, Methods: methods, Total: len(methods)},
				func(p *display.Printer) error { return p.Methods(name, methods) })
		},
	}
}

// newLinkCmd creates the "link" command.
func newLinkCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <filter>",
		Short: "Print the source link of a filter class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, _ := cmd.Flags().GetBool("html")

			_, svc, err := setup(cmd, v)
			if err != nil {
				return err
			}
			link, err := svc.SourceLink(args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), v.GetString("format"), link,
				func(p *display.Printer) error { return p.Link(link, html) })
		},
	}

	cmd.Flags().Bool("html", false, "Print an HTML anchor instead of the URL")

	return cmd
}
