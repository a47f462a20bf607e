// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/logfacade/src/config"
	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// ErrMessageRequired is returned by emit when no message words are given.
var ErrMessageRequired = errors.New("cli: message is required")

// emitOptions holds the flags of the emit command.
type emitOptions struct {
	configPath   string
	level        string
	threshold    string
	formatter    string
	noTimestamps bool
	metadata     map[string]string
}

// Execute runs the root command with os.Args, returning any error from the
// selected command.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	exe := posix.ExecutableName("logfacade")
	rootCmd := &cobra.Command{
		Use:           exe,
		Short:         "Structured logging façade",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newEmitCommand(exe), newLevelsCommand())
	return rootCmd
}

func newEmitCommand(exe string) *cobra.Command {
	opts := &emitOptions{}
	cmd := &cobra.Command{
		Use:   "emit MESSAGE...",
		Short: "Log one message",
		Long: `Log one message through a logger built from the flags and an optional
configuration file. Without configured transports the entry is written to
standard output.`,
		Example: fmt.Sprintf(`  %[1]s emit --level warn --meta pct=92 disk low
  %[1]s emit -c logging.yaml -l error "payment failed"`, exe),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.json, .yaml, .yml)")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "info", "level of the message")
	cmd.Flags().StringVarP(&opts.threshold, "threshold", "t", "", "minimum level to emit (overrides config)")
	cmd.Flags().StringVarP(&opts.formatter, "formatter", "f", "", "simple, json or color (overrides config)")
	cmd.Flags().BoolVar(&opts.noTimestamps, "no-timestamps", false, "omit timestamps")
	cmd.Flags().StringToStringVarP(&opts.metadata, "meta", "m", nil, "metadata as key=value; JSON values are decoded")
	return cmd
}

func runEmit(cmd *cobra.Command, opts *emitOptions, args []string) (err error) {
	message := strings.Join(args, " ")
	if message == "" {
		return ErrMessageRequired
	}

	level, err := logger.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.threshold != "" {
		cfg.Threshold = opts.threshold
	}
	if opts.formatter != "" {
		cfg.Formatter = opts.formatter
	}
	if opts.noTimestamps {
		disabled := false
		cfg.Timestamps = &disabled
	}

	var extra []logger.Option
	if cfg.Transports == nil {
		extra = append(extra, logger.WithTransports(logger.NewWriterTransport(cmd.OutOrStdout())))
	}

	log, closer, err := cfg.Build(extra...)
	if err != nil {
		return err
	}
	defer closeInto(closer, &err)

	var logOpts []logger.LogOption
	if md := parseMetadata(opts.metadata); len(md) > 0 {
		logOpts = append(logOpts, logger.WithMetadata(md))
	}
	return log.Log(level, message, logOpts...)
}

// closeInto closes c and joins a close error into *err. It is meant to be
// deferred against a named error result.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, cerr)
	}
}

// parseMetadata decodes each value as JSON when possible, so "92" becomes a
// number and "true" a bool; anything else is kept as a string.
func parseMetadata(raw map[string]string) logger.Metadata {
	if len(raw) == 0 {
		return nil
	}
	md := make(logger.Metadata, len(raw))
	for k, v := range raw {
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			md[k] = v
			continue
		}
		md[k] = decoded
	}
	return md
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the severity scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderLevels(cmd)
		},
	}
}

func renderLevels(cmd *cobra.Command) error {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Rank", "Level", "Accepted names"})

	aliases := map[logger.Level]string{
		logger.WarnLevel:  "warn, warning",
		logger.ErrorLevel: "error, err",
		logger.FatalLevel: "fatal, critical",
	}

	var rows [][]string
	for i, lvl := range logger.Levels() {
		names, ok := aliases[lvl]
		if !ok {
			names = strings.ToLower(lvl.String())
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), lvl.String(), names})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
