// Command tiny parses TINY source and prints its parse tree as JSON or
// CBOR — a thin driver over the scanner, parser, and serializer packages.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/tiny/internal/config"
	"github.com/aledsdavies/tiny/internal/diagnostics"
	"github.com/aledsdavies/tiny/internal/lexer"
	"github.com/aledsdavies/tiny/internal/parser"
	"github.com/aledsdavies/tiny/internal/serial"
	"github.com/aledsdavies/tiny/internal/source"
)

// Exit codes: 0 a clean parse, 1 a parse that produced one or more Error
// nodes, 2 everything else (bad flags, unreadable input, I/O failures).
const (
	exitOK          = 0
	exitParseErrors = 1
	exitUsage       = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		simplifiedFlag bool
		formatFlag     string
		watchFlag      bool
		noColorFlag    bool
		logLevelFlag   string
	)

	var exitCode int

	parseCmd := &cobra.Command{
		Use:           "parse <file|->",
		Short:         "Parse a TINY source file and print its parse tree",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".tinyrc.yaml")
			if err != nil {
				exitCode = exitUsage
				return err
			}

			overrides := config.FlagOverrides{}
			if cmd.Flags().Changed("simplified") {
				overrides.Simplified = &simplifiedFlag
			}
			if cmd.Flags().Changed("format") {
				f := config.Format(formatFlag)
				overrides.Format = &f
			}
			if cmd.Flags().Changed("no-color") {
				color := !noColorFlag
				overrides.Color = &color
			}
			if cmd.Flags().Changed("log-level") {
				overrides.LogLevel = &logLevelFlag
			}
			cfg = overrides.Apply(cfg)

			useColor := shouldUseColor(noColorFlag) && cfg.Color
			logger := newLogger(cfg.LogLevel)

			path := args[0]
			parseOnce := func() error {
				code, err := parseAndPrint(path, cfg, useColor, logger, cmd.OutOrStdout())
				exitCode = code
				return err
			}

			if watchFlag {
				if path == "-" {
					exitCode = exitUsage
					return fmt.Errorf("--watch cannot be used with stdin")
				}
				return watchFile(path, logger, parseOnce)
			}
			return parseOnce()
		},
	}

	parseCmd.Flags().BoolVar(&simplifiedFlag, "simplified", true, "build the simplified (collapsed) tree instead of the full concrete tree")
	parseCmd.Flags().StringVar(&formatFlag, "format", "json", "output format: json or cbor")
	parseCmd.Flags().BoolVar(&watchFlag, "watch", false, "reparse on every change to the input file")
	parseCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored diagnostic output")
	parseCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "log/slog level: debug, info, warn, or error")

	rootCmd := &cobra.Command{Use: "tiny", SilenceErrors: true, SilenceUsage: true}
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize("Error: ", colorRed, !noColorFlag)+err.Error())
		if exitCode == exitOK {
			exitCode = exitUsage
		}
		return exitCode
	}
	return exitCode
}

// parseAndPrint reads path (or stdin for "-"), parses it, prints diagnostics
// for any Error nodes to stderr, and writes the serialized tree to out. It
// returns the process exit code alongside any hard failure (bad input,
// unsupported format).
func parseAndPrint(path string, cfg config.Config, useColor bool, logger *slog.Logger, out io.Writer) (int, error) {
	text, err := readInput(path)
	if err != nil {
		return exitUsage, err
	}

	src := source.New(text)

	start := time.Now()
	root := parser.Parse(text, cfg.Simplified)
	duration := time.Since(start)
	tokens := lexer.Tokenize(text)

	diags := diagnostics.Collect(root, src)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, colorize(diagnostics.Format(d, src), colorRed, useColor))
		logger.Warn("parse error", "kind", d.Kind, "span", fmt.Sprintf("%d-%d", d.Span.Start, d.Span.End))
	}

	mode := "full"
	if cfg.Simplified {
		mode = "simplified"
	}
	logger.Info("parsed",
		"source", path,
		"mode", mode,
		"tokens", len(tokens),
		"errors", len(diags),
		"duration", duration,
	)

	var encoded []byte
	switch cfg.Format {
	case config.FormatJSON:
		encoded, err = serial.EncodeJSON(root, src, cfg.Simplified)
	case config.FormatCBOR:
		encoded, err = serial.EncodeCBOR(root, src, cfg.Simplified)
	default:
		return exitUsage, fmt.Errorf("unsupported --format %q (want json or cbor)", cfg.Format)
	}
	if err != nil {
		return exitUsage, fmt.Errorf("encode: %w", err)
	}

	if cfg.Format == config.FormatJSON {
		fmt.Fprintln(out, string(encoded))
	} else {
		os.Stdout.Write(encoded)
	}

	if len(diags) > 0 {
		return exitParseErrors, nil
	}
	return exitOK, nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
