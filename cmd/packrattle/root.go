package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nscarcella/packrattle/example"
	"github.com/nscarcella/packrattle/packlog"
	"github.com/nscarcella/packrattle/parser"
)

var cfg = viper.New()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packrattle [file]",
		Short: "Parse a configuration-binding file against the bundled example grammar",
		Long: "packrattle runs the bundled configuration-binding grammar (see the example package) " +
			"against a file, or stdin when no file is given, and prints every distinct parse it finds.",
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}

	cmd.PersistentFlags().Bool("debug", false, "log the scheduler's job trace to stderr")
	cmd.PersistentFlags().Int("max-results", 0, "print at most this many distinct parses (0 means unbounded)")
	_ = cfg.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = cfg.BindPFlag("max-results", cmd.PersistentFlags().Lookup("max-results"))

	cfg.SetEnvPrefix("PACKRATTLE")
	cfg.AutomaticEnv()

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var sink parser.Sink = packlog.NoopSink{}
	if cfg.GetBool("debug") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		sink = packlog.NewZerologSink(logger)
	}

	grammar := example.NewConfigParser()
	result, err := parser.Run(parser.Ref(grammar.ConfigurationParser), input, nil, sink)
	if err != nil {
		return fmt.Errorf("grammar error: %w", err)
	}

	values := result.Results.Values()
	if max := cfg.GetInt("max-results"); max > 0 && len(values) > max {
		values = values[:max]
	}

	if len(values) == 0 {
		if result.HasFail {
			return fmt.Errorf("no parse found; furthest failure: %s at position %d",
				result.Furthest.Message(), result.Furthest.FailState.Pos())
		}
		return fmt.Errorf("no parse found")
	}

	for i, v := range values {
		bindings := v.(example.Bindings)
		fmt.Fprintf(cmd.OutOrStdout(), "parse %d:\n", i+1)
		for _, b := range bindings {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %#v\n", b.Name, b.Value)
		}
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
