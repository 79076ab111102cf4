package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"finprobe/internal/adapters/memory"
	"finprobe/internal/config"
	"finprobe/internal/domain"
	"finprobe/internal/logging"
	"finprobe/internal/services/analyses"
	"finprobe/internal/services/evaluator"
	"finprobe/internal/services/results"
)

type rootOptions struct {
	rulesFile string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:                   "probe [command]",
		Short:                 "Evaluate company financials against revenue, leverage and ISCR flags.",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", os.Getenv("RULES_FILE"), "YAML rules file with flag thresholds")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newEvaluateCmd(opts), newChartCmd(opts))
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	return logging.NewWithOutput("probe", o.logLevel, "development", cmd.ErrOrStderr())
}

// analyse decodes and evaluates the document at path ("-" for stdin).
func (o *rootOptions) analyse(cmd *cobra.Command, path string) (results.View, error) {
	log := o.logger(cmd)
	th, err := config.LoadThresholds(o.rulesFile)
	if err != nil {
		return results.View{}, err
	}
	log.Debug("thresholds", "revenue_floor", th.RevenueFloor.String(), "basis", th.RevenueBasis)

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return results.View{}, err
		}
		defer f.Close()
		in = f
	}

	svc := analyses.New(memory.New(), evaluator.New(th), 0)
	a, err := svc.Evaluate(context.Background(), in)
	if err != nil {
		return results.View{}, describe(err)
	}
	log.Debug("evaluated", "company", a.Company, "flags", len(a.Flags))
	return results.New().Build(a)
}

func describe(err error) error {
	var malformed *domain.MalformedInputError
	if errors.As(err, &malformed) {
		return fmt.Errorf("could not evaluate document: %w", err)
	}
	return err
}
