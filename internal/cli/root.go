// Package cli implements the outcome-sample command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	outcome "github.com/xgx-io/xgx-outcome"
	"github.com/xgx-io/xgx-outcome/internal/config"
	"github.com/xgx-io/xgx-outcome/outcomegrpc"
	"github.com/xgx-io/xgx-outcome/outcomelog"
	"github.com/xgx-io/xgx-outcome/outcomeotel"
)

// Execute runs the root command.
func Execute(ctx context.Context, cfg config.Config, version, commit, buildDate string) error {
	return newRootCommand(cfg, fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)).ExecuteContext(ctx)
}

// app carries settings shared by every subcommand.
type app struct {
	cfg        config.Config
	jsonOutput bool
	grpcStatus bool
	tracer     trace.Tracer
	shutdown   func(context.Context) error
}

func newRootCommand(cfg config.Config, version string) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "outcome-sample",
		Short: "Sample consumer of the outcome envelope library",
		Long: `outcome-sample registers customers and validates e-mail addresses,
printing the merged outcome envelope of every operation.

Each input is validated independently; the envelopes are merged so one
report lists every failure in input order.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			tracer, shutdown, err := newTracer(a.cfg.Trace, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.tracer, a.shutdown = tracer, shutdown
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print the outcome as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.grpcStatus, "grpc-status", false, "also print the gRPC status code the outcome maps to")
	rootCmd.PersistentFlags().BoolVar(&a.cfg.Trace, "trace", cfg.Trace, "export a trace of the run to stderr")
	rootCmd.PersistentFlags().StringVar(&a.cfg.User, "user", cfg.User, "execution user recorded in audit data")
	rootCmd.PersistentFlags().StringVar(&a.cfg.Origin, "origin", cfg.Origin, "execution origin recorded in audit data")
	rootCmd.PersistentFlags().DurationVar(&a.cfg.Timeout, "timeout", cfg.Timeout, "deadline for the whole operation")

	rootCmd.AddCommand(newRegisterCommand(a))
	rootCmd.AddCommand(newEmailCommand(a))

	return rootCmd
}

// report prints r, logs it and records it on span. It returns an error only
// for error-status results so partial batches still exit zero.
func (a *app) report(cmd *cobra.Command, span trace.Span, r outcome.Result, what string) error {
	outcomeotel.Record(span, r)
	outcomelog.LogContext(cmd.Context(), r, what)

	if err := a.print(cmd.OutOrStdout(), r, what); err != nil {
		return err
	}
	if r.Status() == outcome.StatusError {
		return fmt.Errorf("%s: %w", what, outcome.ToUntyped(r).Err())
	}
	return nil
}

func (a *app) print(w io.Writer, r outcome.Result, what string) error {
	if a.jsonOutput {
		logger := zerolog.New(w)
		logger.Log().Str("operation", what).Object("outcome", outcomelog.Object(r)).Send()
	} else if _, err := fmt.Fprintf(w, "%+v\n", outcome.ToUntyped(r)); err != nil {
		return err
	}
	if a.grpcStatus {
		if _, err := fmt.Fprintf(w, "grpc: %s\n", outcomegrpc.Code(r)); err != nil {
			return err
		}
	}
	return nil
}
