package cli

import (
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	outcome "github.com/xgx-io/xgx-outcome"
	"github.com/xgx-io/xgx-outcome/valueobject"
)

const CodeEmailValid = "Email.Valid"

func newEmailCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "email ADDRESS...",
		Short:   "Validate e-mail addresses",
		Example: `  outcome-sample email ana@example.com not-an-email`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := a.tracer.Start(cmd.Context(), "email")
			defer span.End()
			span.SetAttributes(attribute.Int("addresses", len(args)))

			results := make([]outcome.Result, 0, len(args))
			for _, addr := range args {
				env := valueobject.NewEmail(addr)
				if env.IsSuccess() {
					env = outcome.Merge(env.Value(), env, outcome.Ok(outcome.SuccessMessage(CodeEmailValid, addr)))
				}
				results = append(results, env)
			}
			return a.report(cmd, span, outcome.Combine(results...), "validate e-mail")
		},
	}
}
