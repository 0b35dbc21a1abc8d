package cli

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	outcome "github.com/xgx-io/xgx-outcome"
	"github.com/xgx-io/xgx-outcome/execinfo"
	"github.com/xgx-io/xgx-outcome/internal/customer"
	"github.com/xgx-io/xgx-outcome/valueobject"
)

const (
	registrationFlow = "customer-registration"

	CodeRegistered       = "Customer.Registered"
	CodeBirthDateInvalid = "Customer.BirthDate.Invalid"
)

func newRegisterCommand(a *app) *cobra.Command {
	var (
		in   customerInput
		file string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register one customer from flags or many from a YAML file",
		Example: `  # Register a single customer
  outcome-sample register --name "John Doe" --birth-date 1980-01-01 --email john@example.com

  # Register every customer listed in a file
  outcome-sample register --file customers.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs := []customerInput{in}
			if file != "" {
				batch, err := loadBatch(file)
				if err != nil {
					return err
				}
				inputs = batch
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()
			ctx, span := a.tracer.Start(ctx, "register")
			defer span.End()
			span.SetAttributes(attribute.Int("customers", len(inputs)))

			zerolog.Ctx(ctx).Debug().Int("customers", len(inputs)).Msg("registering customers")

			results := a.registerAll(ctx, inputs)
			return a.report(cmd, span, outcome.Combine(results...), "register customers")
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&in.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Email, "email", "", "customer e-mail address")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file listing customers")
	cmd.MarkFlagsMutuallyExclusive("file", "name")
	cmd.MarkFlagsMutuallyExclusive("file", "email")
	cmd.MarkFlagsMutuallyExclusive("file", "birth-date")

	return cmd
}

// registerAll registers every input on its own goroutine, at most
// cfg.Workers at a time, and returns the envelopes in input order.
func (a *app) registerAll(ctx context.Context, inputs []customerInput) []outcome.Result {
	workers := max(a.cfg.Workers, 1)
	sem := make(chan struct{}, workers)

	pending := make([]<-chan outcome.Envelope[*customer.Customer], len(inputs))
	for i, in := range inputs {
		pending[i] = outcome.ExecuteAsync(ctx, func(ctx context.Context) (outcome.Envelope[*customer.Customer], error) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return outcome.Envelope[*customer.Customer]{}, ctx.Err()
			}
			defer func() { <-sem }()
			return a.registerOne(ctx, in)
		})
	}

	results := make([]outcome.Result, 0, len(pending))
	for _, ch := range pending {
		results = append(results, <-ch)
	}
	return results
}

func (a *app) registerOne(ctx context.Context, in customerInput) (outcome.Envelope[*customer.Customer], error) {
	if err := ctx.Err(); err != nil {
		return outcome.Envelope[*customer.Customer]{}, err
	}

	infoEnv := execinfo.New(uuid.New(), a.cfg.User, registrationFlow, a.cfg.Origin, a.cfg.Language)
	if !infoEnv.IsSuccess() {
		return outcome.Typed[*customer.Customer](infoEnv), nil
	}

	emailEnv := valueobject.NewEmail(in.Email)
	birthEnv := parseBirthDate(in.BirthDate)
	if fields := outcome.Combine(emailEnv, birthEnv); !fields.IsSuccess() {
		return outcome.Typed[*customer.Customer](fields), nil
	}

	env := customer.RegisterNew(infoEnv.Value(), in.Name, birthEnv.Value(), emailEnv.Value())
	if !env.IsSuccess() {
		return env, nil
	}
	c := env.Value()
	registered := outcome.Ok(outcome.SuccessMessage(CodeRegistered, c.Name()+" registered with id "+c.EntityInfo().ID().String()))
	return outcome.Merge(c, env, registered), nil
}

func parseBirthDate(s string) outcome.Envelope[time.Time] {
	if strings.TrimSpace(s) == "" {
		return outcome.FailureCode(time.Time{}, CodeBirthDateInvalid, "Birth date is required")
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return outcome.FailureFromFault(err, time.Time{}, CodeBirthDateInvalid, "Birth date must be YYYY-MM-DD")
	}
	return outcome.Success(d, nil, nil)
}
