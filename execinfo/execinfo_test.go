package execinfo

import (
	"slices"
	"testing"

	"github.com/google/uuid"

	outcome "github.com/xgx-io/xgx-outcome"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	env := New(id, "ana", "customer-registration", "cli", "en-US")
	if !env.IsSuccess() {
		t.Fatalf("want success, got %+v", env)
	}
	info := env.Value()
	if info.CorrelationID != id || info.User != "ana" || !info.Valid() {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestNew_ReportsEveryMissingFieldInOrder(t *testing.T) {
	t.Parallel()

	env := New(uuid.Nil, "  ", "", "cli", "")
	if !env.IsError() {
		t.Fatalf("want error, got %s", env.Status())
	}
	want := []string{CodeCorrelationIDRequired, CodeUserRequired, CodeBusinessFlowCodeRequired, CodeLanguageRequired}
	if got := outcome.Codes(env); !slices.Equal(got, want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	if env.Value().Valid() {
		t.Fatalf("failed envelope must not carry a valid Info")
	}
}

func TestForced(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		id    uuid.UUID
		user  string
		valid bool
	}{
		{"complete", uuid.New(), "ana", true},
		{"missing-user", uuid.New(), "", false},
		{"missing-id", uuid.Nil, "ana", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := Forced(tc.id, tc.user, "flow", "origin", "pt-BR")
			if info.Valid() != tc.valid {
				t.Fatalf("Valid() = %v, want %v", info.Valid(), tc.valid)
			}
			if info.User != tc.user {
				t.Fatalf("Forced must keep the supplied fields")
			}
		})
	}
}
