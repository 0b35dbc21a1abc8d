// Package outcomegrpc maps outcome envelopes onto gRPC statuses and back.
//
// Error-kind messages travel as errdetails.BadRequest field violations
// (Field carries the message code). An errdetails.ErrorInfo records the
// envelope status so partial outcomes survive the round trip.
package outcomegrpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	outcome "github.com/xgx-io/xgx-outcome"
)

// Domain is reported in errdetails.ErrorInfo.
const Domain = "github.com/xgx-io/xgx-outcome"

const statusKey = "status"

// Code picks the gRPC code for r. Cancellation faults map to Canceled or
// DeadlineExceeded, faults that already carry a gRPC status keep its code,
// any other fault is Internal, and message-only failures are
// InvalidArgument.
func Code(r outcome.Result) codes.Code {
	if r.Status() == outcome.StatusSuccess {
		return codes.OK
	}
	switch {
	case outcome.HasFault(r, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case outcome.HasFault(r, context.Canceled):
		return codes.Canceled
	}
	hasFault := false
	for f := range r.Faults().Values() {
		if f == nil {
			continue
		}
		hasFault = true
		var se interface{ GRPCStatus() *status.Status }
		if errors.As(f, &se) {
			if c := se.GRPCStatus().Code(); c != codes.OK && c != codes.Unknown {
				return c
			}
		}
	}
	if hasFault {
		return codes.Internal
	}
	return codes.InvalidArgument
}

// ToStatus converts r into a gRPC status. Successful results yield an OK
// status without details.
func ToStatus(r outcome.Result) *status.Status {
	code := Code(r)
	if code == codes.OK {
		return status.New(codes.OK, "")
	}

	msg := r.Status().String()
	reason := code.String()
	if m, ok := outcome.FirstError(r); ok {
		reason = m.Code()
		msg = m.Code()
		if m.HasDescription() {
			msg = m.Description()
		}
	}
	st := status.New(code, msg)

	var violations []*errdetails.BadRequest_FieldViolation
	for m := range r.Messages().Values() {
		if m.Kind() != outcome.KindError {
			continue
		}
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       m.Code(),
			Description: m.Description(),
		})
	}
	info := &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   Domain,
		Metadata: map[string]string{statusKey: r.Status().String()},
	}

	var (
		withDetails *status.Status
		err         error
	)
	if len(violations) > 0 {
		withDetails, err = st.WithDetails(info, &errdetails.BadRequest{FieldViolations: violations})
	} else {
		withDetails, err = st.WithDetails(info)
	}
	if err != nil {
		return st
	}
	return withDetails
}

// ToError is ToStatus(r).Err(): nil for successful results.
func ToError(r outcome.Result) error {
	return ToStatus(r).Err()
}

// FromStatus rebuilds an untyped envelope from a status produced by
// ToStatus (or any other server). The status error is attached as the
// fault; field violations become error messages.
func FromStatus(st *status.Status) outcome.Outcome {
	if st == nil || st.Code() == codes.OK {
		return outcome.Ok()
	}

	result := outcome.StatusError
	var msgs []outcome.Message
	reason := ""
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			reason = v.GetReason()
			if v.GetMetadata()[statusKey] == outcome.StatusPartial.String() {
				result = outcome.StatusPartial
			}
		case *errdetails.BadRequest:
			for _, fv := range v.GetFieldViolations() {
				if fv.GetField() == "" {
					continue
				}
				msgs = append(msgs, outcome.ErrorMessage(fv.GetField(), fv.GetDescription()))
			}
		}
	}
	if len(msgs) == 0 {
		code := reason
		if code == "" {
			code = st.Code().String()
		}
		msgs = append(msgs, outcome.ErrorMessage(code, st.Message()))
	}
	return outcome.WithStatus(result, outcome.Unit{}, msgs, []error{st.Err()})
}
