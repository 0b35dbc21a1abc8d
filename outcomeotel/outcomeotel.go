// Package outcomeotel records outcome envelopes on OpenTelemetry spans.
package outcomeotel

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	outcome "github.com/xgx-io/xgx-outcome"
)

// Attribute keys written by Record.
const (
	AttrStatus       = attribute.Key("outcome.status")
	AttrCodes        = attribute.Key("outcome.codes")
	AttrMessageKind  = attribute.Key("outcome.message.kind")
	AttrMessageCode  = attribute.Key("outcome.message.code")
	AttrMessageDesc  = attribute.Key("outcome.message.description")
	EventMessageName = "outcome.message"
)

// Record annotates span with r: status and codes as attributes, one event
// per message and one recorded error per fault. Error and partial results
// set the span status to Error with the first error code as description.
func Record(span trace.Span, r outcome.Result) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(AttrStatus.String(r.Status().String()))
	if cs := outcome.Codes(r); cs != nil {
		span.SetAttributes(AttrCodes.StringSlice(cs))
	}
	for m := range r.Messages().Values() {
		attrs := []attribute.KeyValue{
			AttrMessageKind.String(m.Kind().String()),
			AttrMessageCode.String(m.Code()),
		}
		if m.HasDescription() {
			attrs = append(attrs, AttrMessageDesc.String(m.Description()))
		}
		span.AddEvent(EventMessageName, trace.WithAttributes(attrs...))
	}
	for f := range r.Faults().Values() {
		if f != nil {
			span.RecordError(f)
		}
	}

	if r.Status() == outcome.StatusSuccess {
		span.SetStatus(codes.Ok, "")
		return
	}
	desc := r.Status().String()
	if m, ok := outcome.FirstError(r); ok {
		desc = m.Code()
	}
	span.SetStatus(codes.Error, desc)
}
