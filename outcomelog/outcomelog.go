// Package outcomelog renders outcome envelopes as structured zerolog
// fields. The core package never logs; callers decide where and when.
package outcomelog

import (
	"context"

	"github.com/rs/zerolog"

	outcome "github.com/xgx-io/xgx-outcome"
)

// Object returns a marshaler that writes r's status, codes, messages and
// faults as fields of a zerolog object.
func Object(r outcome.Result) zerolog.LogObjectMarshaler {
	return object{r: r}
}

type object struct {
	r outcome.Result
}

func (o object) MarshalZerologObject(e *zerolog.Event) {
	e.Str("status", o.r.Status().String())
	if codes := outcome.Codes(o.r); codes != nil {
		e.Strs("codes", codes)
	}
	if ms := o.r.Messages(); ms.NonEmpty() {
		arr := zerolog.Arr()
		for m := range ms.Values() {
			d := zerolog.Dict().Str("kind", m.Kind().String()).Str("code", m.Code())
			if m.HasDescription() {
				d = d.Str("description", m.Description())
			}
			arr = arr.Dict(d)
		}
		e.Array("messages", arr)
	}
	if fs := o.r.Faults(); fs.NonEmpty() {
		e.Errs("faults", fs.Slice())
	}
}

// Level maps a status onto a log level: success logs at info, partial at
// warn and error at error.
func Level(r outcome.Result) zerolog.Level {
	switch r.Status() {
	case outcome.StatusPartial:
		return zerolog.WarnLevel
	case outcome.StatusError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Log writes r under the "outcome" key at the level chosen by Level.
func Log(logger *zerolog.Logger, r outcome.Result, msg string) {
	logger.WithLevel(Level(r)).Object("outcome", Object(r)).Msg(msg)
}

// LogContext is Log with the logger attached to ctx (zerolog.Ctx).
func LogContext(ctx context.Context, r outcome.Result, msg string) {
	Log(zerolog.Ctx(ctx), r, msg)
}
