package domain

import (
	"context"
	"time"
)

// Span times one named unit of work, such as a single model build.
type Span struct {
	Name     string    `json:"name"`
	startTs  time.Time `json:"-"`
	subTrace *Trace    `json:"-"`

	SubSpans []*Span `json:"subSpans,omitempty"`
	Elapsed  *int64  `json:"elapsed"`
	Err      *string `json:"error,omitempty"`
}

const ContextTraceKey = "buildTrace"

// Trace is a list of spans
type Trace struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewTrace() (newTrace *Trace, endTrace func()) {
	newTrace = &Trace{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newTrace, newTrace.End
}

func TraceFromContext(ctx context.Context) *Trace {
	t, ok := ctx.Value(ContextTraceKey).(*Trace)
	if !ok {
		t, _ = NewTrace()
	}
	return t
}

func (t *Trace) End() {
	ms := time.Since(t.startTs).Milliseconds()
	if t.TotalMs == nil {
		t.TotalMs = &ms
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		ms := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &ms
	}
	if s.subTrace != nil {
		s.SubSpans = s.subTrace.Spans
	}
}

func (s *Span) Fail(err error) {
	msg := err.Error()
	s.Err = &msg
}

// StartNewSpan ends the last span and begins a new one. Not thread safe.
func (t *Trace) StartNewSpan(name string) (*Span, func()) {
	newSpan := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(t.Spans) > 0 {
		t.Spans[len(t.Spans)-1].End()
	}
	t.Spans = append(t.Spans, newSpan)
	return newSpan, newSpan.End
}

func (s *Span) NewSubTrace() (*Trace, func()) {
	if s.subTrace != nil {
		panic("attempting to override existing sub trace")
	}
	sub, end := NewTrace()
	s.subTrace = sub
	return sub, end
}
