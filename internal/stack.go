package internal

import (
	"context"
	"iter"
)

// Frame is one scope layer. The reserved key "intl" holds formatting
// configuration: locales, formats, messages, currency and timeZone.
type Frame = map[string]any

// FrameSource is what the scope resolver walks: frames innermost first,
// then one global frame.
type FrameSource interface {
	Frames() iter.Seq[any]
	Global() any
}

// Stack is an immutable, persistent scope stack. Push returns a new stack
// sharing its tail with the receiver. A nil *Stack is an empty stack.
type Stack struct {
	frame  any
	parent *Stack
	base   FrameSource
	depth  int
}

// NewStack returns an empty stack with the given global frame.
func NewStack(global any) *Stack {
	return &Stack{base: globalOnly{global: global}}
}

// Over returns an empty stack layered on top of a host-provided source.
// Frames pushed later shadow the host's frames.
func Over(src FrameSource) *Stack {
	return &Stack{base: src}
}

// Push returns a stack with frame as the innermost layer.
func (s *Stack) Push(frame any) *Stack {
	if s == nil {
		s = NewStack(nil)
	}
	return &Stack{frame: frame, parent: s, base: s.base, depth: s.depth + 1}
}

// Depth is the number of pushed frames.
func (s *Stack) Depth() int {
	if s == nil {
		return 0
	}
	return s.depth
}

// Frames yields pushed frames innermost first, then the frames of the
// underlying source.
func (s *Stack) Frames() iter.Seq[any] {
	return func(yield func(any) bool) {
		if s == nil {
			return
		}
		for n := s; n.depth > 0; n = n.parent {
			if !yield(n.frame) {
				return
			}
		}
		if s.base == nil {
			return
		}
		for f := range s.base.Frames() {
			if !yield(f) {
				return
			}
		}
	}
}

// Global returns the global frame.
func (s *Stack) Global() any {
	if s == nil || s.base == nil {
		return nil
	}
	return s.base.Global()
}

type globalOnly struct{ global any }

func (g globalOnly) Frames() iter.Seq[any] { return func(func(any) bool) {} }
func (g globalOnly) Global() any           { return g.global }

// withFallback extends a source with one more frame consulted after its
// global frame.
type withFallback struct {
	src      FrameSource
	fallback any
}

func (w withFallback) Frames() iter.Seq[any] {
	return func(yield func(any) bool) {
		for f := range w.src.Frames() {
			if !yield(f) {
				return
			}
		}
		if g := w.src.Global(); g != nil {
			yield(g)
		}
	}
}

func (w withFallback) Global() any { return w.fallback }

// StackKey is the context key under which the render stack is stored.
type StackKey struct{}

// WithStack returns a context carrying s.
func WithStack(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, StackKey{}, s)
}

// StackFrom returns the stack carried by ctx, or nil.
func StackFrom(ctx context.Context) *Stack {
	s, _ := ctx.Value(StackKey{}).(*Stack)
	return s
}

// PushFrame pushes frame onto the stack carried by ctx.
func PushFrame(ctx context.Context, frame any) context.Context {
	return WithStack(ctx, StackFrom(ctx).Push(frame))
}
