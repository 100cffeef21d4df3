package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// Text is a body writing s verbatim.
func Text(s string) Body {
	return BodyFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// Seq renders bodies one after another.
func Seq(bodies ...Body) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		for _, b := range bodies {
			if b == nil {
				continue
			}
			if err := b.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Ref writes the value at path in the render stack. Missing paths write nothing.
func Ref(path ...string) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		v, ok := Resolve(StackFrom(ctx), path...)
		if !ok {
			return nil
		}
		v, err := Tap(ctx, v)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		_, err = fmt.Fprint(w, v)
		return err
	})
}

// With renders body with frame pushed onto the render stack.
func With(frame Frame, body Body) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		return body.Render(PushFrame(ctx, frame), w)
	})
}

// Call is a body invoking a helper with params and an optional block.
func Call(h Helper, params Params, block Body) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		return h(ctx, w, Bodies{Block: block}, params)
	})
}

// Render renders body to a string.
func Render(ctx context.Context, body Body) (string, error) {
	var buf bytes.Buffer
	if err := body.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
