package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// Source supplies the page to reformat. Each call returns a fresh reader
// so a failed attempt can be retried.
type Source interface {
	Document(ctx context.Context) (io.Reader, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (io.Reader, error)

func (f SourceFunc) Document(ctx context.Context) (io.Reader, error) {
	return f(ctx)
}

// Bytes serves a page held in memory.
func Bytes(data []byte) Source {
	return SourceFunc(func(ctx context.Context) (io.Reader, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	})
}

// File serves a page saved on disk, reading it anew on every call.
func File(path string) Source {
	return SourceFunc(func(ctx context.Context) (io.Reader, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page: %w", err)
		}
		return bytes.NewReader(data), nil
	})
}
