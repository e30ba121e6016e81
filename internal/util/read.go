package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

var utf8BOM = []byte("\xef\xbb\xbf")

var (
	ErrTooLarge = errors.New("file too large")
	ErrNotUTF8  = errors.New("file is not valid UTF-8")
)

// Opener opens one named input.
type Opener struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileOpener opens a path on disk.
func FileOpener(path string) Opener {
	return Opener{Name: path, Open: func() (io.ReadCloser, error) { return os.Open(path) }}
}

// Text is the decoded content of one input.
type Text struct {
	Name string
	Body string
}

// ReadAll reads every input with at most limit concurrent reads and returns
// the texts in the same order as inputs, without a leading byte order mark. maxBytes <= 0 disables the size
// cap. The first failure cancels the remaining reads.
func ReadAll(ctx context.Context, inputs []Opener, limit int, maxBytes int64) ([]Text, error) {
	out := make([]Text, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			body, err := readOne(in, maxBytes)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			out[i] = Text{Name: in.Name, Body: body}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func readOne(in Opener, maxBytes int64) (string, error) {
	rc, err := in.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var r io.Reader = rc
	if maxBytes > 0 {
		r = io.LimitReader(rc, maxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if maxBytes > 0 && int64(len(b)) > maxBytes {
		return "", ErrTooLarge
	}
	if !utf8.Valid(b) {
		return "", ErrNotUTF8
	}
	return string(bytes.TrimPrefix(b, utf8BOM)), nil
}
