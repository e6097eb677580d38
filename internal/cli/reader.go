package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// CancellableReader reads lines while honoring context cancellation, so
// a blocked question prompt can be interrupted.
type CancellableReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewCancellableReader wraps an io.Reader for cancellable line reads.
func NewCancellableReader(reader io.Reader) *CancellableReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &CancellableReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads one trimmed line, or returns ErrInputCancelled when the
// context ends first. A canceled read leaves a goroutine draining the
// underlying reader until it produces the pending line.
func (r *CancellableReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
