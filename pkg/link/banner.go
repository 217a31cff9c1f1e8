package link

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrClosed = errors.New("connection closed")

// WaitBanner reads lines from dev until one equals banner. Other lines are
// skipped. It fails when ctx is done or the connection closes first.
func WaitBanner(ctx context.Context, dev Device, banner string) (Line, error) {
	want := strings.TrimSpace(banner)
	for {
		select {
		case <-ctx.Done():
			return Line{}, fmt.Errorf("waiting for banner %q: %w", want, ctx.Err())
		case line, ok := <-dev.Lines():
			if !ok {
				return Line{}, fmt.Errorf("waiting for banner %q: %w", want, ErrClosed)
			}
			if strings.TrimSpace(line.Text) == want {
				return line, nil
			}
		}
	}
}
