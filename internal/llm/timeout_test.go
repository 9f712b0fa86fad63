package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider hangs until the request context is done.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_HungProviderReturnsDeadlineExceeded(t *testing.T) {
	// Same stack NewProvider builds: timeout outermost, around retry and
	// logging, so the deadline covers the whole attempt budget.
	logged := WithLogging(blockingProvider{}, nil)
	retried := WithRetry(logged, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})
	p := WithTimeout(retried, 50*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := p.Generate(context.Background(), Request{})
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("got %v, want context.DeadlineExceeded", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Generate did not return after the configured timeout")
	}
}

func TestWithTimeout_FastProviderUnaffected(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: []byte(`{}`)})
	p := WithTimeout(mock, 5*time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}
}

func TestWithTimeout_ZeroDisablesBound(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Error("zero timeout should return the provider unwrapped")
	}
}

func TestWithTimeout_CallerDeadlinePropagates(t *testing.T) {
	p := WithTimeout(blockingProvider{}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
}
