package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// failNTimes fails with err for the first n calls, then succeeds.
type failNTimes struct {
	n     int
	err   error
	calls int
}

func (f *failNTimes) Complete(context.Context, Request) (*Response, error) {
	f.calls++
	if f.calls <= f.n {
		return nil, f.err
	}
	return &Response{Text: "ok"}, nil
}

func (f *failNTimes) ModelID() string { return "fail-n" }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	inner := &failNTimes{n: 2, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("text = %q, want ok", resp.Text)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	inner := &failNTimes{n: 10, err: &ErrRateLimit{}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryStopsOnEmptyResponse(t *testing.T) {
	inner := &failNTimes{n: 10, err: &ErrEmptyResponse{}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Complete(context.Background(), Request{})
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("error = %v, want ErrEmptyResponse", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", inner.calls)
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	inner := &failNTimes{n: 10, err: context.Canceled}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Complete(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryRespectsRetryAfter(t *testing.T) {
	p := &RetryProvider{config: fastRetry(3)}

	wait := p.backoff(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("wait = %v, want 42ms", wait)
	}
}

func TestMockProviderFIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	r1, _ := m.Complete(context.Background(), Request{})
	r2, _ := m.Complete(context.Background(), Request{})
	if r1.Text != "first" || r2.Text != "second" {
		t.Errorf("got %q, %q", r1.Text, r2.Text)
	}

	if _, err := m.Complete(context.Background(), Request{}); err == nil {
		t.Error("expected error once the queue is empty")
	}
	if m.CallCount() != 3 {
		t.Errorf("call count = %d, want 3", m.CallCount())
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "nope"})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProviderMock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}
