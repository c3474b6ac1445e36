package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"revguide/internal/modules/gateway/domain"
	"revguide/internal/modules/gateway/service"
)

type captureEndpoint struct {
	deadlineSet bool
	deadline    time.Time
	result      string
	err         error
}

func (e *captureEndpoint) Evaluate(ctx context.Context, _ domain.EvaluationRequest) (string, error) {
	e.deadline, e.deadlineSet = ctx.Deadline()
	return e.result, e.err
}

func (e *captureEndpoint) Compare(ctx context.Context, _ domain.ComparisonRequest) (string, error) {
	e.deadline, e.deadlineSet = ctx.Deadline()
	return e.result, e.err
}

type blockingEndpoint struct{}

func (blockingEndpoint) Evaluate(ctx context.Context, _ domain.EvaluationRequest) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (blockingEndpoint) Compare(ctx context.Context, _ domain.ComparisonRequest) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestCallsCarryDeadline(t *testing.T) {
	t.Parallel()
	ep := &captureEndpoint{result: "ok"}
	svc := service.NewGatewayService(ep, ep, 30*time.Minute)

	if _, err := svc.Evaluate(context.Background(), domain.EvaluationRequest{}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ep.deadlineSet {
		t.Fatal("evaluate context has no deadline")
	}
	remaining := time.Until(ep.deadline)
	if remaining < 29*time.Minute || remaining > 30*time.Minute {
		t.Fatalf("deadline %v from now, want about 30m", remaining)
	}

	if _, err := svc.Compare(context.Background(), domain.ComparisonRequest{}); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !ep.deadlineSet {
		t.Fatal("compare context has no deadline")
	}
}

func TestZeroTimeoutFallsBackToDefault(t *testing.T) {
	t.Parallel()
	ep := &captureEndpoint{result: "ok"}
	svc := service.NewGatewayService(ep, ep, 0)

	if _, err := svc.Evaluate(context.Background(), domain.EvaluationRequest{}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	remaining := time.Until(ep.deadline)
	if remaining < 29*time.Minute || remaining > 30*time.Minute {
		t.Fatalf("default deadline %v from now, want about 30m", remaining)
	}
}

func TestTimeoutCancelsTheCall(t *testing.T) {
	t.Parallel()
	svc := service.NewGatewayService(blockingEndpoint{}, blockingEndpoint{}, 10*time.Millisecond)

	_, err := svc.Evaluate(context.Background(), domain.EvaluationRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
}
