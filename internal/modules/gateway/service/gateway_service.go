package service

import (
	"context"
	"time"

	"revguide/internal/modules/gateway/domain"
	gatewayout "revguide/internal/modules/gateway/port/out"
)

// GatewayService executes exactly one remote call per invocation under the
// long timeout ceiling. The remote computation itself takes minutes, so the
// ceiling is far above normal web-request timeouts. There is no retry and no
// user-initiated cancellation; the ceiling firing is the only way out of a
// stuck request.
type GatewayService struct {
	evaluation gatewayout.EvaluationEndpoint
	comparison gatewayout.ComparisonEndpoint
	timeout    time.Duration
}

func NewGatewayService(evaluation gatewayout.EvaluationEndpoint, comparison gatewayout.ComparisonEndpoint, timeout time.Duration) *GatewayService {
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &GatewayService{evaluation: evaluation, comparison: comparison, timeout: timeout}
}

func (s *GatewayService) Evaluate(ctx context.Context, req domain.EvaluationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.evaluation.Evaluate(ctx, req)
}

func (s *GatewayService) Compare(ctx context.Context, req domain.ComparisonRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.comparison.Compare(ctx, req)
}
