package out

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"revguide/internal/modules/gateway/domain"
	gatewayout "revguide/internal/modules/gateway/port/out"
)

type HTTPComparisonEndpoint struct {
	baseURL string
	client  *http.Client
}

func NewHTTPComparisonEndpoint(baseURL string) gatewayout.ComparisonEndpoint {
	return &HTTPComparisonEndpoint{baseURL: baseURL, client: &http.Client{}}
}

func (e *HTTPComparisonEndpoint) Compare(ctx context.Context, req domain.ComparisonRequest) (string, error) {
	form := url.Values{}
	form.Set("gemini_key", req.APIKey)
	form.Set("gemini_review", req.Evaluation)
	form.Set("human_review", req.HumanReview)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/compare/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build compare request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("post compare: %w", err)
	}
	return decodeTextField(resp, "comparison")
}
