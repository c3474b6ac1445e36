package out

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"revguide/internal/modules/gateway/domain"
	gatewayout "revguide/internal/modules/gateway/port/out"
)

type HTTPEvaluationEndpoint struct {
	baseURL string
	client  *http.Client
}

func NewHTTPEvaluationEndpoint(baseURL string) gatewayout.EvaluationEndpoint {
	// The per-request deadline comes from the caller's context; a client-level
	// timeout would undercut the long ceiling the service layer applies.
	return &HTTPEvaluationEndpoint{baseURL: baseURL, client: &http.Client{}}
}

func (e *HTTPEvaluationEndpoint) Evaluate(ctx context.Context, req domain.EvaluationRequest) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, req.FileName))
	header.Set("Content-Type", req.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(req.FileData); err != nil {
		return "", fmt.Errorf("write file part: %w", err)
	}
	if err := writer.WriteField("gemini_key", req.APIKey); err != nil {
		return "", fmt.Errorf("write key field: %w", err)
	}
	if req.Prompt != "" {
		if err := writer.WriteField("prompt", req.Prompt); err != nil {
			return "", fmt.Errorf("write prompt field: %w", err)
		}
	}
	if err := writer.WriteField("conference", req.Venue); err != nil {
		return "", fmt.Errorf("write conference field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/upload/", body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("post upload: %w", err)
	}
	return decodeTextField(resp, "evaluation")
}
