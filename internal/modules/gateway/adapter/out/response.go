package out

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "revguide/internal/platform/errors"
)

// decodeTextField reads a response and extracts the named string field from
// its JSON body. Non-success responses become a RemoteError that keeps the
// structured "error" message verbatim when the body carries one.
func decodeTextField(resp *http.Response, field string) (string, error) {
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &apperrors.RemoteError{Status: resp.StatusCode, Message: remoteMessage(raw)}
	}

	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	value, ok := payload[field]
	if !ok {
		return "", fmt.Errorf("malformed response: missing %q field", field)
	}
	return value, nil
}

func remoteMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Error
}
