package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"revguide/internal/modules/gateway/adapter/out"
	"revguide/internal/modules/gateway/domain"
	apperrors "revguide/internal/platform/errors"
)

func evaluationRequest() domain.EvaluationRequest {
	return domain.EvaluationRequest{
		APIKey:      "the-api-key",
		Prompt:      "focus on novelty",
		Venue:       "NeurIPS",
		FileName:    "paper.pdf",
		ContentType: "application/pdf",
		FileData:    []byte("%PDF-1.7 fake"),
	}
}

func TestEvaluateSendsMultipartForm(t *testing.T) {
	t.Parallel()
	var gotPath, gotKey, gotPrompt, gotVenue, gotFile, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotKey = r.FormValue("gemini_key")
		gotPrompt = r.FormValue("prompt")
		gotVenue = r.FormValue("conference")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			defer func() { _ = file.Close() }()
			gotFile = header.Filename
			gotType = header.Header.Get("Content-Type")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"evaluation":"**Score: 7/10**"}`))
	}))
	defer srv.Close()

	endpoint := out.NewHTTPEvaluationEndpoint(srv.URL)
	got, err := endpoint.Evaluate(context.Background(), evaluationRequest())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got != "**Score: 7/10**" {
		t.Fatalf("evaluation = %q", got)
	}
	if gotPath != "/upload/" {
		t.Fatalf("path = %q, want /upload/", gotPath)
	}
	if gotKey != "the-api-key" || gotPrompt != "focus on novelty" || gotVenue != "NeurIPS" {
		t.Fatalf("form fields: key=%q prompt=%q conference=%q", gotKey, gotPrompt, gotVenue)
	}
	if gotFile != "paper.pdf" || gotType != "application/pdf" {
		t.Fatalf("file part: name=%q type=%q", gotFile, gotType)
	}
}

func TestEvaluateOmitsEmptyPrompt(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if _, present := r.MultipartForm.Value["prompt"]; present {
			t.Error("prompt field should be absent when empty")
		}
		_, _ = w.Write([]byte(`{"evaluation":"ok"}`))
	}))
	defer srv.Close()

	req := evaluationRequest()
	req.Prompt = ""
	if _, err := out.NewHTTPEvaluationEndpoint(srv.URL).Evaluate(context.Background(), req); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
}

func TestEvaluateRemoteErrorKeepsMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid Gemini API key"}`))
	}))
	defer srv.Close()

	_, err := out.NewHTTPEvaluationEndpoint(srv.URL).Evaluate(context.Background(), evaluationRequest())
	var remote *apperrors.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("error = %v, want RemoteError", err)
	}
	if remote.Status != http.StatusBadRequest || remote.Message != "invalid Gemini API key" {
		t.Fatalf("remote error: %+v", remote)
	}
	if remote.Error() != "invalid Gemini API key" {
		t.Fatalf("Error() = %q", remote.Error())
	}
}

func TestEvaluateRemoteErrorWithoutBodyFallsBack(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	_, err := out.NewHTTPEvaluationEndpoint(srv.URL).Evaluate(context.Background(), evaluationRequest())
	var remote *apperrors.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("error = %v, want RemoteError", err)
	}
	if remote.Message != "" {
		t.Fatalf("message = %q, want empty for unparseable body", remote.Message)
	}
	if remote.Error() != "evaluation service returned status 500" {
		t.Fatalf("Error() = %q", remote.Error())
	}
}

func TestEvaluateMalformedSuccessBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	_, err := out.NewHTTPEvaluationEndpoint(srv.URL).Evaluate(context.Background(), evaluationRequest())
	if err == nil {
		t.Fatal("missing evaluation field should fail")
	}
	// A 2xx with the wrong shape is a plain error, not a RemoteError.
	var remote *apperrors.RemoteError
	if errors.As(err, &remote) {
		t.Fatalf("malformed 2xx should not be a RemoteError: %v", err)
	}
}

func TestCompareSendsURLEncodedForm(t *testing.T) {
	t.Parallel()
	var gotPath, gotKey, gotEval, gotHuman, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotKey = r.FormValue("gemini_key")
		gotEval = r.FormValue("gemini_review")
		gotHuman = r.FormValue("human_review")
		_, _ = w.Write([]byte(`{"comparison":"Alignment: high"}`))
	}))
	defer srv.Close()

	endpoint := out.NewHTTPComparisonEndpoint(srv.URL)
	got, err := endpoint.Compare(context.Background(), domain.ComparisonRequest{
		APIKey:      "the-api-key",
		Evaluation:  "model review text",
		HumanReview: "human review text",
	})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got != "Alignment: high" {
		t.Fatalf("comparison = %q", got)
	}
	if gotPath != "/compare/" {
		t.Fatalf("path = %q, want /compare/", gotPath)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if gotKey != "the-api-key" || gotEval != "model review text" || gotHuman != "human review text" {
		t.Fatalf("form fields: key=%q eval=%q human=%q", gotKey, gotEval, gotHuman)
	}
}
