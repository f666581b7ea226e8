package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Arjun0606/cabbageseo-sub003/internal/api/handler"
	mockvisibility "github.com/Arjun0606/cabbageseo-sub003/internal/visibility/mock"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const clientIP = "203.0.113.7"

func newTestHandler(t *testing.T) (*mockvisibility.MockScanner, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	scanner := mockvisibility.NewMockScanner(ctrl)

	return scanner, handler.New(handler.Deps{Scanner: scanner}).Routes()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("X-Forwarded-For", clientIP)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

// decodeError unpacks the error envelope.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode error body %q: %v", rec.Body.String(), err)
	}

	return body.Error.Code, body.Error.Message
}

func TestCreateScan(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Scan(gomock.Any(), clientIP, "example.com").
		Return(&domain.VisibilityReport{
			ID:     domain.ReportID(uuid.MustParse("8a9f1ab2-6a7e-4b2c-9d56-8a2f6f1f4a10")),
			Domain: "example.com",
			Summary: domain.ScanSummary{
				VisibilityScore: 57,
				Message:         "example.com shows up in AI answers, but inconsistently: mentioned on 2 of 3 platforms.",
			},
		}, nil)

	rec := doRequest(t, h, http.MethodPost, "/scan", `{"domain":"example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("unexpected content type %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if body["domain"] != "example.com" {
		t.Errorf("unexpected domain: %v", body["domain"])
	}
	if body["reportId"] != "8a9f1ab2-6a7e-4b2c-9d56-8a2f6f1f4a10" {
		t.Errorf("unexpected reportId: %v", body["reportId"])
	}
}

// A report that could not be persisted is still served, with a null ID.
func TestCreateScan_UnpersistedReportID(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Scan(gomock.Any(), clientIP, "example.com").
		Return(&domain.VisibilityReport{Domain: "example.com"}, nil)

	rec := doRequest(t, h, http.MethodPost, "/scan", `{"domain":"example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if id, ok := body["reportId"]; !ok || id != nil {
		t.Errorf("expected a null reportId, got %v", id)
	}
}

func TestCreateScan_InvalidBody(t *testing.T) {
	_, h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/scan", `{"domain":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code, _ := decodeError(t, rec); code != "BAD_REQUEST" {
		t.Errorf("unexpected error code %q", code)
	}
}

func TestCreateScan_BadDomain(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Scan(gomock.Any(), clientIP, "not a domain").
		Return(nil, serrors.With(serrors.ErrBadRequest, "%q is not a valid domain", "not a domain"))

	rec := doRequest(t, h, http.MethodPost, "/scan", `{"domain":"not a domain"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "BAD_REQUEST" {
		t.Errorf("unexpected error code %q", code)
	}
	if !strings.Contains(message, "not a valid domain") {
		t.Errorf("unexpected message %q", message)
	}
}

func TestCreateScan_RateLimited(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Scan(gomock.Any(), clientIP, "example.com").
		Return(nil, serrors.With(serrors.ErrRateLimited, "rate limit exceeded: 5 scans per hour"))

	rec := doRequest(t, h, http.MethodPost, "/scan", `{"domain":"example.com"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "RATE_LIMITED" {
		t.Errorf("unexpected error code %q", code)
	}
	// the response must tell the caller what the limit is
	if !strings.Contains(message, "5 scans per hour") {
		t.Errorf("message must state the limit, got %q", message)
	}
}

func TestCreateScan_InternalError(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Scan(gomock.Any(), clientIP, "example.com").
		Return(nil, errors.New("pg connection refused"))

	rec := doRequest(t, h, http.MethodPost, "/scan", `{"domain":"example.com"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "INTERNAL" {
		t.Errorf("unexpected error code %q", code)
	}
	// internals must not leak to the client
	if strings.Contains(message, "pg") {
		t.Errorf("internal details leaked: %q", message)
	}
}

func TestCreateComparison(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Compare(gomock.Any(), clientIP, "example.com", "rival.io").
		Return(&domain.Comparison{
			First:      &domain.VisibilityReport{Domain: "example.com"},
			Second:     &domain.VisibilityReport{Domain: "rival.io"},
			Winner:     "example.com",
			ScoreDelta: 34,
			Verdict:    "example.com has a strong lead in AI answers.",
		}, nil)

	rec := doRequest(t, h, http.MethodPost, "/compare", `{"domain1":"example.com","domain2":"rival.io"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Winner     string `json:"winner"`
		ScoreDelta int    `json:"scoreDelta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if body.Winner != "example.com" || body.ScoreDelta != 34 {
		t.Errorf("unexpected comparison: %+v", body)
	}
}

func TestCreateComparison_SameDomain(t *testing.T) {
	scanner, h := newTestHandler(t)
	scanner.EXPECT().Compare(gomock.Any(), clientIP, "example.com", "example.com").
		Return(nil, serrors.With(serrors.ErrBadRequest, "cannot compare a domain against itself"))

	rec := doRequest(t, h, http.MethodPost, "/compare", `{"domain1":"example.com","domain2":"example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateComparison_InvalidBody(t *testing.T) {
	_, h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/compare", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetReport(t *testing.T) {
	scanner, h := newTestHandler(t)

	id := uuid.New()
	scanner.EXPECT().Report(gomock.Any(), domain.ReportID(id)).
		Return(&domain.VisibilityReport{ID: domain.ReportID(id), Domain: "example.com"}, nil)

	rec := doRequest(t, h, http.MethodGet, "/reports/"+id.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if body["reportId"] != id.String() {
		t.Errorf("unexpected reportId: %v", body["reportId"])
	}
}

func TestGetReport_MalformedID(t *testing.T) {
	_, h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/reports/not-a-uuid", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code, _ := decodeError(t, rec); code != "NOT_FOUND" {
		t.Errorf("unexpected error code %q", code)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	scanner, h := newTestHandler(t)

	id := uuid.New()
	scanner.EXPECT().Report(gomock.Any(), domain.ReportID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "report %s not found", id))

	rec := doRequest(t, h, http.MethodGet, "/reports/"+id.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	_, h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected health body: %v", body)
	}
}
