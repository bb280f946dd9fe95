package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mapleleafu/cheesechase/models"
	"github.com/mapleleafu/cheesechase/responses"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return body
}

func TestHandleSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleSuccess(rec, models.SuccessResponse(map[string]int{"players": 2}))

	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("status=%d content-type=%q", rec.Code, rec.Header().Get("Content-Type"))
	}
	body := decode(t, rec)
	if body["success"] != true || body["data"] == nil {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("success body should not carry an error: %v", body)
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"bad request", responses.BadRequestError{Msg: "bad limit"}, http.StatusBadRequest, "bad limit"},
		{"wrapped not found", fmt.Errorf("lookup: %w", responses.NotFoundError{Msg: "Match not found."}), http.StatusNotFound, "Match not found."},
		{"unavailable", responses.ServiceUnavailableError{Msg: "off"}, http.StatusServiceUnavailable, "off"},
		{"plain error", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			body := decode(t, rec)
			if body["success"] != false || body["error"] != tc.msg {
				t.Fatalf("body = %v, want error %q", body, tc.msg)
			}
			if _, ok := body["data"]; ok {
				t.Fatalf("error body should not carry data: %v", body)
			}
		})
	}
}
