package responses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/jpbelardo/tindahan-backend/pkg/errors"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var payload struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data["hello"] != "world" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestWriteErrorMapsCodeToStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{pkgerrors.New(pkgerrors.CodeValidation, "bad input"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{pkgerrors.New(pkgerrors.CodeNotFound, "missing"), http.StatusNotFound, "NOT_FOUND"},
		{pkgerrors.New(pkgerrors.CodeStateConflict, "blocked"), http.StatusUnprocessableEntity, "STATE_CONFLICT"},
		{pkgerrors.New(pkgerrors.CodeDependency, "down"), http.StatusServiceUnavailable, "DEPENDENCY_ERROR"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, tc.err)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%v: status %d, want %d", tc.err, rec.Code, tc.wantStatus)
		}
		var payload struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Error.Code != tc.wantCode {
			t.Fatalf("code %s, want %s", payload.Error.Code, tc.wantCode)
		}
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec,
		pkgerrors.New(pkgerrors.CodeInternal, "database credentials rejected"))

	var payload struct {
		Error struct {
			Message string `json:"message"`
			Details any    `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Message != "internal server error" {
		t.Fatalf("internal message leaked: %q", payload.Error.Message)
	}
	if payload.Error.Details != nil {
		t.Fatalf("internal details leaked: %v", payload.Error.Details)
	}
}

func TestWriteErrorIncludesAllowedDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec,
		pkgerrors.New(pkgerrors.CodeStateConflict, "order is not submittable").
			WithDetails(map[string]any{"reasons": []string{"missing delivery date"}}))

	var payload struct {
		Error struct {
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Error.Details["reasons"]) != 1 {
		t.Fatalf("details missing: %v", payload.Error.Details)
	}
}
