package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpbelardo/tindahan-backend/internal/catalog"
	"github.com/jpbelardo/tindahan-backend/internal/composer"
	"github.com/jpbelardo/tindahan-backend/pkg/config"
	"github.com/jpbelardo/tindahan-backend/pkg/money"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalog struct {
	snap *catalog.Snapshot
}

func (s *stubCatalog) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	return s.snap, nil
}

func (s *stubCatalog) Refresh(ctx context.Context) (*catalog.Snapshot, error) {
	return s.snap, nil
}

type noopSink struct{}

func (noopSink) Submit(ctx context.Context, order composer.Order) error {
	return nil
}

func fixtureVariant() catalog.Variant {
	return catalog.Variant{
		ID:             uuid.New(),
		Name:           "Premium Dog Food 5kg",
		SKU:            "DOG-5KG",
		ListPrice:      money.MustParse("450"),
		OriginalPrice:  money.MustParse("450"),
		StockAvailable: 50,
		DiscountSchedule: []catalog.Tier{
			{MinQty: 1, UnitPrice: money.MustParse("450")},
			{MinQty: 5, UnitPrice: money.MustParse("428"), DiscountPercent: 5},
		},
	}
}

func testRouter(t *testing.T, variants ...catalog.Variant) http.Handler {
	t.Helper()

	snap, err := catalog.NewSnapshot(variants)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	catalogSvc := &stubCatalog{snap: snap}

	compositionSvc, err := composer.NewService(
		catalogSvc,
		noopSink{},
		config.CompositionConfig{SessionTTL: time.Hour, MaxLines: 50},
		nil,
	)
	if err != nil {
		t.Fatalf("composer service: %v", err)
	}

	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	return NewRouter(cfg, nil, stubPinger{}, stubPinger{}, nil, nil, catalogSvc, compositionSvc)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (body %s)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	handler := testRouter(t, fixtureVariant())

	rec, _ := doJSON(t, handler, http.MethodGet, "/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("live status %d", rec.Code)
	}
	rec, _ = doJSON(t, handler, http.MethodGet, "/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status %d", rec.Code)
	}
}

func TestCatalogVariantsEndpoint(t *testing.T) {
	t.Parallel()

	handler := testRouter(t, fixtureVariant())

	rec, env := doJSON(t, handler, http.MethodGet, "/api/v1/catalog/variants", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Variants []catalog.Variant `json:"variants"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Variants) != 1 {
		t.Fatalf("expected one variant, got %d", len(data.Variants))
	}
}

func TestCompositionFlowEndToEnd(t *testing.T) {
	t.Parallel()

	v := fixtureVariant()
	handler := testRouter(t, v)

	rec, env := doJSON(t, handler, http.MethodPost, "/api/v1/compositions/", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status %d body %s", rec.Code, rec.Body.String())
	}
	var started struct {
		Order struct {
			ID uuid.UUID `json:"id"`
		} `json:"order"`
	}
	if err := json.Unmarshal(env.Data, &started); err != nil {
		t.Fatalf("decode start: %v", err)
	}
	base := fmt.Sprintf("/api/v1/compositions/%s", started.Order.ID)

	rec, _ = doJSON(t, handler, http.MethodPost, base+"/items", map[string]any{
		"variant_id": v.ID,
		"quantity":   7,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add item status %d body %s", rec.Code, rec.Body.String())
	}

	// Blocked until a delivery date exists.
	rec, env = doJSON(t, handler, http.MethodPost, base+"/confirm", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Code != "STATE_CONFLICT" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
	if len(env.Error.Details) == 0 {
		t.Fatal("expected blocking reasons in details")
	}

	rec, _ = doJSON(t, handler, http.MethodPut, base+"/schedule", map[string]any{
		"delivery_date": time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		"notes":         "leave with the guard",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("schedule status %d body %s", rec.Code, rec.Body.String())
	}

	rec, env = doJSON(t, handler, http.MethodPost, base+"/confirm", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status %d body %s", rec.Code, rec.Body.String())
	}
	var confirmed struct {
		GrandTotal string `json:"grand_total"`
		Order      struct {
			Status string `json:"status"`
		} `json:"order"`
	}
	if err := json.Unmarshal(env.Data, &confirmed); err != nil {
		t.Fatalf("decode confirm: %v", err)
	}
	if confirmed.Order.Status != "confirmed" {
		t.Fatalf("expected confirmed, got %s", confirmed.Order.Status)
	}
	if !money.MustParse(confirmed.GrandTotal).Equal(money.MustParse("2996")) {
		t.Fatalf("grand total %s", confirmed.GrandTotal)
	}

	// Session is gone after the handoff.
	rec, _ = doJSON(t, handler, http.MethodGet, base+"/", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after confirm, got %d", rec.Code)
	}
}

func TestCompositionValidationErrors(t *testing.T) {
	t.Parallel()

	v := fixtureVariant()
	handler := testRouter(t, v)

	_, env := doJSON(t, handler, http.MethodPost, "/api/v1/compositions/", nil)
	var started struct {
		Order struct {
			ID uuid.UUID `json:"id"`
		} `json:"order"`
	}
	if err := json.Unmarshal(env.Data, &started); err != nil {
		t.Fatalf("decode start: %v", err)
	}
	base := fmt.Sprintf("/api/v1/compositions/%s", started.Order.ID)

	rec, env := doJSON(t, handler, http.MethodPost, base+"/items", map[string]any{
		"variant_id": v.ID,
		"quantity":   0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}

	rec, _ = doJSON(t, handler, http.MethodPost, base+"/items", map[string]any{
		"variant_id": uuid.New(),
		"quantity":   1,
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown variant, got %d", rec.Code)
	}

	rec, _ = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/compositions/%s/", uuid.New()), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", rec.Code)
	}
}
