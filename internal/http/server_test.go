package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/ledger"
	"fintrack/internal/ledger/memory"
)

func draftFor(desc string, cents int64, typ core.TxType) ledger.Draft {
	return ledger.Draft{
		Date:        core.NewDate(2024, 3, 15),
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Type:        typ,
		Category:    "Food",
	}
}

type stubSharer struct {
	err    error
	shared bool
}

func (s *stubSharer) Share(context.Context, string) error {
	s.shared = true
	return s.err
}

func newTestServer(t *testing.T, sharer export.Sharer) (*Server, *memory.Store) {
	t.Helper()
	store := memory.New()
	exporter := export.NewService(store, export.NewDirWriter(t.TempDir()), sharer, "finance_export.csv")
	srv := NewServer(":0", store, exporter, core.DefaultCategories())
	t.Cleanup(func() { srv.rateLimiter.stop() })
	return srv, store
}

func postForm(srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"description": {"Groceries"},
		"amount":      {"42.50"},
		"type":        {"expense"},
		"category":    {"Food"},
		"year":        {"2024"},
		"month":       {"3"},
		"day":         {"15"},
	}
}

func TestCreateTransaction(t *testing.T) {
	srv, store := newTestServer(t, &stubSharer{})

	rec := postForm(srv, "/transactions", validForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Added") {
		t.Fatalf("expected success notification, got %q", rec.Body.String())
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "transaction:created") {
		t.Fatalf("expected transaction:created trigger, got %q", rec.Header().Get("HX-Trigger"))
	}

	n, _ := store.Count(context.Background())
	if n != 1 {
		t.Fatalf("expected 1 stored record, got %d", n)
	}
	items, _ := store.List(context.Background())
	if items[0].Date.ISO() != "2024-03-15" || items[0].Amount.Cents != 4250 {
		t.Fatalf("stored record mismatch: %+v", items[0])
	}
}

func TestCreateTransactionRejectedBeforeEngine(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(url.Values)
	}{
		{"empty description", func(f url.Values) { f.Set("description", "") }},
		{"empty amount", func(f url.Values) { f.Set("amount", "") }},
		{"unparseable amount", func(f url.Values) { f.Set("amount", "abc") }},
		{"zero amount", func(f url.Values) { f.Set("amount", "0") }},
		{"negative amount", func(f url.Values) { f.Set("amount", "-5") }},
		{"unknown type", func(f url.Values) { f.Set("type", "transfer") }},
	}
	for _, tc := range cases {
		srv, store := newTestServer(t, &stubSharer{})
		form := validForm()
		tc.mutate(form)

		rec := postForm(srv, "/transactions", form)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", tc.name, rec.Code)
		}
		if n, _ := store.Count(context.Background()); n != 0 {
			t.Fatalf("%s: engine must not be reached, got %d records", tc.name, n)
		}
	}
}

func TestCreateTransactionMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, &stubSharer{})
	rec := get(srv, "/transactions")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestSummaryPartial(t *testing.T) {
	srv, store := newTestServer(t, &stubSharer{})
	ctx := context.Background()
	store.Add(ctx, draftFor("Groceries", 4250, core.Expense))
	store.Add(ctx, draftFor("Paycheck", 200000, core.Income))

	rec := get(srv, "/ui/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"€1957.50", "€2000.00", "€42.50"} {
		if !strings.Contains(body, want) {
			t.Fatalf("summary missing %q: %s", want, body)
		}
	}
}

func TestTransactionsPartialNewestFirst(t *testing.T) {
	srv, store := newTestServer(t, &stubSharer{})
	ctx := context.Background()
	store.Add(ctx, draftFor("older", 100, core.Expense))
	store.Add(ctx, draftFor("newer", 100, core.Expense))

	body := get(srv, "/ui/transactions").Body.String()
	if strings.Index(body, "newer") > strings.Index(body, "older") {
		t.Fatalf("expected newest first, got %s", body)
	}
}

func TestExportDownloadEmptyLedger(t *testing.T) {
	srv, _ := newTestServer(t, &stubSharer{})

	rec := get(srv, "/export.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No transactions to export") {
		t.Fatalf("expected informational message, got %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); strings.Contains(ct, "text/csv") {
		t.Fatalf("empty ledger must not produce a CSV download")
	}
}

func TestExportDownload(t *testing.T) {
	srv, store := newTestServer(t, &stubSharer{})
	ctx := context.Background()
	store.Add(ctx, draftFor("Groceries", 4250, core.Expense))

	rec := get(srv, "/export.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "finance_export.csv") {
		t.Fatalf("expected attachment filename, got %q", cd)
	}
	want := "Date,Description,Amount,Type,Category\n2024-03-15,\"Groceries\",42.5,expense,Food\n"
	if rec.Body.String() != want {
		t.Fatalf("expected %q, got %q", want, rec.Body.String())
	}
}

func TestShareExportEmptyLedger(t *testing.T) {
	sh := &stubSharer{}
	srv, _ := newTestServer(t, sh)

	rec := postForm(srv, "/export", url.Values{})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "No transactions to export") {
		t.Fatalf("expected informational message, got %d %q", rec.Code, rec.Body.String())
	}
	if sh.shared {
		t.Fatalf("share facility must not run for an empty ledger")
	}
}

func TestShareExportUnavailableIsNotFailure(t *testing.T) {
	srv, store := newTestServer(t, &stubSharer{err: export.ErrShareUnavailable})
	store.Add(context.Background(), draftFor("x", 100, core.Expense))

	rec := postForm(srv, "/export", url.Values{})
	if rec.Code != http.StatusOK {
		t.Fatalf("unavailable sharing is not an error, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not available") {
		t.Fatalf("expected distinct unavailable message, got %q", rec.Body.String())
	}
}

func TestShareExportFailure(t *testing.T) {
	srv, store := newTestServer(t, &stubSharer{err: errors.New("boom")})
	store.Add(context.Background(), draftFor("x", 100, core.Expense))

	rec := postForm(srv, "/export", url.Values{})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Export failed") {
		t.Fatalf("expected generic export failure message, got %q", rec.Body.String())
	}
}

func TestShareExportSuccess(t *testing.T) {
	sh := &stubSharer{}
	srv, store := newTestServer(t, sh)
	store.Add(context.Background(), draftFor("x", 100, core.Expense))

	rec := postForm(srv, "/export", url.Values{})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Exported 1 transactions") {
		t.Fatalf("expected success notification, got %d %q", rec.Code, rec.Body.String())
	}
	if !sh.shared {
		t.Fatalf("share facility was not invoked")
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, &stubSharer{})
	if rec := get(srv, "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("healthz expected 200, got %d", rec.Code)
	}
	if rec := get(srv, "/readyz"); rec.Code != http.StatusOK {
		t.Fatalf("readyz expected 200, got %d", rec.Code)
	}
}
