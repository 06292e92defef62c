package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

func TestFeatureQueryPaging(t *testing.T) {
	var gotPath, gotSkip string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSkip = r.URL.Query().Get("skip")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": [{"draw_id": "emil-1", "main_numbers": [3, 8, 21, 34, 47], "star_numbers": [2, 11]}], "total": 45}`))
	}))
	defer server.Close()

	q := NewFeatureQuery(NewClient(server.URL), lotteries.Euromillones)
	q.Load(context.Background())
	if gotPath != "/api/euromillones/features" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if q.TotalPages() != 3 || q.CurrentPage() != 1 {
		t.Errorf("page %d/%d, want 1/3", q.CurrentPage(), q.TotalPages())
	}
	if len(q.Rows()) != 1 || len(q.Rows()[0].StarNumbers) != 2 {
		t.Errorf("unexpected rows: %v", q.Rows())
	}

	q.NextPage(context.Background())
	if gotSkip != "20" || q.CurrentPage() != 2 {
		t.Errorf("after next: skip=%s page=%d", gotSkip, q.CurrentPage())
	}
	q.PrevPage(context.Background())
	if gotSkip != "0" || q.CurrentPage() != 1 {
		t.Errorf("after prev: skip=%s page=%d", gotSkip, q.CurrentPage())
	}
}

func TestFeatureRowDecodesServerEncoding(t *testing.T) {
	comp := 23
	served := models.FeatureRow{
		DrawID:              "lp-101",
		DrawDate:            "2024-03-28",
		Weekday:             "Thursday",
		DrawIndex:           101,
		MainNumbers:         []int{4, 9, 17, 28, 33, 41},
		Complementario:      &comp,
		HotMainNumbers:      []int{5, 10, 15, 20, 25},
		ColdMainNumbers:     []int{1, 2, 3, 4, 6},
		MainFrequencyCounts: []int{1, 2, 3},
	}
	body, err := json.Marshal(served)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var row FeatureRow
	if err := json.Unmarshal(body, &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row.DrawID != served.DrawID || row.DrawIndex != served.DrawIndex {
		t.Errorf("draw fields lost: %+v", row)
	}
	if !reflect.DeepEqual(row.MainNumbers, served.MainNumbers) {
		t.Errorf("main numbers = %v, want %v", row.MainNumbers, served.MainNumbers)
	}
	if row.Complementario == nil || *row.Complementario != comp {
		t.Errorf("complementario = %v, want %d", row.Complementario, comp)
	}
	if !reflect.DeepEqual(row.HotMain, served.HotMainNumbers) || !reflect.DeepEqual(row.ColdMain, served.ColdMainNumbers) {
		t.Errorf("hot/cold = %v / %v", row.HotMain, row.ColdMain)
	}
	if !reflect.DeepEqual(row.MainFrequencyCounts, served.MainFrequencyCounts) {
		t.Errorf("frequency counts = %v, want %v", row.MainFrequencyCounts, served.MainFrequencyCounts)
	}
}

func TestFeatureQueryEmptyTotalStillOnePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": [], "total": 0}`))
	}))
	defer server.Close()

	q := NewFeatureQuery(NewClient(server.URL), lotteries.ElGordo)
	q.Load(context.Background())
	if q.TotalPages() != 1 {
		t.Errorf("totalPages = %d, want 1", q.TotalPages())
	}
}

func TestFeatureQueryFailureClearsRows(t *testing.T) {
	fail := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"detail": "upstream down"}`))
			return
		}
		w.Write([]byte(`{"features": [{"draw_id": "lp-1"}], "total": 30}`))
	}))
	defer server.Close()

	q := NewFeatureQuery(NewClient(server.URL), lotteries.LaPrimitiva)
	q.Load(context.Background())
	if len(q.Rows()) != 1 {
		t.Fatalf("expected 1 row, got %d", len(q.Rows()))
	}

	fail = true
	q.NextPage(context.Background())
	if q.Err() != "upstream down" {
		t.Errorf("expected detail message, got %q", q.Err())
	}
	if len(q.Rows()) != 0 || q.Total() != 0 {
		t.Errorf("stale state after failure: rows=%v total=%d", q.Rows(), q.Total())
	}
}
