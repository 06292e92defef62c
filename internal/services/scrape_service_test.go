package services

import (
	"context"
	"reflect"
	"testing"
)

func rawDraw(id, gameID, date, combinacion string) map[string]interface{} {
	return map[string]interface{}{
		"id_sorteo":    id,
		"game_id":      gameID,
		"fecha_sorteo": date,
		"combinacion":  combinacion,
	}
}

func TestScrapeRangeSavesAndTracksProgress(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.responses["LAPR"] = []map[string]interface{}{
		rawDraw("lp-1", "LAPR", "2024-01-04 21:40:00", "04 - 12 - 16 - 37 - 39 - 45 C(44) R(9)"),
		rawDraw("lp-2", "LAPR", "2024-01-06 21:40:00", "01 - 02 - 03 - 04 - 05 - 06 C(07) R(0)"),
		{"game_id": "LAPR"}, // no id_sorteo, skipped
	}
	drawRepo := newFakeDrawRepo()
	metadataRepo := newFakeMetadataRepo()

	svc := NewScrapeService(fetcher, drawRepo, metadataRepo)
	result, err := svc.ScrapeRange(context.Background(), "la-primitiva", "20240101", "20240131")
	if err != nil {
		t.Fatalf("ScrapeRange: %v", err)
	}
	if result.Saved != 2 || result.Total != 3 {
		t.Errorf("saved %d of %d, want 2 of 3", result.Saved, result.Total)
	}
	if len(drawRepo.upserts["la-primitiva"]) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(drawRepo.upserts["la-primitiva"]))
	}
	if metadataRepo.lastDates["la-primitiva"] != "2024-01-06" {
		t.Errorf("last draw date %q, want 2024-01-06", metadataRepo.lastDates["la-primitiva"])
	}

	doc := drawRepo.upserts["la-primitiva"][0]
	if want := []int{4, 12, 16, 37, 39, 45}; !reflect.DeepEqual(doc["numbers"], want) {
		t.Errorf("parsed numbers %v, want %v", doc["numbers"], want)
	}
	if c, ok := doc["complementario"].(*int); !ok || c == nil || *c != 44 {
		t.Errorf("complementario %v, want 44", doc["complementario"])
	}
}

func TestScrapeRangeUnknownLottery(t *testing.T) {
	svc := NewScrapeService(newFakeFetcher(), newFakeDrawRepo(), newFakeMetadataRepo())
	if _, err := svc.ScrapeRange(context.Background(), "bonoloto", "20240101", "20240131"); err == nil {
		t.Error("expected an error for an unsupported lottery")
	}
}

func TestScrapeDailyContinuesPastFailures(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failGames["EMIL"] = true
	fetcher.responses["LAPR"] = []map[string]interface{}{
		rawDraw("lp-1", "LAPR", "2024-01-04 21:40:00", "04 - 12 - 16 - 37 - 39 - 45 C(44) R(9)"),
	}

	svc := NewScrapeService(fetcher, newFakeDrawRepo(), newFakeMetadataRepo())
	results, _ := svc.ScrapeDaily(context.Background())
	if len(results) != 3 {
		t.Fatalf("expected a result per lottery, got %d", len(results))
	}

	// Lotteries run in the fixed daily order, Euromillones first.
	if want := []string{"EMIL", "LAPR", "ELGR"}; !reflect.DeepEqual(fetcher.calls, want) {
		t.Errorf("fetch order %v, want %v", fetcher.calls, want)
	}
	if results[0].Lottery != "euromillones" || results[0].Saved != 0 {
		t.Errorf("failed lottery should report zero saves: %+v", results[0])
	}
	if results[1].Saved != 1 {
		t.Errorf("la-primitiva should still save: %+v", results[1])
	}
}

func TestImportRoutesByGameID(t *testing.T) {
	drawRepo := newFakeDrawRepo()
	svc := NewScrapeService(nil, drawRepo, newFakeMetadataRepo())

	result, err := svc.Import(context.Background(), []map[string]interface{}{
		rawDraw("em-1", "EMIL", "2024-01-05 21:00:00", "05 - 12 - 23 - 34 - 45 - 03 - 08"),
		rawDraw("eg-1", "ELGR", "2024-01-07 13:00:00", "02 - 14 - 27 - 39 - 51 - 7"),
		rawDraw("xx-1", "XXXX", "2024-01-07 13:00:00", ""),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Saved != 2 {
		t.Errorf("saved %d, want 2", result.Saved)
	}
	if len(drawRepo.upserts["euromillones"]) != 1 || len(drawRepo.upserts["el-gordo"]) != 1 {
		t.Errorf("draws routed wrong: %v", drawRepo.upserts)
	}
}

func TestNormalizeDrawJoker(t *testing.T) {
	raw := rawDraw("lp-1", "LAPR", "2024-01-04 21:40:00", "04 - 12 - 16 - 37 - 39 - 45 C(44) R(9)")
	raw["joker"] = map[string]interface{}{"combinacion": "1234567"}

	doc := NormalizeDraw(raw)
	if doc["joker_combinacion"] != "1234567" {
		t.Errorf("joker %v, want 1234567", doc["joker_combinacion"])
	}

	raw2 := rawDraw("em-1", "EMIL", "2024-01-05 21:00:00", "05 - 12 - 23")
	raw2["millon"] = map[string]interface{}{"combinacion": "ABC12345"}
	doc2 := NormalizeDraw(raw2)
	if doc2["joker_combinacion"] != "ABC12345" {
		t.Errorf("millon code %v, want ABC12345", doc2["joker_combinacion"])
	}
}
