package services

import (
	"context"
	"testing"

	"github.com/loterialab/sorteos-backend/internal/models"
)

func TestGetDrawsSingleLottery(t *testing.T) {
	drawRepo := newFakeDrawRepo()
	drawRepo.draws["la-primitiva"] = []models.Draw{
		{DrawID: "lp-1", DrawDate: "2024-01-01 21:40:00", GameID: "LAPR"},
		{DrawID: "lp-2", DrawDate: "2024-01-04 21:40:00", GameID: "LAPR"},
		{DrawID: "lp-3", DrawDate: "2024-01-06 21:40:00", GameID: "LAPR"},
	}

	svc := NewDrawService(drawRepo)
	page, err := svc.GetDraws(context.Background(), "la-primitiva", "", "", 0, 2)
	if err != nil {
		t.Fatalf("GetDraws: %v", err)
	}
	if page.Total != 3 || len(page.Draws) != 2 {
		t.Fatalf("total=%d rows=%d, want 3/2", page.Total, len(page.Draws))
	}
	if page.Draws[0].DrawID != "lp-3" {
		t.Errorf("expected newest first, got %s", page.Draws[0].DrawID)
	}
}

func TestGetDrawsDateFilter(t *testing.T) {
	drawRepo := newFakeDrawRepo()
	drawRepo.draws["la-primitiva"] = []models.Draw{
		{DrawID: "lp-1", DrawDate: "2024-01-01 21:40:00", GameID: "LAPR"},
		{DrawID: "lp-2", DrawDate: "2024-01-04 21:40:00", GameID: "LAPR"},
		{DrawID: "lp-3", DrawDate: "2024-02-01 21:40:00", GameID: "LAPR"},
	}

	svc := NewDrawService(drawRepo)
	page, err := svc.GetDraws(context.Background(), "la-primitiva", "2024-01-02", "2024-01-31", 0, 50)
	if err != nil {
		t.Fatalf("GetDraws: %v", err)
	}
	if page.Total != 1 || page.Draws[0].DrawID != "lp-2" {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestGetDrawsMergesAllLotteries(t *testing.T) {
	drawRepo := newFakeDrawRepo()
	drawRepo.draws["la-primitiva"] = []models.Draw{
		{DrawID: "lp-1", DrawDate: "2024-01-02 21:40:00", GameID: "LAPR"},
	}
	drawRepo.draws["euromillones"] = []models.Draw{
		{DrawID: "em-1", DrawDate: "2024-01-03 21:00:00", GameID: "EMIL"},
	}
	drawRepo.draws["el-gordo"] = []models.Draw{
		{DrawID: "eg-1", DrawDate: "2024-01-01 13:00:00", GameID: "ELGR"},
	}

	svc := NewDrawService(drawRepo)
	page, err := svc.GetDraws(context.Background(), "", "", "", 0, 50)
	if err != nil {
		t.Fatalf("GetDraws: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("total %d, want 3", page.Total)
	}
	wantOrder := []string{"em-1", "lp-1", "eg-1"}
	for i, want := range wantOrder {
		if page.Draws[i].DrawID != want {
			t.Errorf("position %d: %s, want %s", i, page.Draws[i].DrawID, want)
		}
	}

	// In-memory paging over the merged set.
	page, err = svc.GetDraws(context.Background(), "", "", "", 2, 50)
	if err != nil {
		t.Fatalf("GetDraws: %v", err)
	}
	if len(page.Draws) != 1 || page.Draws[0].DrawID != "eg-1" {
		t.Errorf("unexpected second page: %+v", page.Draws)
	}

	// Skip past the end yields an empty page, not nil.
	page, err = svc.GetDraws(context.Background(), "", "", "", 10, 50)
	if err != nil {
		t.Fatalf("GetDraws: %v", err)
	}
	if page.Draws == nil || len(page.Draws) != 0 || page.Total != 3 {
		t.Errorf("unexpected overflow page: %+v", page)
	}
}
