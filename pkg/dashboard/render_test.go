package dashboard

import (
	"strings"
	"testing"

	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

func intPtr(v int) *int { return &v }

func TestRenderDrawCardLaPrimitivaDrawOrder(t *testing.T) {
	draw := Draw{
		DrawID:          "2098",
		DrawDate:        "2024-03-16 21:40:00",
		Numbers:         []int{8, 25, 38, 40, 47, 48},
		Complementario:  intPtr(20),
		Reintegro:       intPtr(9),
		CombinationActa: "48 - 38 - 40 - 08 - 25 - 47 C(20) R(9)",
	}

	card := RenderDrawCard(draw, lotteries.LaPrimitiva, true)
	if !strings.Contains(card, "Números: 48 38 40 08 25 47") {
		t.Errorf("expected extraction order, got:\n%s", card)
	}
	if !strings.Contains(card, "Complementario: 20  Reintegro: 9") {
		t.Errorf("missing bonus line:\n%s", card)
	}
	if !strings.Contains(card, "orden de sorteo") {
		t.Errorf("missing mode label:\n%s", card)
	}
}

func TestRenderDrawCardFallsBackOnShortActa(t *testing.T) {
	draw := Draw{
		DrawID:          "2099",
		DrawDate:        "2024-03-18 21:40:00",
		Numbers:         []int{3, 9, 17, 28, 33, 41},
		CombinationActa: "03 - 09 - 17", // truncated record
	}

	card := RenderDrawCard(draw, lotteries.LaPrimitiva, true)
	if !strings.Contains(card, "Números: 03 09 17 28 33 41") {
		t.Errorf("expected fallback to sorted numbers, got:\n%s", card)
	}
	if !strings.Contains(card, "ordenados") {
		t.Errorf("mode should report sorted order:\n%s", card)
	}
}

func TestRenderDrawCardEuromillonesSplitsStars(t *testing.T) {
	draw := Draw{
		DrawID:   "emil-1",
		DrawDate: "2024-04-02 21:00:00",
		Numbers:  []int{5, 12, 23, 34, 45, 3, 8},
	}

	card := RenderDrawCard(draw, lotteries.Euromillones, false)
	if !strings.Contains(card, "Números: 05 12 23 34 45") {
		t.Errorf("wrong mains:\n%s", card)
	}
	if !strings.Contains(card, "Estrellas: 03 08") {
		t.Errorf("wrong stars:\n%s", card)
	}
}

func TestRenderDrawCardElGordoClaveFallbacks(t *testing.T) {
	// Canonical view prefers the stored reintegro field.
	draw := Draw{
		DrawID:          "gordo-1",
		DrawDate:        "2024-05-05 13:00:00",
		Numbers:         []int{2, 14, 27, 39, 51, 7},
		Reintegro:       intPtr(4),
		CombinationActa: "51 - 02 - 39 - 14 - 27 - 7",
	}
	card := RenderDrawCard(draw, lotteries.ElGordo, false)
	if !strings.Contains(card, "Clave: 4") {
		t.Errorf("canonical clave should come from the stored field:\n%s", card)
	}

	// Draw-order view prefers the acta's trailing token.
	card = RenderDrawCard(draw, lotteries.ElGordo, true)
	if !strings.Contains(card, "Clave: 7") {
		t.Errorf("draw-order clave should come from the acta:\n%s", card)
	}

	// Each side falls back to the other source when its own is missing.
	draw.Reintegro = nil
	card = RenderDrawCard(draw, lotteries.ElGordo, false)
	if !strings.Contains(card, "Clave: 7") {
		t.Errorf("canonical clave should fall back to the parsed numbers:\n%s", card)
	}
	draw.Reintegro = intPtr(4)
	draw.CombinationActa = "51 - 02 - 39 - 14 - 27"
	card = RenderDrawCard(draw, lotteries.ElGordo, true)
	if !strings.Contains(card, "Clave: 4") {
		t.Errorf("draw-order clave should fall back to the stored field:\n%s", card)
	}
}

func TestRenderDrawCardPrizeLabelPrecedence(t *testing.T) {
	draw := Draw{
		DrawID:   "lp-1",
		DrawDate: "2024-06-01 21:40:00",
		Numbers:  []int{1, 2, 3, 4, 5, 6},
		Scrutiny: []ScrutinyRow{
			{Category: "Categoría especial", CategoryIndex: 1, Winners: "0", Prize: "0,00"},
			{CategoryIndex: 2, Winners: "1", Prize: "1.215.000,00"},
			{CategoryIndex: 99, Winners: "3", Prize: "12,34"},
		},
	}

	card := RenderDrawCard(draw, lotteries.LaPrimitiva, false)
	if !strings.Contains(card, "Categoría especial") {
		t.Errorf("row text should win:\n%s", card)
	}
	if !strings.Contains(card, "1ª (6 aciertos)") {
		t.Errorf("label table should resolve index 2:\n%s", card)
	}
	if !strings.Contains(card, "Categoría 99") {
		t.Errorf("generic fallback missing:\n%s", card)
	}
}

func TestFormatEuros(t *testing.T) {
	if got := formatEuros("17000000"); got != "17.000.000 €" {
		t.Errorf("formatEuros(17000000) = %q", got)
	}
	if got := formatEuros("no disponible"); got != "no disponible" {
		t.Errorf("non-numeric input should pass through, got %q", got)
	}
	if got := formatEuros(""); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}
