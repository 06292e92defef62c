package resultsapi

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// mockFetchDraws generates plausible raw draws for local development, one
// per day in the range, shaped like the upstream payload.
func (c *Client) mockFetchDraws(gameID, startDate, endDate string) ([]map[string]interface{}, error) {
	start, err := time.Parse("20060102", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %s", startDate)
	}
	end, err := time.Parse("20060102", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %s", endDate)
	}

	var draws []map[string]interface{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		draws = append(draws, map[string]interface{}{
			"id_sorteo":    fmt.Sprintf("%s%s", d.Format("20060102"), gameID[:2]),
			"game_id":      gameID,
			"fecha_sorteo": d.Format("2006-01-02") + " 21:30:00",
			"combinacion":  mockCombination(gameID),
			"premio_bote":  fmt.Sprintf("%d000000", rand.Intn(90)+10),
			"apuestas":     rand.Intn(5000000) + 500000,
			"premios":      float64(rand.Intn(500000000) + 10000000),
		})
	}
	return draws, nil
}

func mockCombination(gameID string) string {
	switch gameID {
	case "EMIL":
		return fmt.Sprintf("%s - %02d - %02d", randomNumbers(5, 50), rand.Intn(12)+1, rand.Intn(12)+1)
	case "ELGR":
		return fmt.Sprintf("%s - %d", randomNumbers(5, 54), rand.Intn(10))
	default:
		return fmt.Sprintf("%s C(%d) R(%d)", randomNumbers(6, 49), rand.Intn(49)+1, rand.Intn(10))
	}
}

// randomNumbers picks n distinct numbers in 1..max, formatted "08 - 25 - 47".
func randomNumbers(n, max int) string {
	perm := rand.Perm(max)
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%02d", perm[i]+1)
	}
	return strings.Join(parts, " - ")
}
