package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/loterialab/sorteos-backend/pkg/combinations"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

var spanish = message.NewPrinter(language.Spanish)

// cardNumbers is what a draw card displays: main numbers plus the bonus
// fields of the lottery's shape.
type cardNumbers struct {
	Main           []int
	Stars          []int
	Complementario *int
	Reintegro      *int
	Clave          *int
}

// RenderDrawCard renders one draw as a text card. With drawOrder set the
// main numbers follow the order of extraction from the acta string, when
// the acta parses to the expected count; otherwise the canonical sorted
// numbers are shown.
func RenderDrawCard(draw Draw, spec lotteries.Spec, drawOrder bool) string {
	nums := canonicalNumbers(draw, spec)
	mode := "ordenados"
	if drawOrder {
		if acta := actaNumbers(draw, spec); len(acta.Main) == spec.MainCount {
			nums = acta
			mode = "orden de sorteo"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", spec.Name, dateOnly(draw.DrawDate))
	fmt.Fprintf(&b, "Sorteo %s (%s)\n", draw.DrawID, mode)

	fmt.Fprintf(&b, "Números: %s\n", joinNumbers(nums.Main))
	switch spec.Bonus {
	case lotteries.BonusStars:
		fmt.Fprintf(&b, "Estrellas: %s\n", joinNumbers(nums.Stars))
	case lotteries.BonusComplementarioReintegro:
		fmt.Fprintf(&b, "Complementario: %s  Reintegro: %s\n",
			optionalLabel(nums.Complementario), optionalLabel(nums.Reintegro))
	case lotteries.BonusClave:
		fmt.Fprintf(&b, "Clave: %s\n", optionalLabel(nums.Clave))
	}

	if draw.JokerCombination != nil && *draw.JokerCombination != "" {
		fmt.Fprintf(&b, "Joker: %s\n", *draw.JokerCombination)
	}
	if jackpot := formatEuros(draw.Jackpot); jackpot != "" {
		fmt.Fprintf(&b, "Bote: %s\n", jackpot)
	}

	if len(draw.Scrutiny) > 0 {
		b.WriteString("Escrutinio:\n")
		for _, row := range draw.Scrutiny {
			fmt.Fprintf(&b, "  %-22s %10s ganadores %14s\n",
				prizeLabel(row, spec), row.Winners, row.Prize)
		}
	}
	return b.String()
}

// canonicalNumbers extracts the pre-sorted numbers the API stores. For
// Euromillones and El Gordo the parsed numbers field carries the bonus
// values after the mains; El Gordo's clave prefers the stored reintegro
// field over the trailing parsed number.
func canonicalNumbers(draw Draw, spec lotteries.Spec) cardNumbers {
	nums := cardNumbers{Main: draw.Numbers}
	switch spec.Bonus {
	case lotteries.BonusStars:
		if len(draw.Numbers) > spec.MainCount {
			nums.Main = draw.Numbers[:spec.MainCount]
			nums.Stars = draw.Numbers[spec.MainCount:]
		}
	case lotteries.BonusComplementarioReintegro:
		nums.Complementario = draw.Complementario
		nums.Reintegro = draw.Reintegro
	case lotteries.BonusClave:
		if len(draw.Numbers) > spec.MainCount {
			nums.Main = draw.Numbers[:spec.MainCount]
		}
		nums.Clave = draw.Reintegro
		if nums.Clave == nil && len(draw.Numbers) > spec.MainCount {
			v := draw.Numbers[spec.MainCount]
			nums.Clave = &v
		}
	}
	return nums
}

// actaNumbers parses the official-record string into draw-order numbers.
// El Gordo's clave prefers the acta's trailing token here, falling back to
// the stored reintegro field, the inverse of the canonical precedence.
func actaNumbers(draw Draw, spec lotteries.Spec) cardNumbers {
	switch spec.Bonus {
	case lotteries.BonusStars:
		acta := combinations.ParseActaEuromillones(draw.CombinationActa)
		return cardNumbers{Main: acta.Main, Stars: acta.Stars}
	case lotteries.BonusComplementarioReintegro:
		acta := combinations.ParseActaLaPrimitiva(draw.CombinationActa)
		c, r := acta.Complementario, acta.Reintegro
		if c == nil {
			c = draw.Complementario
		}
		if r == nil {
			r = draw.Reintegro
		}
		return cardNumbers{Main: acta.Main, Complementario: c, Reintegro: r}
	case lotteries.BonusClave:
		acta := combinations.ParseActaElGordo(draw.CombinationActa)
		clave := acta.Clave
		if clave == nil {
			clave = draw.Reintegro
		}
		return cardNumbers{Main: acta.Main, Clave: clave}
	}
	return cardNumbers{}
}

// prizeLabel resolves the prize-breakdown row label: the row's own text,
// else the lottery's label table, else a generic category label.
func prizeLabel(row ScrutinyRow, spec lotteries.Spec) string {
	if row.Category != "" {
		return row.Category
	}
	if label := spec.PrizeLabel(row.CategoryIndex); label != "" {
		return label
	}
	return fmt.Sprintf("Categoría %d", row.CategoryIndex)
}

// formatEuros formats a plain numeric string as Spanish-locale euros.
// Non-numeric input is shown untouched.
func formatEuros(raw string) string {
	if raw == "" {
		return ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return spanish.Sprintf("%v €", number.Decimal(v))
}

func joinNumbers(nums []int) string {
	if len(nums) == 0 {
		return "-"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

func optionalLabel(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
