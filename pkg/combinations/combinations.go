// Package combinations parses the raw combination strings published for
// each draw: the canonical `combinacion` field ("04 - 12 - 16 C(44) R(9)")
// and the `combinacion_acta` field, which lists numbers in the order the
// balls were actually extracted.
//
// Parsing never fails: malformed tokens are dropped and missing pieces are
// reported as nil or short slices. Callers that need a fixed count must
// check the length themselves.
package combinations

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	complementarioRe = regexp.MustCompile(`C\((\d+)\)`)
	reintegroRe      = regexp.MustCompile(`R\((\d+)\)`)
	annotationRe     = regexp.MustCompile(`[CR]\(\d+\)`)
	tokenSplitRe     = regexp.MustCompile(`[\s\-]+`)
)

// Combination is the result of parsing a canonical `combinacion` string.
type Combination struct {
	Numbers        []int
	Complementario *int
	Reintegro      *int
}

// ActaNumbers is the result of parsing a `combinacion_acta` string: the
// numbers in extraction order, split into mains and the lottery's bonus
// fields.
type ActaNumbers struct {
	Main           []int
	Stars          []int // Euromillones only
	Complementario *int  // La Primitiva only
	Reintegro      *int  // La Primitiva only
	Clave          *int  // El Gordo only
}

// ParseCombination parses "04 - 12 - 16 - 37 - 39 - 45 C(44) R(9)" into the
// main numbers plus optional complementario and reintegro. The main part is
// everything before the first C( or R( annotation, split on hyphens.
func ParseCombination(s string) Combination {
	out := Combination{Numbers: []int{}}
	if s == "" {
		return out
	}
	out.Complementario = captureAnnotation(complementarioRe, s)
	out.Reintegro = captureAnnotation(reintegroRe, s)

	mainPart := s
	if idx := strings.Index(s, "C("); idx >= 0 {
		mainPart = s[:idx]
	}
	if idx := strings.Index(mainPart, "R("); idx >= 0 {
		mainPart = mainPart[:idx]
	}
	for _, part := range strings.Split(mainPart, "-") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out.Numbers = append(out.Numbers, n)
		}
	}
	return out
}

// ParseActaEuromillones parses an acta string into up to 5 main numbers and
// up to 2 stars, both in extraction order.
func ParseActaEuromillones(s string) ActaNumbers {
	nums := integerTokens(s)
	out := ActaNumbers{Main: []int{}, Stars: []int{}}
	if len(nums) > 5 {
		out.Main = nums[:5]
		out.Stars = nums[5:]
		if len(out.Stars) > 2 {
			out.Stars = out.Stars[:2]
		}
	} else {
		out.Main = nums
	}
	return out
}

// ParseActaLaPrimitiva parses an acta string into up to 6 main numbers in
// extraction order plus complementario and reintegro. The C(n) and R(n)
// annotations may appear anywhere in the string and are removed before the
// positional tokens are read.
func ParseActaLaPrimitiva(s string) ActaNumbers {
	out := ActaNumbers{Main: []int{}}
	out.Complementario = captureAnnotation(complementarioRe, s)
	out.Reintegro = captureAnnotation(reintegroRe, s)

	stripped := annotationRe.ReplaceAllString(s, " ")
	nums := integerTokens(stripped)
	if len(nums) > 6 {
		nums = nums[:6]
	}
	out.Main = nums
	return out
}

// ParseActaElGordo parses an acta string into up to 5 main numbers in
// extraction order; a 6th numeric token is the clave.
func ParseActaElGordo(s string) ActaNumbers {
	nums := integerTokens(s)
	out := ActaNumbers{Main: []int{}}
	if len(nums) > 5 {
		out.Main = nums[:5]
		clave := nums[5]
		out.Clave = &clave
	} else {
		out.Main = nums
	}
	return out
}

// integerTokens splits on whitespace and hyphens and keeps only the tokens
// that parse as non-negative integers.
func integerTokens(s string) []int {
	out := []int{}
	for _, tok := range tokenSplitRe.Split(s, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil && n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

func captureAnnotation(re *regexp.Regexp, s string) *int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
