package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata com duas casas e separador de milhar: 1234567.891 -> "1,234,567.89"
func FormatMoney(f float64) string {
	s := strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + "." + decPart
}

// FormatPercent formata um trend como "+12.5%" / "-3.0%"
func FormatPercent(f float64) string {
	s := strconv.FormatFloat(math.Round(f*10)/10, 'f', 1, 64)
	if f >= 0 {
		return "+" + s + "%"
	}
	return s + "%"
}
