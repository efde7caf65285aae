package utils

import (
	"fmt"
	"math"
)

// FormatAmount keeps the 2-decimal display convention for currency fields.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatGBP renders an amount for documents, e.g. "£1,234.50".
func FormatGBP(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	pence := int64(math.Round((amount - float64(whole)) * 100))
	if pence == 100 {
		whole++
		pence = 0
	}
	return fmt.Sprintf("%s£%s.%02d", sign, formatThousand(whole), pence)
}

// FormatPercent renders percentages at the 1-decimal display convention.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		pos := len(s) - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, ',')
		}
	}
	return string(out)
}
