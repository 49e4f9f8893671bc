package views

import (
	"github.com/dustin/go-humanize"

	"github.com/pescuma/strategist/lib/model"
)

// FormatNumber shows v with thousands separators and no trailing zeros.
func FormatNumber(v float64) string {
	return humanize.Commaf(v)
}

// FormatMillions shows an amount in millions of dollars, like "$1,250M".
func FormatMillions(v float64) string {
	return "$" + FormatNumber(v) + "M"
}

func FormatPercentage(v float64) string {
	return FormatNumber(v) + "%"
}

// StatusClass is the CSS class of a status badge.
func StatusClass(s model.BattleStatus) string {
	switch s {
	case model.Success:
		return "status-success"
	case model.Failed:
		return "status-failed"
	case model.InProgress:
		return "status-in-progress"
	default:
		return "status-unknown"
	}
}
