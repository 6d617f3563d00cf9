package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mindful/internal/phase"
)

// DarkTheme selects the lighter colour variants for dark terminals.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// PhaseColor colours text by the breathing phase it belongs to.
func PhaseColor(label string, a any) string {
	switch label {
	case phase.Inhale:
		return Green(a)
	case phase.Hold:
		return Cyan(a)
	case phase.Exhale:
		return Magenta(a)
	}

	return Highlight(a)
}

// Hex colours text with a #rrggbb colour, falling back to plain text.
func Hex(hex string, a any) string {
	rgb, err := pterm.NewRGBFromHex(hex)
	if err != nil {
		return pterm.Sprint(a)
	}

	return rgb.Sprint(a)
}
