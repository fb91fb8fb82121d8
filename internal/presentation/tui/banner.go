package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the dfasim banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []termenv.Style{
		p.String("     _  __                 _           ").Foreground(p.Color("#818cf8")),
		p.String("  __| |/ _| __ _ ___  ___ (_)_ __ ___  ").Foreground(p.Color("#a78bfa")),
		p.String(" / _` | |_ / _` / __|/ __|| | '_ ` _ \\ ").Foreground(p.Color("#c084fc")),
		p.String("| (_| |  _| (_| \\__ \\\\__ \\| | | | | | |").Foreground(p.Color("#e879f9")),
		p.String(" \\__,_|_|  \\__,_|___/|___/|_|_| |_| |_|").Foreground(p.Color("#f472b6")),
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}

// ResultStyle colours a result label: green for Accepted, red otherwise.
func ResultStyle(accepted bool, label string) string {
	p := termenv.ColorProfile()
	color := "#f87171"
	if accepted {
		color = "#4ade80"
	}
	return p.String(label).Foreground(p.Color(color)).Bold().String()
}
