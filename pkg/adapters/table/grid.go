package table

import (
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
)

const (
	// StartMarker flags the start state in the marker column.
	StartMarker = "-->"
	// AcceptMarker flags an accepting state in the marker column.
	AcceptMarker = "*"

	markerCol   = 0
	stateCol    = 1
	firstSymCol = 2
	headerRow   = 1
	firstRow    = 2
)

// Parse turns a headerless grid into a definition.
//
// It returns a *domain.DefinitionError only when the grid itself carries more
// than one start marker, since a Definition cannot express that. All other
// invariants are left to validation.
func Parse(rows [][]string) (*domain.Definition, error) {
	def := &domain.Definition{}

	// 1. Alphabet: header row, column 2 onward. Empty headers disable their column.
	var symbols []string
	if len(rows) > headerRow {
		header := rows[headerRow]
		for col := firstSymCol; col < len(header); col++ {
			sym := cell(header, col)
			symbols = append(symbols, sym)
			if sym != "" {
				def.Alphabet = append(def.Alphabet, sym)
			}
		}
	}

	// 2. State rows.
	var starts []string
	for r := firstRow; r < len(rows); r++ {
		row := rows[r]
		state := cell(row, stateCol)
		if state == "" {
			continue
		}
		def.States = append(def.States, state)

		marker := strings.TrimPrefix(cell(row, markerCol), "'")
		if strings.Contains(marker, StartMarker) {
			starts = append(starts, state)
		}
		if strings.Contains(marker, AcceptMarker) {
			def.Accepting = append(def.Accepting, state)
		}

		for i, sym := range symbols {
			if sym == "" {
				continue
			}
			if next := cell(row, firstSymCol+i); next != "" {
				def.SetTransition(state, sym, next)
			}
		}
	}

	if len(starts) > 0 {
		def.Start = starts[0]
	}
	if len(starts) > 1 {
		return nil, def.ValidateWith(domain.MultipleStartViolation(starts))
	}
	return def, nil
}

// Grid renders def in the layout Parse reads. States and symbols keep their
// declared order.
func Grid(def domain.Definition) [][]string {
	title := def.Name
	if title == "" {
		title = "DFA"
	}

	rows := make([][]string, 0, len(def.States)+2)
	rows = append(rows, []string{title})

	header := make([]string, 0, len(def.Alphabet)+2)
	header = append(header, "", "")
	header = append(header, def.Alphabet...)
	rows = append(rows, header)

	for _, s := range def.States {
		marker := ""
		if s == def.Start {
			marker += StartMarker
		}
		if def.IsAccepting(s) {
			marker += AcceptMarker
		}
		row := []string{marker, s}
		for _, sym := range def.Alphabet {
			next, _ := def.Next(s, sym)
			row = append(row, next)
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
