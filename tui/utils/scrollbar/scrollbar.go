// Package scrollbar renders a one-column scrollbar next to a viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/grovetools/jsontree/tui/theme"
)

const (
	thumbChar = "█"
	trackChar = "░"
)

// Generate returns one scrollbar cell per line for the given height, with
// the thumb sized and placed from the viewport's scroll state.
func Generate(vp *viewport.Model, height int) []string {
	if height <= 0 {
		return nil
	}

	muted := theme.DefaultTheme.Muted
	cells := make([]string, height)

	totalLines := vp.TotalLineCount()
	if totalLines == 0 {
		for i := range cells {
			cells[i] = muted.Render(" ")
		}
		return cells
	}

	// Content fits; the thumb fills the whole track.
	if totalLines <= vp.Height {
		for i := range cells {
			cells[i] = muted.Render(thumbChar)
		}
		return cells
	}

	thumbSize := (height * vp.Height) / totalLines
	if thumbSize < 1 {
		thumbSize = 1
	}

	scrollPercent := vp.ScrollPercent()
	if scrollPercent < 0 {
		scrollPercent = 0
	} else if scrollPercent > 1 {
		scrollPercent = 1
	}

	maxThumbStart := height - thumbSize
	thumbStart := int(float64(maxThumbStart)*scrollPercent + 0.5)
	if thumbStart < 0 {
		thumbStart = 0
	} else if thumbStart > maxThumbStart {
		thumbStart = maxThumbStart
	}

	for i := range cells {
		if i >= thumbStart && i < thumbStart+thumbSize {
			cells[i] = muted.Render(thumbChar)
		} else {
			cells[i] = muted.Render(trackChar)
		}
	}
	return cells
}

// Overlay appends a scrollbar cell to each visible line of the viewport.
func Overlay(vp *viewport.Model) string {
	lines := strings.Split(vp.View(), "\n")
	cells := Generate(vp, len(lines))

	result := make([]string, len(lines))
	for i, line := range lines {
		cell := " "
		if i < len(cells) {
			cell = cells[i]
		}
		result[i] = line + cell
	}
	return strings.Join(result, "\n")
}
