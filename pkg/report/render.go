package report

import (
	"fmt"
	"sort"
	"strings"

	"champstandingsbot/pkg/standings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Column widths are fixed so every row of a table has the same length
// regardless of content. Over-long cells are snipped with a trailing
// ellipsis, short ones padded.
const (
	positionWidth = 4
	driverWidth   = 22
	carWidth      = 18
	pointsWidth   = 6

	columnSeparator = " | "
	snipIndicator   = "…"
)

// RowWidth is the rune length of every rendered table row.
const RowWidth = positionWidth + driverWidth + carWidth + pointsWidth + 3*len(columnSeparator)

// Render produces the full report: a heading line, then one fenced
// fixed-width table per class. Classes are sorted by name (byte-wise,
// case-sensitive); rows are in rank order as given.
func Render(title string, classes []standings.ClassStandings) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	for _, class := range sortedByClassName(classes) {
		b.WriteString("\n" + class.ClassName + "\n")
		b.WriteString("```\n")
		for _, entry := range class.Standings {
			b.WriteString(row(entry) + "\n")
		}
		b.WriteString("```\n")
	}
	return b.String()
}

func row(e standings.StandingEntry) string {
	cells := []string{
		cell(fmt.Sprintf("%d.", e.Position), positionWidth, text.AlignRight),
		cell(strings.TrimSpace(e.DriverName), driverWidth, text.AlignLeft),
		cell(strings.TrimSpace(e.CarName), carWidth, text.AlignLeft),
		cell(fmt.Sprintf("%.1f", e.ChampionshipPoints), pointsWidth, text.AlignRight),
	}
	return strings.Join(cells, columnSeparator)
}

// cell snips to the column width (marked with the ellipsis) and pads the
// remainder so the cell is exactly width runes.
func cell(s string, width int, align text.Align) string {
	return align.Apply(text.Snip(s, width, snipIndicator), width)
}

func sortedByClassName(classes []standings.ClassStandings) []standings.ClassStandings {
	sorted := append([]standings.ClassStandings{}, classes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ClassName < sorted[j].ClassName
	})
	return sorted
}
