package report

import (
	"fmt"
	"io"

	"champstandingsbot/pkg/standings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary writes a per-class operator table to w: class name, driver
// count and current leader. Console companion to the chat report.
func Summary(w io.Writer, classes []standings.ClassStandings) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Clase", "Pilotos", "Líder", "Puntos"})
	for _, class := range sortedByClassName(classes) {
		leader := "-"
		points := "-"
		if len(class.Standings) > 0 {
			leader = class.Standings[0].DriverName
			points = fmt.Sprintf("%.1f", class.Standings[0].ChampionshipPoints)
		}
		t.AppendRow([]interface{}{class.ClassName, len(class.Standings), leader, points})
	}
	t.Render()
}
