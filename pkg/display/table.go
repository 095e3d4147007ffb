package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/travigo/routeledger/pkg/ctdf"
)

const (
	DestinationColumnWidth = 30
	NumberColumnWidth      = 4
	TimeColumnWidth        = 20

	NoRoutesMessage = "no routes found"
)

// RenderRoutes writes routes as a bordered table. Widths are terminal columns,
// so Cyrillic and wide characters line up.
func RenderRoutes(w io.Writer, routes []*ctdf.Route) {
	if len(routes) == 0 {
		fmt.Fprintln(w, NoRoutesMessage)
		return
	}

	border := borderLine()

	fmt.Fprintln(w, border)
	fmt.Fprintln(w, row(
		center("Destination", DestinationColumnWidth),
		center("#", NumberColumnWidth),
		center("Time", TimeColumnWidth),
	))
	fmt.Fprintln(w, border)

	for _, route := range routes {
		fmt.Fprintln(w, row(
			runewidth.FillRight(route.Destination, DestinationColumnWidth),
			runewidth.FillLeft(route.Number, NumberColumnWidth),
			runewidth.FillRight(route.Time, TimeColumnWidth),
		))
	}

	fmt.Fprintln(w, border)
}

func borderLine() string {
	return fmt.Sprintf("+-%s-+-%s-+-%s-+",
		strings.Repeat("-", DestinationColumnWidth),
		strings.Repeat("-", NumberColumnWidth),
		strings.Repeat("-", TimeColumnWidth),
	)
}

func row(destination string, number string, time string) string {
	return fmt.Sprintf("| %s | %s | %s |", destination, number, time)
}

// Extra padding goes on the right when it cannot be split evenly.
func center(s string, width int) string {
	padding := width - runewidth.StringWidth(s)
	if padding <= 0 {
		return s
	}

	left := padding / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
}
