package inspect

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type row struct {
	key, value string
}

func rows(s State) []row {
	return []row{
		{"frame", strconv.FormatUint(s.Frame, 10)},
		{"location", s.Location},
		{"nav mode", s.Mode},
		{"open dropdown", orDash(s.OpenDropdown)},
		{"mobile open", strconv.FormatBool(s.MobileOpen)},
		{"scrolled", strconv.FormatBool(s.Scrolled)},
		{"header height", fmt.Sprintf("%.1f", s.HeaderHeight)},
		{"language", s.Language},
		{"language open", strconv.FormatBool(s.LanguageOpen)},
		{"scroll y", fmt.Sprintf("%.1f", s.ScrollY)},
		{"active feature", strconv.Itoa(s.ActiveFeature)},
		{"features paused", strconv.FormatBool(s.FeaturesPaused)},
		{"stats", strings.Join(s.Stats, " / ")},
		{"tilt", fmt.Sprintf("%.2f°, %.2f°", s.TiltX, s.TiltY)},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func page(s State, ok bool) g.Node {
	var body g.Node
	if ok {
		body = Table(
			Class("state"),
			TBody(g.Map(rows(s), func(r row) g.Node {
				return Tr(Th(g.Text(r.key)), Td(g.Text(r.value)))
			})),
		)
	} else {
		body = P(Class("empty"), g.Text("Waiting for the first frame."))
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(g.Attr("http-equiv", "refresh"), g.Attr("content", "1")),
				TitleEl(g.Text("sway inspector")),
				StyleEl(g.Raw("body{font-family:monospace;margin:2rem}th{text-align:left;padding-right:2rem}")),
			),
			Body(
				H1(g.Text("sway inspector")),
				body,
			),
		),
	})
}
