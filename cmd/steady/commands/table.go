package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/ui/output"
	"go.trai.ch/steady/internal/ui/style"
)

// writeTable prints rows as aligned columns under a styled header.
func writeTable(w io.Writer, r *lipgloss.Renderer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, s lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = s.UnsetPaddingRight().Width(widths[i]).Render(cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	header := r.NewStyle().Inherit(style.Header)
	cell := r.NewStyle().Inherit(style.Cell)
	_, _ = fmt.Fprintln(w, line(headers, header))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, line(row, cell))
	}
}

func writeReport(w io.Writer, report *app.Report) {
	r := output.Renderer(w)
	title := report.Script
	if title == "" {
		title = "replay"
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n",
		r.NewStyle().Inherit(style.Header).Render(title),
		r.NewStyle().Inherit(style.Muted).Render("engines cached: "+strconv.Itoa(report.CacheSize)),
	)

	rows := make([][]string, 0, len(report.Instances))
	for _, in := range report.Instances {
		key := in.Key
		if key == "" {
			key = "-"
		}
		rows = append(rows, []string{
			style.Status(in.Loaded) + " " + in.Name,
			shortID(in.InstanceID),
			key,
			in.Status,
			strconv.Itoa(in.Frames),
			fmt.Sprintf("%016x", in.Checksum),
		})
	}
	writeTable(w, r, []string{"instance", "id", "key", "status", "frames", "checksum"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
