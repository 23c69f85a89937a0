package commands

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/ui/output"
	"go.trai.ch/steady/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <blob>",
		Short: "Decode a persisted instance and print its stored state",
		Args:  cobra.ExactArgs(1),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			in, err := c.app.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := output.Renderer(out)
			header := r.NewStyle().Inherit(style.Header)

			if in.Recovered {
				_, _ = fmt.Fprintln(out, r.NewStyle().Inherit(style.Bad).Render(style.Warning+" unreadable blob, showing the recovered default"))
			} else {
				_, _ = fmt.Fprintf(out, "%s format v%d\n", r.NewStyle().Inherit(style.Good).Render(style.Check), in.Version)
			}

			rows := [][]string{
				{"instance id", in.Stored.InstanceID},
				{"media", in.Stored.MediaFilePath},
				{"sequence size", formatSize(in.Stored.SequenceSize)},
				{"media fps", strconv.FormatFloat(in.Stored.MediaFPS, 'g', -1, 64)},
				{"ever changed", strconv.FormatBool(in.State.EverChanged)},
				{"reload pending", strconv.FormatBool(in.State.ReloadPending)},
				{"frames", strconv.Itoa(in.State.NumFrames)},
				{"pending values", strconv.Itoa(in.Stored.Pending.Len())},
			}
			_, _ = fmt.Fprintln(out, header.Render("Instance"))
			writeTable(out, r, []string{"field", "value"}, rows)

			values := valueRows(in.Stored.Values)
			if len(values) > 0 {
				_, _ = fmt.Fprintln(out, header.Render("Values"))
				writeTable(out, r, []string{"param", "value"}, values)
			}
			return nil
		}),
	}
}

func formatSize(s domain.Size) string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

func valueRows(v domain.ParamValues) [][]string {
	all := make(map[domain.Param]string, v.Len())
	for p, f := range v.Float {
		all[p] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	for p, b := range v.Bool {
		all[p] = strconv.FormatBool(b)
	}
	for p, s := range v.String {
		all[p] = s
	}
	for p, i := range v.Int {
		all[p] = strconv.Itoa(int(i))
	}

	rows := make([][]string, 0, len(all))
	for _, p := range slices.Sorted(maps.Keys(all)) {
		rows = append(rows, []string{p.String(), all[p]})
	}
	return rows
}
