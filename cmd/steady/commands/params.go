package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/steady/internal/ui/output"
)

func (c *CLI) newParamsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the plugin parameter definitions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			var rows [][]string
			for _, p := range c.app.Params() {
				if p.Hidden && !all {
					continue
				}
				rows = append(rows, []string{p.Name, p.Kind, p.Range, p.Default})
			}
			writeTable(out, output.Renderer(out), []string{"param", "kind", "range", "default"}, rows)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include hidden parameters")
	return cmd
}
