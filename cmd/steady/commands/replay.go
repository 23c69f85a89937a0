package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/steady/internal/app"
)

func replayFlags(cmd *cobra.Command, opts *app.ReplayOptions) {
	cmd.Flags().IntVarP(&opts.Concurrency, "concurrency", "j", 0, "Number of frames rendered in parallel (default: one per CPU)")
	cmd.Flags().StringVar(&opts.SavePath, "save", "", "Write the last live instance to this blob file")
}

func (c *CLI) newReplayCmd() *cobra.Command {
	var opts app.ReplayOptions
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a host event script and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Replay(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), report)
			return nil
		}),
	}
	replayFlags(cmd, &opts)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	var opts app.ReplayOptions
	cmd := &cobra.Command{
		Use:   "watch <script.yaml>",
		Short: "Replay a script, then reload instances when their project files change",
		Args:  cobra.ExactArgs(1),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return c.app.Watch(cmd.Context(), args[0], opts, func(report *app.Report) {
				writeReport(out, report)
			})
		}),
	}
	replayFlags(cmd, &opts)
	return cmd
}
