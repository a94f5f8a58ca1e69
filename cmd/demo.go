package cmd

import (
	"context"
	"os"
	"time"

	"github.com/glint/glint/cli"
	"github.com/spf13/cobra"
)

func demoCommand() *cobra.Command {
	var (
		configFile string
		verbosity  int
		width      int
		frames     int
		interval   time.Duration
		names      []string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render every indicator to the terminal",
		Run: func(cmd *cobra.Command, args []string) {
			app := cli.NewApp(verbosity)

			cfg := cli.DefaultDemoConfig()
			if configFile != "" {
				var err error
				cfg, err = cli.LoadDemoConfig(configFile)
				if err != nil {
					app.Logger.Errorln(err)
					os.Exit(1)
				}
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}
			if cmd.Flags().Changed("frames") {
				cfg.Frames = frames
			}
			if cmd.Flags().Changed("interval") {
				cfg.Interval = interval
			}
			if cmd.Flags().Changed("indicators") {
				cfg.Indicators = names
			}
			if err := cfg.Validate(); err != nil {
				app.Logger.Errorln(err)
				os.Exit(1)
			}

			os.Exit(app.Demo(context.Background(), cfg, os.Stdout))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "Demo config file (yaml)")
	flags.IntVarP(&verbosity, "verbose", "v", 0, "Log verbosity")
	flags.IntVar(&width, "width", 0, "Bar width in columns, 0 fits the terminal")
	flags.IntVar(&frames, "frames", 0, "Number of frames to render, 0 runs until interrupted")
	flags.DurationVar(&interval, "interval", 50*time.Millisecond, "Time between frames")
	flags.StringSliceVar(&names, "indicators", nil, "Indicators to show")

	return cmd
}
