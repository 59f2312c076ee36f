package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/mindweaver/internal/browse"
	"github.com/phanxgames/mindweaver/window"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the editor window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow()
		},
	}
}

func runWindow() error {
	cfg := loadConfig()
	sess := openSession(cfg)
	return window.Run(sess, window.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		ShowFPS:       cfg.Window.ShowFPS,
		ScreenshotDir: cfg.Debug.ScreenshotDir,
	})
}

func browseCmd() *cobra.Command {
	var focus, search string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the map in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := openSession(loadConfig())
			if err := applyFilter(sess, focus, search); err != nil {
				return err
			}
			return browse.Run(sess)
		},
	}
	cmd.Flags().StringVar(&focus, "focus", "", "Start focused on this bubble id")
	cmd.Flags().StringVar(&search, "search", "", "Start with this search query")
	return cmd
}
