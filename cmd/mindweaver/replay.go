package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mindweaver"
	"github.com/phanxgames/mindweaver/internal/config"
	"github.com/phanxgames/mindweaver/internal/ui"
	"github.com/phanxgames/mindweaver/raster"
)

func replayCmd() *cobra.Command {
	var (
		outDir        string
		width, height int
		persist       bool
	)
	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Run a scripted session headlessly and save its screenshots",
		Long: "Run a JSON input script against the map without opening a window.\n" +
			"Screenshot steps are rendered to PNG. The stored map is only changed with --persist.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("mindweaver: replay: %w", err)
			}
			runner, err := mindweaver.LoadScript(data)
			if err != nil {
				return err
			}

			cfg := loadConfig()
			var store mindweaver.Store = mindweaver.NewFileStore(cfg.DataFile())
			if !persist {
				mem := &mindweaver.MemoryStore{}
				if err := mem.Save(store.Load()); err != nil {
					return err
				}
				store = mem
			}
			sess := mindweaver.NewSession(mindweaver.SessionConfig{
				Store:    store,
				Defaults: cfg.BubbleDefaults(),
				MinScale: cfg.Viewport.MinScale,
				MaxScale: cfg.Viewport.MaxScale,
			})
			sess.SetDebugMode(cfg.Debug.Enabled)

			if outDir == "" {
				outDir = cfg.Debug.ScreenshotDir
			}
			files, err := raster.Replay(sess, runner, width, height, outDir)
			for _, f := range files {
				fmt.Printf("  %s %s\n", ui.StatusIcon(true), f)
			}
			if err != nil {
				return err
			}
			ui.Subtle.Printf("  %d screenshots\n", len(files))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Screenshot directory (default debug.screenshot_dir)")
	cmd.Flags().IntVar(&width, "width", 1280, "Surface width")
	cmd.Flags().IntVar(&height, "height", 800, "Surface height")
	cmd.Flags().BoolVar(&persist, "persist", false, "Save changes made by the script to the map file")
	return cmd
}

func configCmd() *cobra.Command {
	var initFile bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				if _, err := os.Stat(config.Path()); err == nil {
					ui.Warn.Printf("  %s %s already exists\n", ui.WarnIcon(), config.Path())
					return nil
				}
				if err := config.Save(config.Default()); err != nil {
					return fmt.Errorf("mindweaver: config: %w", err)
				}
				fmt.Printf("%s Wrote %s\n", ui.StatusIcon(true), config.Path())
				return nil
			}
			cfg := loadConfig()
			ui.Banner("configuration")
			fmt.Printf("  Config:  %s\n", config.Path())
			fmt.Printf("  Map:     %s\n\n", cfg.DataFile())
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file if none exists")
	return cmd
}
