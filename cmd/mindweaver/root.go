package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindweaver"
	"github.com/phanxgames/mindweaver/internal/config"
	"github.com/phanxgames/mindweaver/internal/ui"
)

var version = "0.3.0"

var (
	dataFile  string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "mindweaver",
	Short: "mindweaver: a bubble mind-map editor",
	Long: ui.Brand.Sprint(ui.Bubble+" mindweaver") + ": bubbles, connections and an infinite canvas\n" +
		ui.Subtle.Sprint("Run without a command to open the editor window"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow()
	},
}

func init() {
	rootCmd.SetVersionTemplate("mindweaver {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Map file (overrides storage.data_file)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Print render stats and map warnings to stderr")

	rootCmd.AddCommand(
		runCmd(),
		exportCmd(),
		importCmd(),
		listCmd(),
		addCmd(),
		connectCmd(),
		resetCmd(),
		replayCmd(),
		browseCmd(),
		configCmd(),
	)
}

// loadConfig reads the config and applies persistent flags.
func loadConfig() *config.Config {
	cfg := config.Load()
	if dataFile != "" {
		cfg.Storage.DataFile = dataFile
	}
	if debugMode {
		cfg.Debug.Enabled = true
	}
	return cfg
}

// openSession loads the map named by the config into a new session.
func openSession(cfg *config.Config) *mindweaver.Session {
	sess := mindweaver.NewSession(mindweaver.SessionConfig{
		Store:    mindweaver.NewFileStore(cfg.DataFile()),
		Defaults: cfg.BubbleDefaults(),
		MinScale: cfg.Viewport.MinScale,
		MaxScale: cfg.Viewport.MaxScale,
	})
	sess.SetDebugMode(cfg.Debug.Enabled)
	return sess
}

// applyFilter sets focus and search on sess from command flags.
func applyFilter(sess *mindweaver.Session, focus, search string) error {
	if search != "" {
		sess.SetSearch(search)
	}
	if focus == "" {
		return nil
	}
	id, err := parseID(focus)
	if err != nil {
		return err
	}
	if !sess.Focus(id) {
		return fmt.Errorf("mindweaver: focus: %w: %d", mindweaver.ErrUnknownBubble, id)
	}
	return nil
}

func parseID(s string) (mindweaver.BubbleID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("mindweaver: invalid bubble id %q", s)
	}
	return mindweaver.BubbleID(n), nil
}
