package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindweaver"
	"github.com/phanxgames/mindweaver/internal/ui"
)

func listCmd() *cobra.Command {
	var focus, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the visible bubbles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := openSession(loadConfig())
			if err := applyFilter(sess, focus, search); err != nil {
				return err
			}
			vis := sess.Visible()
			if len(vis) == 0 {
				ui.Subtle.Println("  No bubbles.")
				return nil
			}
			rows := make([][]string, 0, len(vis))
			for _, b := range vis {
				rows = append(rows, []string{
					strconv.FormatInt(int64(b.ID), 10),
					b.Icon,
					ui.Truncate(b.Title, 32),
					ui.Truncate(b.Tags, 24),
					fmt.Sprintf("%.0f,%.0f", b.X, b.Y),
					strconv.Itoa(links(sess.Graph(), b.ID)),
				})
			}
			ui.Table([]string{"ID", "", "TITLE", "TAGS", "POS", "LINKS"}, rows)
			fmt.Println()
			ui.Subtle.Printf("  %d of %d bubbles\n", len(vis), len(sess.Graph().Bubbles))
			return nil
		},
	}
	cmd.Flags().StringVar(&focus, "focus", "", "Only this bubble and its neighbours")
	cmd.Flags().StringVar(&search, "search", "", "Only bubbles whose title or tags match")
	return cmd
}

func links(g *mindweaver.Graph, id mindweaver.BubbleID) int {
	n := 0
	for _, c := range g.Connections {
		if c.Touches(id) {
			n++
		}
	}
	return n
}

func addCmd() *cobra.Command {
	var b mindweaver.Bubble
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bubble",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			sess := openSession(cfg)
			nb := b
			if !cmd.Flags().Changed("title") {
				nb.Title = cfg.Bubble.Title
			}
			if !cmd.Flags().Changed("icon") {
				nb.Icon = cfg.Bubble.Icon
			}
			if nb.Color != "" {
				if _, ok := mindweaver.ParseColor(nb.Color); !ok {
					ui.Warn.Printf("  %s unrecognized color %q, drawn gray\n", ui.WarnIcon(), nb.Color)
				}
			}
			added := sess.AddBubble(&nb)
			fmt.Printf("%s Added bubble %d %s\n", ui.StatusIcon(true), added.ID, ui.Brand.Sprint(added.Title))
			return nil
		},
	}
	cmd.Flags().StringVar(&b.Title, "title", "", "Title")
	cmd.Flags().StringVar(&b.Description, "description", "", "Description")
	cmd.Flags().StringVar(&b.Color, "color", "", "CSS color (random from the palette if empty)")
	cmd.Flags().StringVar(&b.Icon, "icon", "", "Icon glyph")
	cmd.Flags().StringVar(&b.Tags, "tags", "", "Tags")
	cmd.Flags().Float64Var(&b.X, "x", 0, "World x")
	cmd.Flags().Float64Var(&b.Y, "y", 0, "World y")
	return cmd
}

func connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <from> <to>",
		Short: "Connect two bubbles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseID(args[0])
			if err != nil {
				return err
			}
			to, err := parseID(args[1])
			if err != nil {
				return err
			}
			sess := openSession(loadConfig())
			if err := sess.Connect(from, to); err != nil {
				return err
			}
			fmt.Printf("%s Connected %d and %d\n", ui.StatusIcon(true), from, to)
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every bubble and connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := openSession(loadConfig())
			confirm := func(prompt string) bool {
				if yes {
					return true
				}
				return promptYesNo(prompt)
			}
			if !sess.Reset(confirm) {
				ui.Subtle.Println("  Cancelled.")
				return nil
			}
			fmt.Printf("%s Map cleared\n", ui.StatusIcon(true))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// promptYesNo asks on stdin; anything but y/yes is no.
func promptYesNo(prompt string) bool {
	fmt.Printf("%s %s [y/N] ", ui.WarnIcon(), prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
