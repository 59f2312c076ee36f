package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mindweaver"
	"github.com/phanxgames/mindweaver/internal/ui"
	"github.com/phanxgames/mindweaver/raster"
)

func exportCmd() *cobra.Command {
	var (
		format, output, focus, search string
		toClipboard                   bool
		width, height                 int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the map as JSON or PNG",
		Long: "Export the map as JSON (the import format) or as a PNG picture.\n" +
			"--focus and --search limit a PNG to the bubbles they let through.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := openSession(loadConfig())
			if err := applyFilter(sess, focus, search); err != nil {
				return err
			}

			var buf bytes.Buffer
			switch format {
			case "json":
				if err := sess.Export(&buf); err != nil {
					return err
				}
			case "png":
				if toClipboard {
					return fmt.Errorf("mindweaver: --clipboard only works with --format json")
				}
				if err := raster.ExportPNG(&buf, sess.Graph(), sess.Visible(), width, height); err != nil {
					return err
				}
			default:
				return fmt.Errorf("mindweaver: unknown format %q (want json or png)", format)
			}

			if toClipboard {
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("mindweaver: clipboard: %w", err)
				}
				ui.Good.Println("Copied map to clipboard")
				return nil
			}
			if output == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if output == "" {
				output = mindweaver.ExportFileName
				if format == "png" {
					output = "mindweaver.png"
				}
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("mindweaver: export: %w", err)
			}
			fmt.Printf("%s Exported %d bubbles to %s\n", ui.StatusIcon(true), len(sess.Visible()), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (- for stdout)")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy JSON to the clipboard instead of a file")
	cmd.Flags().StringVar(&focus, "focus", "", "Only bubbles around this bubble id (png)")
	cmd.Flags().StringVar(&search, "search", "", "Only bubbles matching this query (png)")
	cmd.Flags().IntVar(&width, "width", 1280, "PNG width")
	cmd.Flags().IntVar(&height, "height", 800, "PNG height")
	return cmd
}

func importCmd() *cobra.Command {
	var fromClipboard bool
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the map with an exported one",
		Long:  "Replace the stored map with an exported JSON map. A malformed file leaves the stored map unchanged.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			switch {
			case fromClipboard:
				s, err := clipboard.ReadAll()
				if err != nil {
					return fmt.Errorf("mindweaver: clipboard: %w", err)
				}
				r = bytes.NewBufferString(s)
			case len(args) == 1 && args[0] != "-":
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("mindweaver: import: %w", err)
				}
				defer f.Close()
				r = f
			case len(args) == 1:
				r = cmd.InOrStdin()
			default:
				return fmt.Errorf("mindweaver: import: need a file, - or --clipboard")
			}

			sess := openSession(loadConfig())
			if err := sess.Import(r); err != nil {
				return err
			}
			g := sess.Graph()
			fmt.Printf("%s Imported %d bubbles and %d connections\n",
				ui.StatusIcon(true), len(g.Bubbles), len(g.Connections))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read JSON from the clipboard")
	return cmd
}
