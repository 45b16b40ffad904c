package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	dxf "github.com/bert/libdxf-sub001"
	"github.com/bert/libdxf-sub001/internal/parallel"
)

var (
	inspectWatch bool
	inspectJobs  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Summarize the HATCH entities of DXF files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectWatch, "watch", "w", false, "re-run whenever the file changes (single file only)")
	inspectCmd.Flags().IntVarP(&inspectJobs, "jobs", "j", 0, "files to read in parallel (default GOMAXPROCS)")
	rootCmd.AddCommand(inspectCmd)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectWatch && len(args) > 1 {
		return fmt.Errorf("--watch takes a single file, got %d", len(args))
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := inspectAll(cmd, args, cfg.CodePage); err != nil {
		return err
	}
	if !inspectWatch {
		return nil
	}

	path := args[0]
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	cmd.PrintErrln(keyStyle.Render("watching " + path + " (ctrl-c to stop)"))

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := inspectAll(cmd, args, cfg.CodePage); err != nil {
				cmd.PrintErrln(warnStyle.Render(err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrln(warnStyle.Render(err.Error()))
		}
	}
}

// inspectAll reads every file, in parallel, and prints the summaries in
// argument order. The first failure is returned after all files have
// been attempted and every successful summary printed.
func inspectAll(cmd *cobra.Command, paths []string, page string) error {
	reports := make([]string, len(paths))
	jobs := make([]func() error, len(paths))
	for i, path := range paths {
		i, path := i, path
		jobs[i] = func() error {
			report, err := inspectFile(path, page)
			reports[i] = report
			return err
		}
	}
	errs := parallel.New(inspectJobs).Run(jobs)

	var firstErr error
	for i := range paths {
		if errs[i] != nil {
			cmd.PrintErrln(warnStyle.Render(errs[i].Error()))
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		cmd.Println(reports[i])
	}
	return firstErr
}

func inspectFile(path, page string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hatches, err := scanHatches(f, page)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d HATCH", path, len(hatches))))
	for i, h := range hatches {
		b.WriteString("\n")
		b.WriteString(summarizeHatch(i+1, h))
	}
	return b.String(), nil
}

// summarizeHatch renders one hatch as an indented block.
func summarizeHatch(n int, h *dxf.Hatch) string {
	var b strings.Builder

	fill := "pattern"
	if h.SolidFill {
		fill = "solid"
	}
	fmt.Fprintf(&b, "  %s handle=%s layer=%s fill=%s style=%s",
		titleStyle.Render(fmt.Sprintf("#%d", n)), orDash(h.Handle), h.Layer, fill, h.Style)
	if h.Associative {
		b.WriteString(" associative")
	}
	b.WriteString("\n")

	for _, p := range h.Paths {
		switch l := p.(type) {
		case *dxf.EdgeLoop:
			counts := map[string]int{}
			for _, e := range l.Edges {
				switch e.(type) {
				case *dxf.LineEdge:
					counts["line"]++
				case *dxf.ArcEdge:
					counts["arc"]++
				case *dxf.EllipseEdge:
					counts["ellipse"]++
				case *dxf.SplineEdge:
					counts["spline"]++
				}
			}
			fmt.Fprintf(&b, "    %s edge loop: %d edges %v\n", keyStyle.Render("-"), len(l.Edges), counts)
		case *dxf.PolylineLoop:
			closed := "open"
			if l.Closed {
				closed = "closed"
			}
			fmt.Fprintf(&b, "    %s polyline loop: %d vertices, %s\n", keyStyle.Render("-"), len(l.Vertices), closed)
		}
	}

	if h.Pattern != nil {
		fmt.Fprintf(&b, "    %s pattern %q: %d definition lines, %d seed points",
			keyStyle.Render("-"), h.PatternName, len(h.Pattern.DefLines), len(h.Pattern.SeedPoints))
	}
	return strings.TrimRight(b.String(), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
