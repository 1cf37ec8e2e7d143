package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/config"
	"github.com/ananya-v/explorables/internal/export"
	"github.com/ananya-v/explorables/internal/gallery"
	"github.com/ananya-v/explorables/internal/gui"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/numeric"
	"github.com/ananya-v/explorables/internal/topics"
	"github.com/ananya-v/explorables/internal/tour"
	"github.com/ananya-v/explorables/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	themeName  string
	frameRate  int
	setFlags   []string
	samples    int
	modeName   string
	svgScale   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "explorables",
		Short: "interactive lessons for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Lesson = ""
			return ui.Run(topics.NewCatalog(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".explorables", "data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list lessons",
		RunE:  listLessons,
	}

	openCmd := &cobra.Command{
		Use:   "open [lesson]",
		Short: "open a lesson directly",
		Args:  cobra.ExactArgs(1),
		RunE:  openLesson,
	}
	openCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	openCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	openCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	openCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	openCmd.Flags().StringArrayVar(&setFlags, "set", nil, "set parameter (name=value)")

	tourCmd := &cobra.Command{
		Use:   "tour [lesson]",
		Short: "print a lesson's guided walkthrough",
		Args:  cobra.ExactArgs(1),
		RunE:  printTour,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [lesson]",
		Short: "list available presets for a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for lesson: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [lesson]",
		Short: "chart the lesson's series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotLesson,
	}
	plotCmd.Flags().IntVar(&samples, "samples", 120, "number of samples")
	plotCmd.Flags().StringVar(&modeName, "mode", "", "lesson mode")
	plotCmd.Flags().StringArrayVar(&setFlags, "set", nil, "set parameter (name=value)")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [lesson]",
		Short: "frequency analysis of the lesson's series",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumLesson,
	}
	spectrumCmd.Flags().IntVar(&samples, "samples", 256, "number of samples")
	spectrumCmd.Flags().StringVar(&modeName, "mode", "", "lesson mode")
	spectrumCmd.Flags().StringArrayVar(&setFlags, "set", nil, "set parameter (name=value)")

	snapCmd := &cobra.Command{
		Use:   "snap [lesson]",
		Short: "save a gallery snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  snapLesson,
	}
	snapCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	snapCmd.Flags().StringVar(&modeName, "mode", "", "lesson mode")
	snapCmd.Flags().StringArrayVar(&setFlags, "set", nil, "set parameter (name=value)")
	snapCmd.Flags().IntVar(&samples, "samples", 120, "number of series samples")
	snapCmd.Flags().Float64Var(&svgScale, "svg-scale", 4, "svg dot pitch")

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "list saved snapshots",
		RunE:  listGallery,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [snapshot_id]",
		Short: "print a snapshot's svg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svg, err := gallery.New(dataDir).LoadSVG(args[0])
			if err != nil {
				return err
			}
			fmt.Println(svg)
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [snapshot_id]",
		Short: "print a snapshot's series as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	guiCmd := &cobra.Command{
		Use:   "gui [lesson]",
		Short: "open the windowed renderer",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			gui.Run(topics.NewCatalog(), name)
		},
	}

	rootCmd.AddCommand(listCmd, openCmd, tourCmd, presetsCmd, plotCmd, spectrumCmd,
		snapCmd, galleryCmd, exportSVGCmd, exportCSVCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective config: preset, then config file, then
// flags on top.
func buildConfig(cmd *cobra.Command, lessonID string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Lesson = lessonID

	if preset != "" {
		p := config.GetPreset(lessonID, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(lessonID))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Lesson = lessonID
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cfg.Params == nil {
		cfg.Params = make(map[string]float64)
	}
	for _, kv := range setFlags {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("bad --set %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --set %q: %w", kv, err)
		}
		cfg.Params[name] = v
	}
	if modeName != "" {
		cfg.Mode = modeName
	}
	return cfg, nil
}

// buildLesson makes a configured lesson instance for the headless commands.
func buildLesson(cmd *cobra.Command, lessonID string) (lesson.Lesson, error) {
	cfg, err := buildConfig(cmd, lessonID)
	if err != nil {
		return nil, err
	}
	l, err := topics.NewCatalog().Get(lessonID)
	if err != nil {
		return nil, err
	}
	if cfg.Mode != "" {
		if err := l.SetMode(cfg.Mode); err != nil {
			return nil, err
		}
	}
	for name, v := range cfg.Params {
		if err := l.SetParam(name, v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func listLessons(cmd *cobra.Command, args []string) error {
	reg := topics.NewCatalog()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTOPIC\tTITLE\tSUMMARY")
	for _, id := range reg.List() {
		l, err := reg.Get(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.ID(), l.Topic(), l.Title(), l.Summary())
	}
	return w.Flush()
}

func openLesson(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	reg := topics.NewCatalog()
	if _, err := reg.Get(args[0]); err != nil {
		return err
	}
	return ui.Run(reg, cfg)
}

func printTour(cmd *cobra.Command, args []string) error {
	l, err := topics.NewCatalog().Get(args[0])
	if err != nil {
		return err
	}

	walk := tour.New(l.Tour())
	if walk.Len() == 0 {
		fmt.Printf("no walkthrough for %s\n", args[0])
		return nil
	}

	walk.Open()
	for {
		step := walk.Current()
		fmt.Printf("[%d/%d] %s\n", walk.Index()+1, walk.Len(), step.Title)
		fmt.Printf("  %s\n", step.Body)
		if step.Highlight != "" {
			fmt.Printf("  watch: %s\n", step.Highlight)
		}
		for _, line := range l.Readout() {
			fmt.Printf("  | %s\n", line)
		}
		fmt.Println()
		if walk.Index() == walk.Len()-1 {
			break
		}
		walk.Next()
	}
	return nil
}

func plotLesson(cmd *cobra.Command, args []string) error {
	l, err := buildLesson(cmd, args[0])
	if err != nil {
		return err
	}

	series := l.Series(samples)
	if len(series) < 2 {
		return fmt.Errorf("nothing to plot")
	}

	fmt.Printf("%s (%s)\n\n", l.Title(), l.ID())
	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(l.Summary()),
	)
	fmt.Println(graph)
	fmt.Println()
	for _, line := range l.Readout() {
		fmt.Println(line)
	}
	return nil
}

func spectrumLesson(cmd *cobra.Command, args []string) error {
	l, err := buildLesson(cmd, args[0])
	if err != nil {
		return err
	}

	series := l.Series(samples)
	ps := numeric.PowerSpectrum(series)
	if len(ps) < 2 {
		return fmt.Errorf("series too short for spectrum")
	}

	fmt.Printf("power spectrum: %s\n\n", l.Title())
	plotData := ps
	if len(plotData) > 64 {
		plotData = plotData[:64]
	}
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("magnitude per frequency bin"),
	)
	fmt.Println(graph)

	if bin := numeric.DominantBin(ps); bin > 0 {
		fmt.Printf("\ndominant bin: %d (%.1f cycles over the window)\n", bin, float64(bin))
	}
	return nil
}

func snapLesson(cmd *cobra.Command, args []string) error {
	l, err := buildLesson(cmd, args[0])
	if err != nil {
		return err
	}

	st := gallery.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	board := canvas.New(80, 24)
	l.Draw(board)

	params := make(map[string]float64)
	for _, p := range l.Params() {
		params[p.Name] = p.Value
	}

	id, err := st.Save(gallery.Snapshot{
		Lesson:  l.ID(),
		Title:   l.Title(),
		Mode:    l.Mode(),
		Params:  params,
		Readout: l.Readout(),
	}, l.Series(samples), export.CanvasSVG(board, svgScale))
	if err != nil {
		return err
	}

	fmt.Printf("saved snapshot: %s\n", id)
	return nil
}

func listGallery(cmd *cobra.Command, args []string) error {
	snaps, err := gallery.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLESSON\tMODE\tTIME")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.ID, s.Lesson, s.Mode, s.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	series, err := gallery.New(dataDir).LoadSeries(args[0])
	if err != nil {
		return err
	}
	fmt.Println("i,value")
	for i, v := range series {
		fmt.Printf("%d,%s\n", i, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return nil
}
