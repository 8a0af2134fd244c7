package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"imagegrid/pkg/config"
	"imagegrid/pkg/grid"
	"imagegrid/pkg/images"
	"imagegrid/pkg/render"
	"imagegrid/pkg/text"
)

// parseLabels splits a comma-separated flag value into trimmed labels.
func parseLabels(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	labels := make([]string, len(parts))
	for i, p := range parts {
		labels[i] = strings.TrimSpace(p)
	}
	return labels
}

// inputSummary describes each input as "path: WxH" for verbose output.
// Decoded files stay in the image cache for the composition that follows.
// Remote sources and unreadable files are annotated, not failed; real
// errors surface when the grid composes.
func inputSummary(paths []string) []string {
	lines := make([]string, len(paths))
	for i, p := range paths {
		if images.IsURL(p) {
			lines[i] = p + ": remote"
			continue
		}
		w, h, err := images.Dimensions(p)
		if err != nil {
			lines[i] = p + ": unreadable"
			continue
		}
		lines[i] = fmt.Sprintf("%s: %dx%d", p, w, h)
	}
	return lines
}

func main() {
	var output string
	flag.StringVar(&output, "o", "", "output file path (.png, .jpg)")
	flag.StringVar(&output, "output", "", "output file path (.png, .jpg)")

	rows := flag.Int("rows", 0, "number of rows (auto-calculated if 0)")
	cols := flag.Int("cols", 0, "number of columns (auto-calculated if 0)")

	labels := flag.String("labels", "", "comma-separated labels for each image")
	xLabels := flag.String("x-labels", "", "comma-separated column labels")
	yLabels := flag.String("y-labels", "", "comma-separated row labels")

	labelsAlign := flag.String("labels-align", "center", "alignment for image labels: left, center, right")
	xLabelsAlign := flag.String("x-labels-align", "left", "alignment for column labels: left, center, right")
	yLabelsAlign := flag.String("y-labels-align", "left", "alignment for row labels: left, center, right")

	labelsMaxLines := flag.Int("labels-max-lines", 1, "maximum lines for image labels")
	xLabelsMaxLines := flag.Int("x-labels-max-lines", 2, "maximum lines for column labels")
	yLabelsMaxLines := flag.Int("y-labels-max-lines", 2, "maximum lines for row labels")

	spacing := flag.Int("spacing", 5, "spacing between images in pixels")
	fontSize := flag.Float64("font-size", 12, "font size for labels")
	fontPath := flag.String("font-path", "", "path to a TrueType or OpenType font file")
	background := flag.String("background-color", "white", "background color name or #rrggbb")

	preset := flag.String("preset", "", "built-in preset: "+strings.Join(config.Names(), ", "))
	configPath := flag.String("config", "", "TOML preset file; explicit flags override it")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imagegrid [flags] <image>...\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one image file is required")
		flag.Usage()
		os.Exit(1)
	}
	if output == "" {
		fmt.Fprintln(os.Stderr, "Error: an output path is required (-o)")
		flag.Usage()
		os.Exit(1)
	}

	// Presets apply first so explicitly set flags win.
	var opts []grid.Option
	if *preset != "" {
		po, err := config.Get(*preset).Options()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, po...)
	}
	if *configPath != "" {
		p, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		po, err := p.Options()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, po...)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["rows"] {
		opts = append(opts, grid.WithRows(*rows))
	}
	if set["cols"] {
		opts = append(opts, grid.WithCols(*cols))
	}
	if set["spacing"] {
		opts = append(opts, grid.WithSpacing(*spacing))
	}
	if set["font-size"] {
		opts = append(opts, grid.WithFontSize(*fontSize))
	}
	if set["font-path"] {
		opts = append(opts, grid.WithFontPath(*fontPath))
	}
	if set["background-color"] {
		c, err := render.ParseColor(*background)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, grid.WithBackground(c))
	}
	if set["labels-align"] {
		a, err := text.ParseAlign(*labelsAlign)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, grid.WithCellLabelsAlign(a))
	}
	if set["x-labels-align"] {
		a, err := text.ParseAlign(*xLabelsAlign)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, grid.WithColumnLabelsAlign(a))
	}
	if set["y-labels-align"] {
		a, err := text.ParseAlign(*yLabelsAlign)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, grid.WithRowLabelsAlign(a))
	}
	if set["labels-max-lines"] {
		opts = append(opts, grid.WithCellLabelsMaxLines(*labelsMaxLines))
	}
	if set["x-labels-max-lines"] {
		opts = append(opts, grid.WithColumnLabelsMaxLines(*xLabelsMaxLines))
	}
	if set["y-labels-max-lines"] {
		opts = append(opts, grid.WithRowLabelsMaxLines(*yLabelsMaxLines))
	}

	if ls := parseLabels(*labels); ls != nil {
		opts = append(opts, grid.WithCellLabels(ls...))
	}
	if ls := parseLabels(*xLabels); ls != nil {
		opts = append(opts, grid.WithColumnLabels(ls...))
	}
	if ls := parseLabels(*yLabels); ls != nil {
		opts = append(opts, grid.WithRowLabels(ls...))
	}

	paths := flag.Args()
	var missing []string
	for _, p := range paths {
		if images.IsURL(p) {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintln(os.Stderr, "Error: the following image files were not found:")
		for _, m := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", m)
		}
		os.Exit(1)
	}

	if *verbose {
		grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		fmt.Fprintf(os.Stderr, "Creating grid from %d images...\n", len(paths))
		for _, line := range inputSummary(paths) {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
		if *rows > 0 || *cols > 0 {
			fmt.Fprintf(os.Stderr, "Grid size: %dx%d\n", *rows, *cols)
		} else {
			fmt.Fprintln(os.Stderr, "Grid size: auto")
		}
	}

	g, err := grid.New(images.FromFiles(paths...), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := g.Save(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid saved to: %s\n", output)
	if *verbose {
		fmt.Printf("Grid size: %dx%d pixels\n", g.Width(), g.Height())
	}
}
