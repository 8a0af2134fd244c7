package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"imagegrid/pkg/grid"
	"imagegrid/pkg/images"
	"imagegrid/pkg/render"
)

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

func main() {
	rows := flag.Int("rows", 0, "number of rows (auto-calculated if 0)")
	cols := flag.Int("cols", 0, "number of columns (auto-calculated if 0)")
	labels := flag.String("labels", "", "comma-separated labels for each image")
	xLabels := flag.String("x-labels", "", "comma-separated column labels")
	yLabels := flag.String("y-labels", "", "comma-separated row labels")
	spacing := flag.Int("spacing", 5, "spacing between images in pixels")
	fontSize := flag.Float64("font-size", 12, "font size for labels")
	background := flag.String("background-color", "white", "background color name or #rrggbb")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gridview [flags] <image>...\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	paths := flag.Args()

	bg, err := render.ParseColor(*background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	compose := func(columnLabels []string) (*grid.Grid, error) {
		opts := []grid.Option{
			grid.WithShape(*rows, *cols),
			grid.WithSpacing(*spacing),
			grid.WithFontSize(*fontSize),
			grid.WithBackground(bg),
		}
		if len(columnLabels) > 0 {
			opts = append(opts, grid.WithColumnLabels(columnLabels...))
		}
		if ls := parseLabels(*yLabels); ls != nil {
			opts = append(opts, grid.WithRowLabels(ls...))
		}
		if ls := parseLabels(*labels); ls != nil {
			opts = append(opts, grid.WithCellLabels(ls...))
		}
		return grid.New(images.FromFiles(paths...), opts...)
	}

	g, err := compose(parseLabels(*xLabels))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("imagegrid %dx%d", g.Rows(), g.Cols()))

	canvasImg := canvas.NewImageFromImage(g.Image())
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel(fmt.Sprintf("%d images, %dx%d pixels", len(paths), g.Width(), g.Height()))

	// Editing column labels recomposes the grid in place.
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("column labels, comma-separated")
	labelEntry.SetText(*xLabels)
	labelEntry.OnSubmitted = func(s string) {
		status.SetText("Recomposing...")
		go func() {
			ng, err := compose(parseLabels(s))
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}
			canvasImg.Image = ng.Image()
			canvasImg.Refresh()
			w.SetTitle(fmt.Sprintf("imagegrid %dx%d", ng.Rows(), ng.Cols()))
			status.SetText(fmt.Sprintf("%d images, %dx%d pixels", len(paths), ng.Width(), ng.Height()))
		}()
	}

	topBar := container.NewBorder(nil, nil, nil, nil, labelEntry)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)
	w.Resize(fyne.NewSize(
		max(400, float32(g.Width()+40)),
		max(300, float32(g.Height()+120)),
	))

	// Keep focus on the entry to prevent Tab freeze with no other focusable widgets
	w.Canvas().Focus(labelEntry)

	w.ShowAndRun()
}
