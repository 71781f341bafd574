package main

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/benoitkugler/hudsvg/svgicon"
	"github.com/benoitkugler/hudsvg/svgpath"
	"github.com/benoitkugler/hudsvg/svgpdf"
	"github.com/benoitkugler/hudsvg/svgraster"
	"github.com/urfave/cli/v2"
)

func strictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "Abort on the first invalid attribute instead of logging it",
	}
}

func idFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "id",
		Usage: "Render only the element with this id",
	}
}

// sizeFlags returns the --width and --height flags
func sizeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Usage: "Output width (defaults to the width of the rendered bounds)",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Output height (defaults to the height of the rendered bounds)",
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Path of the output file (will overwrite if exists)",
		Required: true,
	}
}

// cmdRender represents the available render sub-command.
func cmdRender() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a document or one of its elements to PNG",
		ArgsUsage: "<file.svg>",
		Action:    runRender,
		Flags: append(sizeFlags(),
			idFlag(), outputFlag(), strictFlag(),
			&cli.BoolFlag{
				Name:  "flip",
				Usage: "Flip the image vertically, as expected by bottom-up texture coordinates",
			},
		),
	}
}

// cmdPDF represents the available pdf sub-command.
func cmdPDF() *cli.Command {
	return &cli.Command{
		Name:      "pdf",
		Usage:     "Render a document or one of its elements to a PDF page",
		ArgsUsage: "<file.svg>",
		Action:    runPDF,
		Flags:     append(sizeFlags(), idFlag(), outputFlag(), strictFlag()),
	}
}

// cmdBounds represents the available bounds sub-command.
func cmdBounds() *cli.Command {
	return &cli.Command{
		Name:      "bounds",
		Usage:     "Print the bounding box of the document root or of an element",
		ArgsUsage: "<file.svg>",
		Action:    runBounds,
		Flags: []cli.Flag{
			idFlag(), strictFlag(),
			&cli.BoolFlag{
				Name:  "tight",
				Usage: "For path elements, print the exact bounds of the outline, without stroke",
			},
		},
	}
}

// cmdIDs represents the available ids sub-command.
func cmdIDs() *cli.Command {
	return &cli.Command{
		Name:      "ids",
		Usage:     "List the named elements of a document",
		ArgsUsage: "<file.svg>",
		Action:    runIDs,
		Flags:     []cli.Flag{strictFlag()},
	}
}

func errorMode(ctx *cli.Context) svgicon.ErrorMode {
	if ctx.Bool("strict") {
		return svgicon.StrictErrorMode
	}
	return svgicon.WarnErrorMode
}

func readDocument(ctx *cli.Context) (*svgicon.Document, error) {
	if ctx.NArg() != 1 {
		return nil, cli.Exit("expected exactly one SVG file", 2)
	}
	doc, err := svgicon.ReadFile(ctx.Args().First(), errorMode(ctx))
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	return doc, nil
}

// targetSize returns the flags size, with missing
// dimensions taken from the bounds of the rendered element.
func targetSize(ctx *cli.Context, doc *svgicon.Document) (w, h int, err error) {
	w, h = ctx.Int("width"), ctx.Int("height")
	if w > 0 && h > 0 {
		return w, h, nil
	}
	box := doc.ViewBox
	if id := ctx.String("id"); id != "" {
		n, ok := doc.Find(id)
		if !ok {
			return 0, 0, cli.Exit(fmt.Errorf("%w: %q", svgicon.ErrMissingElementID, id), 1)
		}
		box = doc.TransformedBounds(n)
	} else if box.IsEmpty() {
		box = doc.TransformedBounds(doc.Root())
	}
	if w <= 0 {
		w = int(math.Ceil(box.Width()))
	}
	if h <= 0 {
		h = int(math.Ceil(box.Height()))
	}
	if w <= 0 || h <= 0 {
		return 0, 0, cli.Exit("empty output size: use --width and --height", 1)
	}
	return w, h, nil
}

func runRender(ctx *cli.Context) error {
	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}
	w, h, err := targetSize(ctx, doc)
	if err != nil {
		return err
	}
	return renderPNG(doc, ctx.String("id"), w, h, ctx.Bool("flip"), ctx.String("output"))
}

func renderPNG(doc *svgicon.Document, id string, w, h int, flip bool, output string) error {
	options, err := doc.FitOptions(id, float64(w), float64(h), flip)
	if err != nil {
		return cli.Exit(err, 1)
	}
	img, err := svgraster.RasterDocumentToImage(doc, w, h, options)
	if err != nil {
		return cli.Exit(err, 1)
	}
	fi, err := os.Create(output)
	if err != nil {
		return err
	}
	defer fi.Close()
	if err = png.Encode(fi, img); err != nil {
		return err
	}
	return fi.Close()
}

func runPDF(ctx *cli.Context) error {
	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}
	w, h, err := targetSize(ctx, doc)
	if err != nil {
		return err
	}
	options, err := doc.FitOptions(ctx.String("id"), float64(w), float64(h), false)
	if err != nil {
		return cli.Exit(err, 1)
	}
	fi, err := os.Create(ctx.String("output"))
	if err != nil {
		return err
	}
	defer fi.Close()
	if err = svgpdf.RenderDocument(doc, float64(w), float64(h), options, fi); err != nil {
		return cli.Exit(err, 1)
	}
	return fi.Close()
}

func formatBox(bb svgpath.BoundingBox) string {
	if bb.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%g %g %g %g", bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
}

func runBounds(ctx *cli.Context) error {
	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}
	n := doc.Root()
	if id := ctx.String("id"); id != "" {
		var ok bool
		if n, ok = doc.Find(id); !ok {
			return cli.Exit(fmt.Errorf("%w: %q", svgicon.ErrMissingElementID, id), 1)
		}
	}
	bb := doc.BoundingBox(n)
	if path, isPath := doc.Element(n).Shape.(*svgicon.Path); isPath && ctx.Bool("tight") {
		bb = path.Data.TightBounds()
	}
	_, err = fmt.Fprintln(ctx.App.Writer, formatBox(bb))
	return err
}

func runIDs(ctx *cli.Context) error {
	doc, err := readDocument(ctx)
	if err != nil {
		return err
	}
	ids := doc.IDs()
	if len(ids) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(ctx.App.Writer, strings.Join(ids, "\n"))
	return err
}
