package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/benoitkugler/hudsvg/svgicon"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
)

// defaultTextureSize is used when neither the texture
// nor the manifest provide a size.
const defaultTextureSize = 64

// manifest describes the textures baked from one document.
// Relative paths are resolved against the manifest directory.
type manifest struct {
	Source string `toml:"source"`
	Output string `toml:"output"`

	// defaults for the textures
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	Flip   bool `toml:"flip"`

	Textures []texture `toml:"texture"`
}

type texture struct {
	ID     string `toml:"id"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Flip   *bool  `toml:"flip"`
	File   string `toml:"file"` // defaults to <id>.png
}

func loadManifest(filename string) (manifest, error) {
	var m manifest
	f, err := os.Open(filename)
	if err != nil {
		return m, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&m); err != nil {
		return m, fmt.Errorf("invalid manifest %s: %w", filename, err)
	}
	if m.Source == "" {
		return m, fmt.Errorf("invalid manifest %s: missing source", filename)
	}
	dir := filepath.Dir(filename)
	if !filepath.IsAbs(m.Source) {
		m.Source = filepath.Join(dir, m.Source)
	}
	if !filepath.IsAbs(m.Output) {
		m.Output = filepath.Join(dir, m.Output)
	}
	if m.Width <= 0 {
		m.Width = defaultTextureSize
	}
	if m.Height <= 0 {
		m.Height = defaultTextureSize
	}
	return m, nil
}

// resolve applies the manifest defaults
func (m manifest) resolve(t texture) texture {
	if t.Width <= 0 {
		t.Width = m.Width
	}
	if t.Height <= 0 {
		t.Height = m.Height
	}
	if t.Flip == nil {
		flip := m.Flip
		t.Flip = &flip
	}
	if t.File == "" {
		t.File = t.ID + ".png"
	}
	return t
}

// textures returns the resolved list of textures to bake:
// the manifest entries, followed with every other named element
// of `doc` if `all` is true.
func (m manifest) textures(doc *svgicon.Document, all bool) []texture {
	var out []texture
	seen := map[string]bool{}
	for _, t := range m.Textures {
		out = append(out, m.resolve(t))
		seen[t.ID] = true
	}
	if all {
		for _, id := range doc.IDs() {
			if !seen[id] {
				out = append(out, m.resolve(texture{ID: id}))
			}
		}
	}
	return out
}

// cmdBake represents the available bake sub-command.
func cmdBake() *cli.Command {
	return &cli.Command{
		Name:        "bake",
		Usage:       "Render the textures listed in a TOML manifest",
		Description: "Each texture of the manifest renders one named element, scaled to the texture size.",
		ArgsUsage:   "<manifest.toml>",
		Action:      runBake,
		Flags: []cli.Flag{
			strictFlag(),
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Also bake every named element missing from the manifest, at the default size",
			},
		},
	}
}

func runBake(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("expected exactly one manifest file", 2)
	}
	m, err := loadManifest(ctx.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	doc, err := svgicon.ReadFile(m.Source, errorMode(ctx))
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err = os.MkdirAll(m.Output, 0o755); err != nil {
		return err
	}
	for _, t := range m.textures(doc, ctx.Bool("all")) {
		output := filepath.Join(m.Output, t.File)
		if err = renderPNG(doc, t.ID, t.Width, t.Height, *t.Flip, output); err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%s -> %s (%dx%d)\n", t.ID, output, t.Width, t.Height)
	}
	return nil
}
