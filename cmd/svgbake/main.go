// Command svgbake renders the named elements of an SVG document
// into textures, and inspects its scene tree.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "svgbake"
	app.Usage = "Render SVG elements into PNG textures and PDF pages"
	app.Commands = []*cli.Command{
		cmdRender(),
		cmdPDF(),
		cmdBounds(),
		cmdIDs(),
		cmdBake(),
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
