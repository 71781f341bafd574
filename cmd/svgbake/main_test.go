package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const hudSource = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20">
	<circle id="dial" r="10" fill="none" stroke="white" stroke-width="2"/>
	<path id="needle" d="M0,0 C0,10 10,10 10,0" fill="red"/>
	<rect x="20" width="20" height="20" fill="blue"/>
</svg>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"svgbake"}, args...))
	return out.String(), err
}

func TestIDs(t *testing.T) {
	file := writeFile(t, t.TempDir(), "hud.svg", hudSource)
	out, err := runApp(t, "ids", file)
	require.NoError(t, err)
	assert.Equal(t, "dial\nneedle\n", out)
}

func TestBounds(t *testing.T) {
	file := writeFile(t, t.TempDir(), "hud.svg", hudSource)

	out, err := runApp(t, "bounds", "--id", "dial", file)
	require.NoError(t, err)
	assert.Equal(t, "-11 -11 11 11\n", out)

	out, err = runApp(t, "bounds", "--id", "needle", file)
	require.NoError(t, err)
	assert.Equal(t, "0 0 10 10\n", out)

	out, err = runApp(t, "bounds", "--tight", "--id", "needle", file)
	require.NoError(t, err)
	assert.Equal(t, "0 0 10 7.5\n", out)

	out, err = runApp(t, "bounds", file)
	require.NoError(t, err)
	assert.Equal(t, "-11 -11 40 20\n", out)

	_, err = runApp(t, "bounds", "--id", "missing", file)
	assert.Error(t, err)

	_, err = runApp(t, "bounds")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "hud.svg", hudSource)
	output := filepath.Join(dir, "out.png")

	_, err := runApp(t, "render", "-o", output, file)
	require.NoError(t, err)
	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	// the blue rect fills the right half
	_, _, b, a := img.At(30, 10).RGBA()
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)

	_, err = runApp(t, "render", "--id", "needle", "--width", "16", "--height", "8", "-o", output, file)
	require.NoError(t, err)

	_, err = runApp(t, "render", "--id", "missing", "--width", "16", "--height", "8", "-o", output, file)
	assert.Error(t, err)
}

func TestRenderDefaultSize(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "scaled.svg", `<svg>
	<rect id="big" width="5" height="3" transform="scale(2)" fill="red"/>
	<rect id="stretched" width="4" height="2" transform="scale(0.5,3)" fill="red"/>
</svg>`)
	output := filepath.Join(dir, "out.png")

	size := func(args ...string) (int, int) {
		t.Helper()
		_, err := runApp(t, append(append([]string{"render"}, args...), "-o", output, file)...)
		require.NoError(t, err)
		f, err := os.Open(output)
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err)
		return img.Bounds().Dx(), img.Bounds().Dy()
	}

	// the output size matches the transformed element
	w, h := size("--id", "big")
	assert.Equal(t, 10, w)
	assert.Equal(t, 6, h)

	w, h = size("--id", "stretched")
	assert.Equal(t, 2, w)
	assert.Equal(t, 6, h)

	_, err := runApp(t, "render", "--id", "missing", "-o", output, file)
	assert.Error(t, err)
}

func TestPDF(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "hud.svg", hudSource)
	output := filepath.Join(dir, "out.pdf")

	_, err := runApp(t, "pdf", "--id", "dial", "-o", output, file)
	require.NoError(t, err)
	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestBake(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hud.svg", hudSource)
	manifestFile := writeFile(t, dir, "textures.toml", `
source = "hud.svg"
output = "textures"
width = 32
height = 16

[[texture]]
id = "needle"
width = 8
height = 8
flip = true
`)

	out, err := runApp(t, "bake", manifestFile)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "needle -> ")

	decode := func(name string) (int, int) {
		f, err := os.Open(filepath.Join(dir, "textures", name))
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err)
		return img.Bounds().Dx(), img.Bounds().Dy()
	}
	w, h := decode("needle.png")
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	out, err = runApp(t, "bake", "--all", manifestFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	w, h = decode("dial.png")
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()

	_, err := loadManifest(writeFile(t, dir, "unknown.toml", `source = "a.svg"
colour = "red"`))
	assert.Error(t, err)

	_, err = loadManifest(writeFile(t, dir, "nosource.toml", `output = "out"`))
	assert.Error(t, err)

	m, err := loadManifest(writeFile(t, dir, "ok.toml", `source = "a.svg"
flip = true
[[texture]]
id = "a"
file = "custom.png"
flip = false
[[texture]]
id = "b"
height = 10
`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.svg"), m.Source)
	assert.Equal(t, dir, m.Output)

	a, b := m.resolve(m.Textures[0]), m.resolve(m.Textures[1])
	assert.Equal(t, "custom.png", a.File)
	assert.False(t, *a.Flip)
	assert.Equal(t, defaultTextureSize, a.Width)
	assert.Equal(t, "b.png", b.File)
	assert.True(t, *b.Flip)
	assert.Equal(t, 10, b.Height)
}
