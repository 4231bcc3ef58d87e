// Package gizmos paints shapes and their derived data (normals, centers,
// altitudes) to a raster image for debugging.
package gizmos

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/osuushi/hedra/internal/dbg"
	"github.com/osuushi/hedra/shapes"
)

// Padding in pixels around the drawn region
const Padding = 40

var Background = colornames.Black

// A Canvas maps a world space region onto an image. World space is y-up, so
// the context is flipped to put the origin at the bottom left.
type Canvas struct {
	c     *gg.Context
	scale float64
}

// Canvas covering the rectangle from min to max, at scale pixels per world
// unit.
func NewCanvas(min, max shapes.Point, scale float64) *Canvas {
	width := int(scale*(max.X-min.X)) + Padding*2
	height := int(scale*(max.Y-min.Y)) + Padding*2
	c := gg.NewContext(width, height)
	c.SetColor(Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(Padding, Padding)
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	return &Canvas{c: c, scale: scale}
}

// Canvas just large enough to hold every given shape.
func Fit(scale float64, polygons ...shapes.Polygon) *Canvas {
	min := shapes.Point{X: math.Inf(1), Y: math.Inf(1)}
	max := shapes.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range polygons {
		for _, v := range p.Vertices() {
			min.X = math.Min(min.X, v.X)
			min.Y = math.Min(min.Y, v.Y)
			max.X = math.Max(max.X, v.X)
			max.Y = math.Max(max.Y, v.Y)
		}
	}
	if len(polygons) == 0 {
		min, max = shapes.Point{}, shapes.Point{}
	}
	return NewCanvas(min, max, scale)
}

func (cv *Canvas) Width() int {
	return cv.c.Width()
}

func (cv *Canvas) Height() int {
	return cv.c.Height()
}

// Pixel coordinates of a world space point.
func (cv *Canvas) ToPixel(p shapes.Point) (x, y float64) {
	return cv.c.TransformPoint(p.X, p.Y)
}

func (cv *Canvas) Image() image.Image {
	return cv.c.Image()
}

func (cv *Canvas) SavePNG(path string) error {
	return errors.Wrap(cv.c.SavePNG(path), "save png")
}

func (cv *Canvas) WritePNG(w io.Writer) error {
	return errors.Wrap(cv.c.EncodePNG(w), "encode png")
}

// Prints the image inline to an iTerm compatible terminal.
func (cv *Canvas) Show(w io.Writer) error {
	f, err := os.CreateTemp("", "hedra-*.png")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(f.Name())
	err = cv.c.EncodePNG(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "encode png")
	}
	imgcat.CatFile(f.Name(), w)
	return nil
}

// Draws text centered on a world space point. Text is drawn in pixel space so
// it isn't flipped or scaled with the world.
func (cv *Canvas) Label(at shapes.Point, text string, col color.Color) {
	x, y := cv.ToPixel(at)
	cv.c.Push()
	cv.c.Identity()
	cv.c.SetColor(col)
	cv.c.DrawStringAnchored(text, x, y, 0.5, 0.5)
	cv.c.Pop()
}

// Labels a shape at its center. Unnamed shapes get a readable random name.
func (cv *Canvas) LabelShape(p shapes.Polygon, name string) {
	if name == "" {
		name = dbg.Name(p)
	}
	cv.Label(p.Center(), name, colornames.White)
}
