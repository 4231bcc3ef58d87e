package gizmos

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/osuushi/hedra/shapes"
)

// Marker sizes are in world units, so they scale with the canvas. Line widths
// are in pixels.

var (
	EdgeColor     = colornames.Cyan
	FillColor     = color.RGBA{0, 80, 80, 128}
	NormalColor   = colornames.Lime
	CenterColor   = colornames.White
	VertexColor   = colornames.Orange
	HeightColor   = colornames.Yellow
	InteriorColor = colornames.Red
)

const DefaultSize = 0.2

func (cv *Canvas) line(a, b shapes.Point, col color.Color) {
	cv.c.SetColor(col)
	cv.c.DrawLine(a.X, a.Y, b.X, b.Y)
	cv.c.Stroke()
}

func (cv *Canvas) dot(p shapes.Point, radius float64, col color.Color) {
	cv.c.SetColor(col)
	cv.c.DrawCircle(p.X, p.Y, radius)
	cv.c.Fill()
}

// Draws the segment, and with drawData its endpoints and midpoint.
func (cv *Canvas) DrawSegment(s shapes.Segment, col color.Color, drawData bool, size float64) {
	cv.line(s.PointA, s.PointB, col)
	if !drawData {
		return
	}
	cv.dot(s.PointA, size/2, col)
	cv.dot(s.PointB, size/2, col)
	cv.dot(s.Midpoint(), size/4, col)
}

// Fills and outlines the polygon. With drawData it also draws the vertices, the
// center and each edge's outward normal from the edge midpoint.
func (cv *Canvas) DrawPolygon(p shapes.Polygon, drawData bool, size float64) {
	vertices := p.Vertices()
	cv.c.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		cv.c.LineTo(v.X, v.Y)
	}
	cv.c.ClosePath()
	cv.c.SetColor(FillColor)
	cv.c.FillPreserve()
	cv.c.SetColor(EdgeColor)
	cv.c.Stroke()

	if !drawData {
		return
	}
	normals := p.Normals()
	for i, edge := range p.Edges() {
		mid := edge.Midpoint()
		cv.line(mid, mid.Add(normals[i].Scale(size*2)), NormalColor)
	}
	for _, v := range vertices {
		cv.dot(v, size/2, VertexColor)
	}
	cv.dot(p.Center(), size/2, CenterColor)
}

func (cv *Canvas) DrawTriangle(t *shapes.Triangle, drawData bool, size float64) {
	cv.DrawPolygon(t, drawData, size)
	if !drawData {
		return
	}
	cv.DrawHeights(t, size/3)
	cv.DrawInnerTriangles(t)
}

// Altitudes, with their feet marked.
func (cv *Canvas) DrawHeights(t *shapes.Triangle, size float64) {
	for _, h := range t.Heights() {
		cv.DrawSegment(h, HeightColor, true, size)
	}
}

// Lines from the center to each vertex.
func (cv *Canvas) DrawInnerTriangles(t *shapes.Triangle) {
	center := t.Center()
	for _, v := range t.Vertices() {
		cv.line(center, v, InteriorColor)
	}
}

// Draws the rectangle, and with drawData its diagonals.
func (cv *Canvas) DrawRectangle(r *shapes.Rectangle, drawData bool, size float64) {
	cv.DrawPolygon(r, drawData, size)
	if !drawData {
		return
	}
	v := r.Vertices()
	cv.line(v[0], v[2], InteriorColor)
	cv.line(v[1], v[3], InteriorColor)
}

// Dispatches to the drawing routine for the concrete shape.
func (cv *Canvas) DrawShape(p shapes.Polygon, drawData bool, size float64) {
	switch shape := p.(type) {
	case *shapes.Triangle:
		cv.DrawTriangle(shape, drawData, size)
	case *shapes.Rectangle:
		cv.DrawRectangle(shape, drawData, size)
	default:
		cv.DrawPolygon(p, drawData, size)
	}
}

// Draws an offset as a line starting at from, with a dot at its tip.
func (cv *Canvas) DrawOffset(from, offset shapes.Point) {
	cv.line(from, from.Add(offset), InteriorColor)
	cv.dot(from.Add(offset), 0.05, InteriorColor)
}
