// Package svg is a minimal SVG document builder for the map renderer. It
// supports circles, polylines and text with the shared path properties
// (fill, stroke, stroke width, line cap, line join), renders with the fixed
// document preamble and two-space indentation, and HTML-escapes text content.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is a position on the SVG canvas.
type Point struct {
	X float64
	Y float64
}

// Color is a renderable SVG color value.
type Color interface {
	String() string
}

// Named is a color given by an SVG literal such as "white" or "black".
type Named string

// String returns the color literal.
func (c Named) String() string {
	return string(c)
}

// None is the absence of a color, rendered as the keyword "none".
var None Color = Named("none")

// Rgb is a color with integer red, green and blue components.
type Rgb struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// String renders the color as rgb(r,g,b).
func (c Rgb) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.Red, c.Green, c.Blue)
}

// Rgba is an Rgb color with an opacity component.
type Rgba struct {
	Red     uint8
	Green   uint8
	Blue    uint8
	Opacity float64
}

// String renders the color as rgba(r,g,b,a).
func (c Rgba) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.Red, c.Green, c.Blue, formatFloat(c.Opacity))
}

// StrokeLineCap defines the shape used at the end of open subpaths.
type StrokeLineCap string

const (
	StrokeLineCapButt   StrokeLineCap = "butt"
	StrokeLineCapRound  StrokeLineCap = "round"
	StrokeLineCapSquare StrokeLineCap = "square"
)

// StrokeLineJoin defines the shape used at path corners.
type StrokeLineJoin string

const (
	StrokeLineJoinArcs      StrokeLineJoin = "arcs"
	StrokeLineJoinBevel     StrokeLineJoin = "bevel"
	StrokeLineJoinMiter     StrokeLineJoin = "miter"
	StrokeLineJoinMiterClip StrokeLineJoin = "miter-clip"
	StrokeLineJoinRound     StrokeLineJoin = "round"
)

// Object is an SVG element that can render itself into a document.
type Object interface {
	render(w *strings.Builder)
}

// pathProps carries the presentation attributes shared by all shapes.
// Attributes are emitted only when set.
type pathProps struct {
	fill           Color
	stroke         Color
	strokeWidth    *float64
	strokeLineCap  StrokeLineCap
	strokeLineJoin StrokeLineJoin
}

// renderAttrs writes the shared attributes in a fixed order.
func (p *pathProps) renderAttrs(w *strings.Builder) {
	if p.fill != nil {
		fmt.Fprintf(w, `fill="%s"`, escape(p.fill.String()))
	}
	if p.stroke != nil {
		fmt.Fprintf(w, ` stroke="%s"`, escape(p.stroke.String()))
	}
	if p.strokeWidth != nil {
		fmt.Fprintf(w, ` stroke-width="%s"`, formatFloat(*p.strokeWidth))
	}
	if p.strokeLineCap != "" {
		fmt.Fprintf(w, ` stroke-linecap="%s"`, p.strokeLineCap)
	}
	if p.strokeLineJoin != "" {
		fmt.Fprintf(w, ` stroke-linejoin="%s"`, p.strokeLineJoin)
	}
}

// Circle models the <circle> element.
type Circle struct {
	props  pathProps
	center Point
	radius float64
}

// NewCircle creates a circle with zero center and radius.
func NewCircle() *Circle {
	return &Circle{}
}

// SetCenter sets the cx/cy attributes.
func (c *Circle) SetCenter(center Point) *Circle {
	c.center = center
	return c
}

// SetRadius sets the r attribute.
func (c *Circle) SetRadius(radius float64) *Circle {
	c.radius = radius
	return c
}

// SetFillColor sets the fill color.
func (c *Circle) SetFillColor(color Color) *Circle {
	c.props.fill = color
	return c
}

// SetStrokeColor sets the stroke color.
func (c *Circle) SetStrokeColor(color Color) *Circle {
	c.props.stroke = color
	return c
}

// SetStrokeWidth sets the stroke width.
func (c *Circle) SetStrokeWidth(width float64) *Circle {
	c.props.strokeWidth = &width
	return c
}

func (c *Circle) render(w *strings.Builder) {
	fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" `,
		formatFloat(c.center.X), formatFloat(c.center.Y), formatFloat(c.radius))
	c.props.renderAttrs(w)
	w.WriteString("/>")
}

// Polyline models the <polyline> element.
type Polyline struct {
	props  pathProps
	points []Point
}

// NewPolyline creates an empty polyline.
func NewPolyline() *Polyline {
	return &Polyline{}
}

// AddPoint appends a vertex to the polyline.
func (p *Polyline) AddPoint(point Point) *Polyline {
	p.points = append(p.points, point)
	return p
}

// SetFillColor sets the fill color.
func (p *Polyline) SetFillColor(color Color) *Polyline {
	p.props.fill = color
	return p
}

// SetStrokeColor sets the stroke color.
func (p *Polyline) SetStrokeColor(color Color) *Polyline {
	p.props.stroke = color
	return p
}

// SetStrokeWidth sets the stroke width.
func (p *Polyline) SetStrokeWidth(width float64) *Polyline {
	p.props.strokeWidth = &width
	return p
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (p *Polyline) SetStrokeLineCap(cap StrokeLineCap) *Polyline {
	p.props.strokeLineCap = cap
	return p
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (p *Polyline) SetStrokeLineJoin(join StrokeLineJoin) *Polyline {
	p.props.strokeLineJoin = join
	return p
}

func (p *Polyline) render(w *strings.Builder) {
	w.WriteString(`<polyline points="`)
	for i, point := range p.points {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(formatFloat(point.X))
		w.WriteByte(',')
		w.WriteString(formatFloat(point.Y))
	}
	w.WriteString(`" `)
	p.props.renderAttrs(w)
	w.WriteString("/>")
}

// Text models the <text> element.
type Text struct {
	props      pathProps
	position   Point
	offset     Point
	fontSize   uint32
	fontFamily string
	fontWeight string
	data       string
}

// NewText creates an empty text element.
func NewText() *Text {
	return &Text{}
}

// SetPosition sets the x/y attributes.
func (t *Text) SetPosition(position Point) *Text {
	t.position = position
	return t
}

// SetOffset sets the dx/dy attributes.
func (t *Text) SetOffset(offset Point) *Text {
	t.offset = offset
	return t
}

// SetFontSize sets the font-size attribute.
func (t *Text) SetFontSize(size uint32) *Text {
	t.fontSize = size
	return t
}

// SetFontFamily sets the font-family attribute.
func (t *Text) SetFontFamily(family string) *Text {
	t.fontFamily = family
	return t
}

// SetFontWeight sets the font-weight attribute.
func (t *Text) SetFontWeight(weight string) *Text {
	t.fontWeight = weight
	return t
}

// SetData sets the text content.
func (t *Text) SetData(data string) *Text {
	t.data = data
	return t
}

// SetFillColor sets the fill color.
func (t *Text) SetFillColor(color Color) *Text {
	t.props.fill = color
	return t
}

// SetStrokeColor sets the stroke color.
func (t *Text) SetStrokeColor(color Color) *Text {
	t.props.stroke = color
	return t
}

// SetStrokeWidth sets the stroke width.
func (t *Text) SetStrokeWidth(width float64) *Text {
	t.props.strokeWidth = &width
	return t
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (t *Text) SetStrokeLineCap(cap StrokeLineCap) *Text {
	t.props.strokeLineCap = cap
	return t
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (t *Text) SetStrokeLineJoin(join StrokeLineJoin) *Text {
	t.props.strokeLineJoin = join
	return t
}

func (t *Text) render(w *strings.Builder) {
	w.WriteString("<text ")
	t.props.renderAttrs(w)
	fmt.Fprintf(w, ` x="%s" y="%s"`, formatFloat(t.position.X), formatFloat(t.position.Y))
	fmt.Fprintf(w, ` dx="%s" dy="%s"`, formatFloat(t.offset.X), formatFloat(t.offset.Y))
	fmt.Fprintf(w, ` font-size="%d"`, t.fontSize)
	if t.fontFamily != "" {
		fmt.Fprintf(w, ` font-family="%s"`, escape(t.fontFamily))
	}
	if t.fontWeight != "" {
		fmt.Fprintf(w, ` font-weight="%s"`, escape(t.fontWeight))
	}
	w.WriteByte('>')
	w.WriteString(escape(t.data))
	w.WriteString("</text>")
}

// Document is an ordered collection of SVG objects.
type Document struct {
	objects []Object
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends an object to the document. Objects render in insertion order.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Render writes the SVG representation of the document.
func (d *Document) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.render(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString returns the SVG representation as a string.
func (d *Document) RenderString() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// escape HTML-encodes the five characters with special meaning in SVG text
// content and attribute values.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("&quot;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatFloat renders a float with the default shortest representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
