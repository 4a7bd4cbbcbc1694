package svg

import (
	"strings"
	"testing"
)

func TestColorRendering(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"named", Named("white"), "white"},
		{"none", None, "none"},
		{"rgb", Rgb{255, 160, 0}, "rgb(255,160,0)"},
		{"rgba", Rgba{255, 160, 0, 0.3}, "rgba(255,160,0,0.3)"},
		{"rgba integral opacity", Rgba{1, 2, 3, 1}, "rgba(1,2,3,1)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.color.String(); got != test.expected {
				t.Errorf("String() = %q, want %q", got, test.expected)
			}
		})
	}
}

func TestCircleRender(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewCircle().SetCenter(Point{20, 20}).SetRadius(5).SetFillColor(Named("white")))

	out := doc.RenderString()
	if !strings.Contains(out, `<circle cx="20" cy="20" r="5" fill="white"/>`) {
		t.Errorf("Unexpected circle rendering: %s", out)
	}
}

func TestPolylineRender(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewPolyline().
		AddPoint(Point{50, 50}).
		AddPoint(Point{100.5, 75.25}).
		SetStrokeColor(Named("green")).
		SetFillColor(None).
		SetStrokeWidth(14).
		SetStrokeLineCap(StrokeLineCapRound).
		SetStrokeLineJoin(StrokeLineJoinRound))

	out := doc.RenderString()
	if !strings.Contains(out, `points="50,50 100.5,75.25"`) {
		t.Errorf("Unexpected points attribute: %s", out)
	}
	if !strings.Contains(out, `fill="none" stroke="green" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"`) {
		t.Errorf("Unexpected path attributes: %s", out)
	}
}

func TestTextRenderAndEscaping(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewText().
		SetPosition(Point{35, 20}).
		SetOffset(Point{0, 6}).
		SetFontSize(12).
		SetFontFamily("Verdana").
		SetFontWeight("bold").
		SetData(`Stop "A" & <B>'s`))

	out := doc.RenderString()
	if !strings.Contains(out, `x="35" y="20" dx="0" dy="6" font-size="12" font-family="Verdana" font-weight="bold"`) {
		t.Errorf("Unexpected text attributes: %s", out)
	}
	if !strings.Contains(out, "Stop &quot;A&quot; &amp; &lt;B&gt;&apos;s") {
		t.Errorf("Expected escaped text content, got: %s", out)
	}
}

func TestDocumentPreambleAndIndentation(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewCircle().SetRadius(1))

	out := doc.RenderString()
	lines := strings.Split(out, "\n")
	if lines[0] != `<?xml version="1.0" encoding="UTF-8" ?>` {
		t.Errorf("Unexpected XML preamble: %s", lines[0])
	}
	if lines[1] != `<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` {
		t.Errorf("Unexpected svg element: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "  <circle") {
		t.Errorf("Expected two-space indentation, got: %s", lines[2])
	}
	if lines[len(lines)-1] != "</svg>" {
		t.Errorf("Expected closing svg tag, got: %s", lines[len(lines)-1])
	}
}

func TestDocumentInsertionOrder(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewPolyline().AddPoint(Point{1, 1}))
	doc.Add(NewText().SetData("label"))
	doc.Add(NewCircle().SetRadius(2))

	out := doc.RenderString()
	polyline := strings.Index(out, "<polyline")
	text := strings.Index(out, "<text")
	circle := strings.Index(out, "<circle")
	if !(polyline < text && text < circle) {
		t.Errorf("Objects did not render in insertion order: %s", out)
	}
}

func TestUnsetAttributesOmitted(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewCircle().SetRadius(3))

	out := doc.RenderString()
	for _, attr := range []string{"fill=", "stroke=", "stroke-width=", "stroke-linecap=", "stroke-linejoin="} {
		if strings.Contains(out, attr) {
			t.Errorf("Expected %s to be omitted when unset: %s", attr, out)
		}
	}
}

func TestRenderStability(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewPolyline().AddPoint(Point{99.2283, 329.5}).AddPoint(Point{50, 232.18}))
	doc.Add(NewText().SetData("14").SetFontSize(20))

	first := doc.RenderString()
	second := doc.RenderString()
	if first != second {
		t.Error("Repeated renders of the same document differ")
	}
}
