package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/weftkit/weft/internal/element"
)

func TestRenderIncludesLeafLabels(t *testing.T) {
	root := element.Col(
		element.Text("title"),
		element.Row(element.Button(element.Text("save")), element.Button(element.Text("quit"))),
	)
	out := ansi.Strip(New(0).Render(root, nil))
	for _, want := range []string{"title", "[ save ]", "[ quit ]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderRowKeepsDocumentOrder(t *testing.T) {
	root := element.Row(element.Text("left"), element.Text("right"))
	out := ansi.Strip(New(0).Render(root, nil))
	if strings.Index(out, "left") > strings.Index(out, "right") {
		t.Fatalf("expected left before right:\n%s", out)
	}
}

func TestRenderColStacksChildren(t *testing.T) {
	root := element.Col(element.Text("top"), element.Text("bottom"))
	out := ansi.Strip(New(0).Render(root, nil))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "top") || !strings.Contains(lines[1], "bottom") {
		t.Fatalf("expected top above bottom:\n%s", out)
	}
}

func TestRenderHighlightsOnlyFocusedElement(t *testing.T) {
	save := element.Button(element.Text("save"))
	quit := element.Button(element.Text("quit"))
	root := element.Row(save, quit)
	r := New(0)

	plain := r.Render(root, nil)
	focused := r.Render(root, save)
	if plain == focused {
		t.Fatalf("expected focus highlight to change output")
	}
	// Focus identity is pointer identity: a distinct button with the same
	// label must not pick up the highlight.
	if r.Render(root, element.Button(element.Text("save"))) != plain {
		t.Fatalf("expected highlight to track pointer identity, not labels")
	}
}

func TestRenderTruncatesToWidth(t *testing.T) {
	root := element.Text(strings.Repeat("x", 40))
	out := New(10).Render(root, nil)
	if w := ansi.StringWidth(out); w > 10 {
		t.Fatalf("expected width <= 10, got %d", w)
	}
	if !strings.Contains(ansi.Strip(out), "…") {
		t.Fatalf("expected truncation tail in %q", out)
	}
}

func TestSetWidthTakesEffect(t *testing.T) {
	root := element.Text(strings.Repeat("y", 40))
	r := New(0)
	if w := ansi.StringWidth(r.Render(root, nil)); w != 40 {
		t.Fatalf("expected untruncated width 40, got %d", w)
	}
	r.SetWidth(8)
	if w := ansi.StringWidth(r.Render(root, nil)); w > 8 {
		t.Fatalf("expected width <= 8 after SetWidth, got %d", w)
	}
}
