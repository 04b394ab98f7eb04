package domdbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmldoc/dom"
	"github.com/npillmayer/htmldoc/dom/domdbg"
)

func TestPrint(t *testing.T) {
	intro, _ := dom.NewTextNode("p", "a rather long introductory paragraph")
	intro.SetID("intro")
	div, _ := dom.NewNodeWithChildren("div", intro, dom.NewNode("img"))
	div.AddClass("note")
	diagram := domdbg.Print(div)
	t.Logf("tree =\n%s", diagram)
	for _, want := range []string{`<div class="note">`, `<p id="intro">`, "<img>"} {
		if !strings.Contains(diagram, want) {
			t.Errorf("expected diagram to contain %q, doesn't", want)
		}
	}
	if !strings.Contains(diagram, "…") {
		t.Error("expected long text content to be shortened, isn't")
	}
}
