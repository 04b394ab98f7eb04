package htmldoc

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmldoc/dom"
	"github.com/npillmayer/htmldoc/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func render(t *testing.T, doc *Document, opts ExportOptions) string {
	text, err := doc.Render(opts)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return text
}

func TestRenderEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldoc.document")
	defer teardown()
	//
	doc := NewDocument("T")
	text := render(t, doc, ExportOptions{})
	want := strings.Join([]string{
		"<!DOCTYPE html>",
		"<html>",
		"    <head>",
		`        <meta charset="utf-8">`,
		"        <title>T</title>",
		"    </head>",
		"    <body />",
		"</html>",
		"",
	}, "\n")
	if text != want {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected empty document to render charset meta, title and self-closing body, doesn't")
	}
}

func TestRenderDoctypePreambles(t *testing.T) {
	doc := NewDocument("T")
	doc.SetDoctype(HTML4)
	if text := render(t, doc, ExportOptions{}); !strings.HasPrefix(text,
		`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN"`) {
		t.Error("expected HTML4 preamble, isn't")
	}
	doc.SetDoctype(XHTML)
	if text := render(t, doc, ExportOptions{}); !strings.HasPrefix(text,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"`) {
		t.Error("expected XHTML preamble, isn't")
	}
}

func TestRenderShortTextOnOneLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldoc.document")
	defer teardown()
	//
	doc := NewDocument("T")
	par, _ := dom.NewTextNode("p", "Hello, World!")
	doc.AppendChild(par)
	text := render(t, doc, ExportOptions{})
	if !strings.Contains(text, "        <p>Hello, World!</p>\n") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected short text node on a single body line, isn't")
	}
	if !strings.Contains(text, "    <body>\n") || !strings.Contains(text, "    </body>\n") {
		t.Error("expected an open/close body pair, isn't there")
	}
}

func TestRenderLongTextWraps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldoc.document")
	defer teardown()
	//
	doc := NewDocument("T")
	par, _ := dom.NewTextNode("p", strings.Repeat("a", 300))
	doc.AppendChild(par)
	text := render(t, doc, ExportOptions{LineLimit: 185})
	var contentLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "a") && !strings.Contains(line, "<") {
			contentLines = append(contentLines, strings.TrimLeft(line, " "))
		}
	}
	if len(contentLines) != 2 {
		t.Logf("rendered document =\n%s", text)
		t.Fatalf("expected text spread over 2 lines, is %d", len(contentLines))
	}
	if len(contentLines[0]) != 185 || len(contentLines[1]) != 115 {
		t.Errorf("expected line lengths [185 115], are [%d %d]",
			len(contentLines[0]), len(contentLines[1]))
	}
}

func TestRenderWrapSlicesAtExactLimit(t *testing.T) {
	doc := NewDocument("T")
	par, _ := dom.NewTextNode("p", strings.Repeat("x", 25))
	doc.AppendChild(par)
	text := render(t, doc, ExportOptions{LineLimit: 10})
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, " ")
		if strings.Contains(line, "x") && len(line) > 10 {
			t.Logf("rendered document =\n%s", text)
			t.Errorf("expected every content line within the limit, %q is not", line)
		}
	}
}

func TestRenderSelfClosingTag(t *testing.T) {
	doc := NewDocument("T")
	img := dom.NewNode("img")
	img.SetSrc("cat.png")
	img.SetWidth("400")
	doc.AppendChild(img)
	if text := render(t, doc, ExportOptions{}); !strings.Contains(text,
		`<img src="cat.png" width="400" />`) {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected a self-closing img tag with attributes in stored order, isn't there")
	}
}

func TestRenderSingleChildAnchorInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldoc.document")
	defer teardown()
	//
	doc := NewDocument("T")
	anchor := dom.NewNode("a")
	anchor.SetHref("https://example.com")
	img := dom.NewNode("img")
	img.SetSrc("badge.png")
	anchor.AppendChild(img)
	doc.AppendChild(anchor)
	text := render(t, doc, ExportOptions{})
	if !strings.Contains(text, `<a href="https://example.com"><img src="badge.png" /></a>`) {
		domdbg.Log(t, anchor)
		t.Logf("rendered document =\n%s", text)
		t.Error("expected single-child anchor to render inline on one line, doesn't")
	}
}

func TestRenderAnchorWithSeveralChildren(t *testing.T) {
	doc := NewDocument("T")
	anchor := dom.NewNode("a")
	anchor.AppendChild(dom.NewNode("img"))
	anchor.AppendChild(dom.NewNode("span"))
	doc.AppendChild(anchor)
	text := render(t, doc, ExportOptions{})
	if !strings.Contains(text, "<a>\n") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected multi-child anchor to render its children on separate lines, doesn't")
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	doc := NewDocument("T")
	box := dom.NewNode("input")
	box.SetType("checkbox")
	box.SetChecked(true)
	box.SetDisabled(false)
	doc.AppendChild(box)
	text := render(t, doc, ExportOptions{})
	if !strings.Contains(text, `<input type="checkbox" checked />`) {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected true boolean attribute as bare name and false one omitted, isn't")
	}
}

func TestRenderClassListJoined(t *testing.T) {
	doc := NewDocument("T")
	div := dom.NewNode("div")
	div.SetClasses("note wide")
	doc.AppendChild(div)
	if text := render(t, doc, ExportOptions{}); !strings.Contains(text, `<div class="note wide">`) {
		t.Error("expected class list rendered space-joined, isn't")
	}
}

func TestRenderEscapesTextAndAttributes(t *testing.T) {
	doc := NewDocument("T <& sons>")
	par, _ := dom.NewTextNode("p", "1 < 2 & 3")
	par.SetAttr("data-note", `say "hi"`)
	doc.AppendChild(par)
	text := render(t, doc, ExportOptions{})
	if !strings.Contains(text, "<title>T &lt;&amp; sons&gt;</title>") {
		t.Error("expected title to be escaped, isn't")
	}
	if !strings.Contains(text, ">1 &lt; 2 &amp; 3</p>") {
		t.Error("expected text content to be escaped, isn't")
	}
	if strings.Contains(text, `say "hi"`) {
		t.Error("expected attribute value quotes to be escaped, aren't")
	}
}

func TestRenderStyleBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldoc.document")
	defer teardown()
	//
	doc := NewDocument("T")
	doc.SetInternalCSS("body {\n    color: red;\n}")
	doc.AddStylesheet("main.css")
	text := render(t, doc, ExportOptions{})
	want := strings.Join([]string{
		"        <style>",
		"            body {",
		"                color: red;",
		"            }",
		"        </style>",
		`        <link rel="stylesheet" href="main.css">`,
	}, "\n")
	if !strings.Contains(text, want) {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected an indented style block followed by the stylesheet link, isn't there")
	}
}

func TestRenderScriptBlocks(t *testing.T) {
	doc := NewDocument("T")
	doc.AppendChild(dom.NewNode("div"))
	doc.SetScript(`console.log("ready");`)
	doc.AddScriptFile("app.js")
	text := render(t, doc, ExportOptions{})
	want := strings.Join([]string{
		"        <script>",
		`            console.log("ready");`,
		"        </script>",
		`        <script src="app.js"></script>`,
		"    </body>",
	}, "\n")
	if !strings.Contains(text, want) {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected script block and external script before the closing body tag, isn't there")
	}
}

func TestRenderNestedIndentRestored(t *testing.T) {
	doc := NewDocument("T")
	inner, _ := dom.NewTextNode("p", "deep")
	mid, _ := dom.NewNodeWithChildren("div", inner)
	outer, _ := dom.NewNodeWithChildren("div", mid)
	doc.AppendChild(outer)
	after, _ := dom.NewTextNode("p", "after")
	doc.AppendChild(after)
	text := render(t, doc, ExportOptions{})
	if !strings.Contains(text, "                <p>deep</p>") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected nested paragraph two units deeper than body, isn't")
	}
	if !strings.Contains(text, "\n        <p>after</p>") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected indentation to be restored after the nested subtree, isn't")
	}
}

func TestRenderClosingTagsReturnToTopLevel(t *testing.T) {
	doc := NewDocument("T")
	doc.AppendChild(dom.NewNode("div"))
	text := render(t, doc, ExportOptions{})
	if !strings.HasSuffix(text, "\n    </body>\n</html>\n") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected closing html tag back at the left margin, isn't")
	}
	empty := NewDocument("T")
	if text := render(t, empty, ExportOptions{}); !strings.HasSuffix(text, "\n</html>\n") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected closing html tag at the left margin for an empty document, isn't")
	}
}

func TestRenderCustomIndentUnit(t *testing.T) {
	doc := NewDocument("T")
	doc.AppendChild(dom.NewNode("div"))
	text := render(t, doc, ExportOptions{Indent: "\t"})
	if !strings.Contains(text, "\t\t<div>") {
		t.Logf("rendered document =\n%s", text)
		t.Error("expected tab indentation, isn't used")
	}
}
