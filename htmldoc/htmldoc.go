// Package htmldoc renders a page widget tree as a static HTML document.
package htmldoc

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agiangrant/lunasync"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	lucideCDN   = "https://unpkg.com/lucide@latest"
)

// PageConfig holds the document-level settings around the rendered page.
type PageConfig struct {
	Title       string
	Description string
	Lang        string
	// NoScripts drops the Tailwind and icon CDN scripts, leaving bare markup.
	NoScripts bool
}

// Document wraps the rendered page in a full HTML document.
func Document(config PageConfig, page lunasync.Widget) g.Node {
	if config.Lang == "" {
		config.Lang = "en"
	}

	return Doctype(
		HTML(
			Lang(config.Lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),
				g.If(!config.NoScripts, Script(Src(tailwindCDN))),
				g.If(!config.NoScripts, Script(Src(lucideCDN))),
			),
			Body(
				Node(page),
				g.If(!config.NoScripts, Script(g.Raw("lucide.createIcons();"))),
			),
		),
	)
}

// Write renders the document to w.
func Write(w io.Writer, config PageConfig, page lunasync.Widget) error {
	if err := Document(config, page).Render(w); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// String renders a single widget subtree, without the document shell.
func String(w lunasync.Widget) string {
	var b strings.Builder
	_ = Node(w).Render(&b)
	return b.String()
}

// Node converts a widget and its children to a gomponents node.
func Node(w lunasync.Widget) g.Node {
	attrs := attributes(w)
	body := append(slices.Clip(attrs), content(w)...)

	switch w.Kind {
	case lunasync.WidgetPage:
		return Div(body...)
	case lunasync.WidgetNav:
		return Nav(body...)
	case lunasync.WidgetSection:
		return Section(body...)
	case lunasync.WidgetFooter:
		return Footer(body...)
	case lunasync.WidgetList:
		return Ul(body...)
	case lunasync.WidgetListItem:
		return Li(body...)
	case lunasync.WidgetHeading:
		return heading(w.Attr(lunasync.AttrLevel), body)
	case lunasync.WidgetText, lunasync.WidgetFieldError:
		return P(body...)
	case lunasync.WidgetSpan:
		return Span(body...)
	case lunasync.WidgetLabel:
		return Label(body...)
	case lunasync.WidgetImage:
		return Img(attrs...)
	case lunasync.WidgetIcon:
		return I(attrs...)
	case lunasync.WidgetLink:
		return A(body...)
	case lunasync.WidgetButton:
		if w.Attr(lunasync.AttrType) == "" {
			body = append(body, Type("button"))
		}
		return Button(body...)
	case lunasync.WidgetForm:
		return Form(append(body, g.Attr("novalidate"))...)
	case lunasync.WidgetTextField:
		return Input(attrs...)
	case lunasync.WidgetTextArea:
		return Textarea(body...)
	default:
		return Div(body...)
	}
}

func heading(level string, body []g.Node) g.Node {
	switch level {
	case "1":
		return H1(body...)
	case "2":
		return H2(body...)
	default:
		return H3(body...)
	}
}

// content returns the text followed by the children.
func content(w lunasync.Widget) []g.Node {
	nodes := make([]g.Node, 0, len(w.Children)+1)
	if w.Text != "" {
		nodes = append(nodes, g.Text(w.Text))
	}
	for _, child := range w.Children {
		nodes = append(nodes, Node(child))
	}
	return nodes
}

// attributes maps widget fields to HTML attributes. Known keys come first in a
// fixed order, data-* keys follow sorted, so the output is stable.
func attributes(w lunasync.Widget) []g.Node {
	var nodes []g.Node

	if w.ID != "" {
		nodes = append(nodes, ID(w.ID))
	}
	if w.Classes != "" {
		nodes = append(nodes, Class(w.Classes))
	}

	switch w.Kind {
	case lunasync.WidgetLink:
		nodes = append(nodes, Href(w.Attr(lunasync.AttrHref)))
	case lunasync.WidgetImage:
		nodes = append(nodes, Src(w.Attr(lunasync.AttrSrc)), Alt(w.Attr(lunasync.AttrAlt)))
	case lunasync.WidgetIcon:
		nodes = append(nodes, Data("lucide", w.Attr(lunasync.AttrIcon)))
	case lunasync.WidgetTextField:
		name := w.Attr(lunasync.AttrName)
		nodes = append(nodes,
			Type(w.Attr(lunasync.AttrType)),
			ID(name),
			Name(name),
			Value(w.Attr(lunasync.AttrValue)),
		)
	case lunasync.WidgetTextArea:
		name := w.Attr(lunasync.AttrName)
		nodes = append(nodes, ID(name), Name(name), Rows(w.Attr(lunasync.AttrRows)))
	case lunasync.WidgetButton:
		if t := w.Attr(lunasync.AttrType); t != "" {
			nodes = append(nodes, Type(t))
		}
	}

	for _, key := range slices.Sorted(maps.Keys(w.Attrs)) {
		if strings.HasPrefix(key, "data-") {
			nodes = append(nodes, g.Attr(key, w.Attrs[key]))
		}
	}
	return nodes
}
