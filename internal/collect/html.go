package collect

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// FirstTable extracts the first <table> of an HTML document as raw text
// cells, one slice per <tr>. A document without a table yields nil.
func FirstTable(doc []byte) [][]string {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil
	}
	table := findNode(root, "table")
	if table == nil {
		return nil
	}
	var rows [][]string
	eachNode(table, map[string]bool{"tr": true}, func(tr *html.Node) {
		var cells []string
		eachNode(tr, map[string]bool{"td": true, "th": true}, func(cell *html.Node) {
			cells = append(cells, nodeText(cell))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return rows
}

// Link is one anchor of a listing page.
type Link struct {
	Href string
	Text string
}

// Links returns every href in the document paired with its anchor text, in
// document order.
func Links(doc []byte) []Link {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil
	}
	var out []Link
	eachNode(root, map[string]bool{"a": true}, func(a *html.Node) {
		for _, attr := range a.Attr {
			if attr.Key == "href" && attr.Val != "" {
				out = append(out, Link{Href: attr.Val, Text: nodeText(a)})
				break
			}
		}
	})
	return out
}

func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// eachNode visits matching elements without descending into them, so nested
// tables don't double-count rows.
func eachNode(n *html.Node, tags map[string]bool, fn func(*html.Node)) {
	if n.Type == html.ElementNode && tags[n.Data] {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		eachNode(c, tags, fn)
	}
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
