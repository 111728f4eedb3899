package conjugatio

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	conjugationHeadingID = "Conjugation"
	latinHeadingID       = "Latin"
	navFrameClass        = "NavFrame"
	inflectionTableClass = "roa-inflection-table"

	// reformattedAttr marks a container that has already been processed.
	reformattedAttr = "data-reformatted"
)

// Anchor is a located conjugation table together with the container the
// page wraps it in. Container equals Table when the page has no NavFrame.
type Anchor struct {
	Container *html.Node
	Table     *html.Node
}

// LoadDocument parses an HTML page.
func LoadDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// LoadRows parses an HTML page, locates its conjugation table and returns
// the table rows in document order.
func LoadRows(r io.Reader) ([]Row, error) {
	doc, err := LoadDocument(r)
	if err != nil {
		return nil, err
	}
	anchor, err := Locate(doc)
	if err != nil {
		return nil, err
	}
	return anchor.Rows(), nil
}

// HasLatinSection reports whether the page carries a Latin heading.
func HasLatinSection(doc *html.Node) bool {
	return findFirst(doc, func(n *html.Node) bool { return attr(n, "id") == latinHeadingID }) != nil
}

// Locate finds the conjugation table. It follows the Conjugation heading
// to the next NavFrame sibling of its heading block and takes the
// inflection table inside. Pages without a Conjugation heading fall back
// to the first inflection table in the document, contained by its nearest
// NavFrame ancestor if it has one.
func Locate(doc *html.Node) (*Anchor, error) {
	heading := findFirst(doc, func(n *html.Node) bool { return attr(n, "id") == conjugationHeadingID })
	if heading == nil {
		table := findFirst(doc, isInflectionTable)
		if table == nil {
			return nil, notFoundf("no %q heading and no .%s", conjugationHeadingID, inflectionTableClass)
		}
		container := table
		for p := table.Parent; p != nil; p = p.Parent {
			if p.Type == html.ElementNode && hasClass(p, navFrameClass) {
				container = p
				break
			}
		}
		return &Anchor{Container: container, Table: table}, nil
	}

	block := heading.Parent
	if block == nil {
		return nil, notFoundf("%q heading has no parent", conjugationHeadingID)
	}
	container := block.NextSibling
	for container != nil && !(container.Type == html.ElementNode && hasClass(container, navFrameClass)) {
		container = container.NextSibling
	}
	if container == nil {
		return nil, notFoundf("no .%s after the %q heading", navFrameClass, conjugationHeadingID)
	}

	table := findFirst(container, isInflectionTable)
	if table == nil {
		return nil, notFoundf("no .%s inside .%s", inflectionTableClass, navFrameClass)
	}
	return &Anchor{Container: container, Table: table}, nil
}

// Rows converts the table's tbody > tr children into Rows.
func (a *Anchor) Rows() []Row {
	return RowsFromTable(a.Table)
}

// Marked reports whether the container carries the reformatted marker.
func (a *Anchor) Marked() bool {
	return attr(a.Container, reformattedAttr) != ""
}

// Mark sets the reformatted marker on the container.
func (a *Anchor) Mark() {
	if a.Marked() {
		return
	}
	a.Container.Attr = append(a.Container.Attr, html.Attribute{Key: reformattedAttr, Val: "true"})
}

// RowsFromTable returns the rows of every tbody directly under table.
func RowsFromTable(table *html.Node) []Row {
	var rows []Row
	for body := table.FirstChild; body != nil; body = body.NextSibling {
		if body.Type != html.ElementNode || body.DataAtom != atom.Tbody {
			continue
		}
		for tr := body.FirstChild; tr != nil; tr = tr.NextSibling {
			if tr.Type != html.ElementNode || tr.DataAtom != atom.Tr {
				continue
			}
			rows = append(rows, rowFromNode(tr))
		}
	}
	return rows
}

func rowFromNode(tr *html.Node) Row {
	var row Row
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom != atom.Th && c.DataAtom != atom.Td {
			continue
		}
		row.Cells = append(row.Cells, Cell{
			Header: c.DataAtom == atom.Th,
			Class:  attr(c, "class"),
			HTML:   innerHTML(c),
			Text:   textContent(c),
		})
	}
	return row
}

// TextContent returns the text of an HTML fragment with tags dropped.
func TextContent(markup string) string {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return markup
	}
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(textContent(n))
	}
	return b.String()
}

// RenderNode serializes n and its subtree.
func RenderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Rendering into a bytes.Buffer only fails on malformed trees the
		// parser never produces.
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isInflectionTable(n *html.Node) bool {
	return n.DataAtom == atom.Table && hasClass(n, inflectionTableClass)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, name string) bool {
	return Cell{Class: attr(n, "class")}.HasClass(name)
}
