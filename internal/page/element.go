package page

import (
	"slices"

	"github.com/google/uuid"
)

// Element carries the attributes shared by every node of the document.
type Element struct {
	ID      string
	Classes []string
	hidden  bool
	data    map[string]string
}

// HasClass reports whether the element carries class c.
func (e *Element) HasClass(c string) bool {
	return slices.Contains(e.Classes, c)
}

// Class returns the i-th class, or "" when there are fewer classes.
func (e *Element) Class(i int) string {
	if i < 0 || i >= len(e.Classes) {
		return ""
	}
	return e.Classes[i]
}

func (e *Element) Show()         { e.hidden = false }
func (e *Element) Hide()         { e.hidden = true }
func (e *Element) Visible() bool { return !e.hidden }

// SetData stamps a data attribute.
func (e *Element) SetData(key, value string) {
	if e.data == nil {
		e.data = make(map[string]string)
	}
	e.data[key] = value
}

// Data returns the data attribute stored under key, or "".
func (e *Element) Data(key string) string {
	return e.data[key]
}

// Style is the background of an art element.
type Style struct {
	Background string
	Size       string
}

// Card is one rendered result.
type Card struct {
	Element
	Heading     string // h3
	Subheading  string // h4, empty when the template has none
	Description string
	Art         Style
}

// Template is a card prototype. Cloning copies its classes and produces a fresh id.
type Template struct {
	Element
	HasSubheading bool
}

// NewTemplate creates a template whose root carries classes.
func NewTemplate(id string, hasSubheading bool, classes ...string) *Template {
	return &Template{Element: Element{ID: id, Classes: classes}, HasSubheading: hasSubheading}
}

// Clone returns a detached card built from the template.
func (t *Template) Clone() *Card {
	c := &Card{Element: Element{ID: uuid.NewString(), Classes: slices.Clone(t.Classes)}}
	for k, v := range t.data {
		c.SetData(k, v)
	}
	return c
}

// Label is a text node.
type Label struct {
	Element
	Text string
}

func (l *Label) SetText(s string) { l.Text = s }

// Panel is a block whose background can be styled (artist page, artwork).
type Panel struct {
	Element
	Style Style
}

// Scroller is the scrollable content area.
type Scroller struct {
	Element
	Offset int
}

func (s *Scroller) ScrollTo(offset int) { s.Offset = offset }
