// Package xmltree carries the small ordered element tree and the
// open/close event stream the yml codecs operate on. The standard
// encoding/xml tokenizer does the lexing; this package only fixes what it
// leaves open: attribute order, child order and a materialized-element
// event contract for streaming decode.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element with insertion-ordered attributes and children.
type Element struct {
	Tag      string
	attrs    []Attr
	children []*Element
	text     string
}

func NewElement(tag string) *Element { return &Element{Tag: tag} }

// SetAttr sets an attribute, keeping first-insertion order.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attr reports the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in document order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

func (e *Element) Append(c *Element) { e.children = append(e.children, c) }

// NewChild appends and returns a new child element.
func (e *Element) NewChild(tag string) *Element {
	c := NewElement(tag)
	e.Append(c)
	return c
}

func (e *Element) Children() []*Element { return e.children }

func (e *Element) SetText(s string) { e.text = s }

func (e *Element) Text() string { return e.text }

// Parse materializes the document behind r into an element tree and
// returns its root.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "xmltree: parse")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				el.SetAttr(a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("xmltree: multiple root elements")
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("xmltree: no root element")
	}
	return root, nil
}

// WriteTo serializes the element and its subtree, compact, in stored
// attribute and child order.
func (e *Element) WriteTo(w io.Writer) error {
	enc := xml.NewEncoder(w)
	if err := e.encode(enc); err != nil {
		return err
	}
	return enc.Flush()
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}

// String renders the element as a compact XML fragment. Errors are
// swallowed; it exists for logging and tests.
func (e *Element) String() string {
	var b bytes.Buffer
	_ = e.WriteTo(&b)
	return b.String()
}
