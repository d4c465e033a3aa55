package xmltree

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// EventKind distinguishes the two events a pull tokenizer reports per
// element.
type EventKind int

const (
	ElementOpened EventKind = iota
	ElementClosed
)

// Event pairs an event kind with its element.
//
// Contract: on ElementOpened the element carries tag and attributes only;
// on ElementClosed it is fully materialized (attributes, children, text).
// Streaming decoders rely on the closed-side contract to hand a finished
// subtree to the matching tree decoder.
type Event struct {
	Kind EventKind
	El   *Element
}

// EventSource yields open/close element events. Next returns io.EOF once
// the source is exhausted. The caller owns whatever reader backs the
// source; an EventSource never closes anything.
type EventSource interface {
	Next() (Event, error)
}

// DecoderEvents adapts an xml.Decoder into an EventSource, building each
// element's subtree as its events pass through so that closed elements
// honor the Event contract.
type DecoderEvents struct {
	dec   *xml.Decoder
	stack []*Element
}

func NewDecoderEvents(dec *xml.Decoder) *DecoderEvents {
	return &DecoderEvents{dec: dec}
}

func (s *DecoderEvents) Next() (Event, error) {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if err == io.EOF {
				return Event{}, io.EOF
			}
			return Event{}, errors.Wrap(err, "xmltree: next event")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				el.SetAttr(a.Name.Local, a.Value)
			}
			if len(s.stack) > 0 {
				s.stack[len(s.stack)-1].Append(el)
			}
			s.stack = append(s.stack, el)
			return Event{Kind: ElementOpened, El: el}, nil
		case xml.EndElement:
			// xml.Decoder guarantees tag balance, so the stack cannot be
			// empty here.
			el := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			return Event{Kind: ElementClosed, El: el}, nil
		case xml.CharData:
			if len(s.stack) > 0 {
				cur := s.stack[len(s.stack)-1]
				cur.text += string(t)
			}
		}
	}
}

// SliceEvents replays a fixed event sequence. Intended for tests and for
// callers whose tokens do not come from an XML document.
type SliceEvents struct {
	events []Event
	pos    int
}

func NewSliceEvents(events ...Event) *SliceEvents {
	return &SliceEvents{events: events}
}

func (s *SliceEvents) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}
