package xmltree_test

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

func newDecoder(doc string) *xml.Decoder {
	return xml.NewDecoder(strings.NewReader(doc))
}

func TestElementAttrOrder(t *testing.T) {
	el := xmltree.NewElement("currency")
	el.SetAttr("id", "USD")
	el.SetAttr("rate", "60.1")
	el.SetAttr("id", "RUB") // overwrite keeps the slot

	attrs := el.Attrs()
	if len(attrs) != 2 || attrs[0].Name != "id" || attrs[0].Value != "RUB" || attrs[1].Name != "rate" {
		t.Fatalf("attrs = %v", attrs)
	}
}

func TestParseAndSerialize(t *testing.T) {
	doc := `<shop><name>S</name><currencies><currency id="USD" rate="60.1"></currency></currencies></shop>`
	root, err := xmltree.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Tag != "shop" || len(root.Children()) != 2 {
		t.Fatalf("root = %q with %d children", root.Tag, len(root.Children()))
	}
	if got := root.String(); got != doc {
		t.Fatalf("serialized = %s, want %s", got, doc)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := xmltree.Parse(strings.NewReader("<a><b></a>")); err == nil {
		t.Fatalf("mismatched tags must fail")
	}
	if _, err := xmltree.Parse(strings.NewReader("")); err == nil {
		t.Fatalf("empty input must fail")
	}
}

func TestDecoderEventsContract(t *testing.T) {
	doc := `<offers><offer id="1"><price>600</price></offer></offers>`
	src := xmltree.NewDecoderEvents(newDecoder(doc))

	ev, err := src.Next()
	if err != nil || ev.Kind != xmltree.ElementOpened || ev.El.Tag != "offers" {
		t.Fatalf("event 1 = %+v, %v", ev, err)
	}

	ev, err = src.Next()
	if err != nil || ev.Kind != xmltree.ElementOpened || ev.El.Tag != "offer" {
		t.Fatalf("event 2 = %+v, %v", ev, err)
	}
	if id, _ := ev.El.Attr("id"); id != "1" {
		t.Fatalf("opened element must carry attributes, id = %q", id)
	}
	if len(ev.El.Children()) != 0 {
		t.Fatalf("opened element must not be materialized yet")
	}
	offer := ev.El

	for {
		ev, err = src.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if ev.Kind == xmltree.ElementClosed && ev.El.Tag == "offer" {
			break
		}
	}
	// On close the element is fully materialized.
	children := offer.Children()
	if len(children) != 1 || children[0].Tag != "price" || strings.TrimSpace(children[0].Text()) != "600" {
		t.Fatalf("closed element not materialized: %s", offer)
	}

	ev, err = src.Next()
	if err != nil || ev.Kind != xmltree.ElementClosed || ev.El.Tag != "offers" {
		t.Fatalf("final event = %+v, %v", ev, err)
	}
	if _, err = src.Next(); err != io.EOF {
		t.Fatalf("exhausted source must return io.EOF, got %v", err)
	}
}

func TestSliceEvents(t *testing.T) {
	a := xmltree.NewElement("a")
	src := xmltree.NewSliceEvents(
		xmltree.Event{Kind: xmltree.ElementOpened, El: a},
		xmltree.Event{Kind: xmltree.ElementClosed, El: a},
	)
	for i := 0; i < 2; i++ {
		if _, err := src.Next(); err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
	}
	if _, err := src.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

func TestTextEscaping(t *testing.T) {
	el := xmltree.NewElement("description")
	el.SetText(`5 < 6 & "quotes"`)
	out := el.String()
	if strings.Contains(out, "<6") || !strings.Contains(out, "&lt;") {
		t.Fatalf("text not escaped: %s", out)
	}

	back, err := xmltree.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Text() != `5 < 6 & "quotes"` {
		t.Fatalf("text did not round-trip: %q", back.Text())
	}
}
