package yml_test

import (
	"bytes"
	"strings"
	"testing"

	yml "github.com/Divaltor/yandex-market-language"
)

func TestFeedRoundTrip(t *testing.T) {
	feed := mustFeed(t)

	var buf bytes.Buffer
	if err := feed.WriteXML(&buf); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	decoded, err := yml.ParseFeed(&buf)
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}
	if !decoded.Dict().Equal(feed.Dict()) {
		t.Fatalf("feed did not round-trip:\n got: %s\nwant: %s",
			mustJSON(t, decoded.Dict()), mustJSON(t, feed.Dict()))
	}
}

func TestFeedXMLShape(t *testing.T) {
	feed := mustFeed(t)
	el := feed.ToXML()
	if el.Tag != "yml_catalog" {
		t.Fatalf("root tag = %q", el.Tag)
	}
	if got, _ := el.Attr("date"); got != "2020-03-14 12:00:00" {
		t.Fatalf("date attr = %q", got)
	}
	children := el.Children()
	if len(children) != 1 || children[0].Tag != "shop" {
		t.Fatalf("yml_catalog must have the shop as its only child, got %d children", len(children))
	}
}

// A fallback-format timestamp is accepted and normalized to the primary
// format on encode.
func TestFeedDateFallbackNormalization(t *testing.T) {
	feed, err := yml.NewFeed(mustShop(t, testShopParams(t)), "2020-03-14 12:00")
	if err != nil {
		t.Fatalf("NewFeed: %v", err)
	}
	if feed.Date() != "2020-03-14 12:00:00" {
		t.Fatalf("date = %q, want normalized primary format", feed.Date())
	}

	if _, err := yml.NewFeed(feed.Shop, "14.03.2020"); err == nil {
		t.Fatalf("unparseable date must fail")
	}
}

func TestFeedDateDefaultsToNow(t *testing.T) {
	feed, err := yml.NewFeed(mustShop(t, yml.ShopParams{Name: "S", Company: "C"}), "")
	if err != nil {
		t.Fatalf("NewFeed: %v", err)
	}
	if feed.Date() == "" {
		t.Fatalf("empty date must default to the current time")
	}
	if _, perr := yml.NewFeed(feed.Shop, feed.Date()); perr != nil {
		t.Fatalf("default date is not in the primary format: %q", feed.Date())
	}
}

func TestFeedDict(t *testing.T) {
	feed := mustFeed(t)
	d := feed.Dict()
	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "shop" || keys[1] != "date" {
		t.Fatalf("feed dict keys = %v", keys)
	}
	date, _ := d.Get("date")
	if date != feed.Date() {
		t.Fatalf("dict date = %v", date)
	}
}

func TestParseFeedRejectsWrongRoot(t *testing.T) {
	_, err := yml.ParseFeed(strings.NewReader("<catalog><shop></shop></catalog>"))
	if err == nil {
		t.Fatalf("wrong root tag must fail")
	}
}
