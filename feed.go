package yml

import (
	"io"
	"os"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Feed is the yml_catalog document root: one Shop plus the generation
// timestamp, stored normalized to DateFormat.
type Feed struct {
	Shop *Shop
	date string
}

// NewFeed builds a feed. The date accepts both timestamp layouts; an empty
// date defaults to the current time.
func NewFeed(shop *Shop, date string) (*Feed, error) {
	if shop == nil {
		return nil, errRequired("shop")
	}
	normalized, err := datetimeWithFallback("date", date, DateFormat, AltDateFormat)
	if err != nil {
		return nil, err
	}
	return &Feed{Shop: shop, date: normalized}, nil
}

// Date reports the generation timestamp in the primary layout.
func (f *Feed) Date() string { return f.date }

func (f *Feed) Dict() *Dict {
	d := NewDict()
	d.Set("shop", f.Shop.Dict())
	d.Set("date", f.date)
	return d
}

// ToXML builds <yml_catalog date=...> with the shop subtree as its only
// child.
func (f *Feed) ToXML() *xmltree.Element {
	el := xmltree.NewElement("yml_catalog")
	el.SetAttr("date", f.date)
	f.Shop.ToXML(el)
	return el
}

// FeedFromXML decodes a materialized yml_catalog element.
func FeedFromXML(el *xmltree.Element) (*Feed, error) {
	if el.Tag != "yml_catalog" {
		return nil, &ParseError{Code: CodeParseError, Message: "expected yml_catalog root, got <" + el.Tag + ">"}
	}
	children := el.Children()
	if len(children) == 0 {
		return nil, &ParseError{Code: CodeParseError, Message: "yml_catalog has no shop element"}
	}
	shop, err := ShopFromXML(children[0])
	if err != nil {
		return nil, err
	}
	date, _ := el.Attr("date")
	return NewFeed(shop, date)
}

// ParseFeed reads a whole feed document from r. The reader stays owned by
// the caller.
func ParseFeed(r io.Reader) (*Feed, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return FeedFromXML(root)
}

// WriteXML serializes the feed with an XML declaration.
func (f *Feed) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return err
	}
	return f.ToXML().WriteTo(w)
}

func ParseFeedFile(path string) (*Feed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseFeed(file)
}

func (f *Feed) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteXML(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
