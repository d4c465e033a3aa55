package yml

import (
	"strconv"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Currency is one entry of the shop currency catalog. Rate holds either a
// numeric literal or one of the RateChoices "on request" tokens, already
// validated.
type Currency struct {
	Code string
	Rate string
	Plus *int
}

func NewCurrency(code, rate string, plus *int) (*Currency, error) {
	if err := choice("currency", code, CurrencyChoices); err != nil {
		return nil, err
	}
	if err := numericOrChoice("rate", rate, RateChoices); err != nil {
		return nil, err
	}
	return &Currency{Code: code, Rate: rate, Plus: plus}, nil
}

func (c *Currency) Dict() *Dict {
	d := NewDict()
	d.Set("id", c.Code)
	d.Set("rate", c.Rate)
	d.Set("plus", intPtrOrNil(c.Plus))
	return d
}

// ToXML renders <currency id rate [plus]/>. A nil Plus omits the attribute
// entirely.
func (c *Currency) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("currency")
	el.SetAttr("id", c.Code)
	el.SetAttr("rate", c.Rate)
	if c.Plus != nil {
		el.SetAttr("plus", strconv.Itoa(*c.Plus))
	}
	if parent != nil {
		parent.Append(el)
	}
	return el
}

func CurrencyFromXML(el *xmltree.Element) (*Currency, error) {
	code, _ := el.Attr("id")
	rate, _ := el.Attr("rate")
	var plus *int
	if raw, ok := el.Attr("plus"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errNotInt("plus", raw)
		}
		plus = &n
	}
	return NewCurrency(code, rate, plus)
}
