package yml

import (
	"strconv"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Option is one delivery or pickup option. Days holds a plain day count or
// a range token such as "1-3"; OrderBefore is an hour of day.
type Option struct {
	Cost        string
	Days        string
	OrderBefore *int
}

func NewOption(cost, days string, orderBefore *int) (*Option, error) {
	if err := numericOrChoice("cost", cost, nil); err != nil {
		return nil, err
	}
	if err := daysValue("days", days); err != nil {
		return nil, err
	}
	if orderBefore != nil {
		if err := intInRange("order_before", *orderBefore, 0, 23); err != nil {
			return nil, err
		}
	}
	return &Option{Cost: cost, Days: days, OrderBefore: orderBefore}, nil
}

func (o *Option) Dict() *Dict {
	d := NewDict()
	d.Set("cost", o.Cost)
	d.Set("days", o.Days)
	d.Set("order_before", intPtrOrNil(o.OrderBefore))
	return d
}

// ToXML renders <option cost days [order_before]/>.
func (o *Option) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("option")
	el.SetAttr("cost", o.Cost)
	el.SetAttr("days", o.Days)
	if o.OrderBefore != nil {
		el.SetAttr("order_before", strconv.Itoa(*o.OrderBefore))
	}
	if parent != nil {
		parent.Append(el)
	}
	return el
}

func OptionFromXML(el *xmltree.Element) (*Option, error) {
	cost, _ := el.Attr("cost")
	days, _ := el.Attr("days")
	var orderBefore *int
	if raw, ok := el.Attr("order_before"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errNotInt("order_before", raw)
		}
		orderBefore = &n
	}
	return NewOption(cost, days, orderBefore)
}
