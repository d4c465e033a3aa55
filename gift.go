package yml

import (
	"strings"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Gift is a giveaway item referenced by promos.
type Gift struct {
	ID   string
	Name string
}

func NewGift(id, name string) (*Gift, error) {
	if id == "" {
		return nil, errRequired("gift id")
	}
	if name == "" {
		return nil, errRequired("gift name")
	}
	return &Gift{ID: id, Name: name}, nil
}

func (g *Gift) Dict() *Dict {
	d := NewDict()
	d.Set("id", g.ID)
	d.Set("name", g.Name)
	return d
}

func (g *Gift) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("gift")
	el.SetAttr("id", g.ID)
	el.SetText(g.Name)
	if parent != nil {
		parent.Append(el)
	}
	return el
}

func GiftFromXML(el *xmltree.Element) (*Gift, error) {
	id, _ := el.Attr("id")
	return NewGift(id, strings.TrimSpace(el.Text()))
}
