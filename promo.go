package yml

import (
	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Promo describes a marketing action running in the shop.
type Promo struct {
	ID          string
	Type        string
	URL         string
	Description string
}

func NewPromo(id, promoType, url, description string) (*Promo, error) {
	if id == "" {
		return nil, errRequired("promo id")
	}
	if promoType == "" {
		return nil, errRequired("promo type")
	}
	if url != "" {
		if err := maxLength("url", url, 512); err != nil {
			return nil, err
		}
	}
	return &Promo{ID: id, Type: promoType, URL: url, Description: description}, nil
}

func (p *Promo) Dict() *Dict {
	d := NewDict()
	d.Set("id", p.ID)
	d.Set("type", p.Type)
	d.Set("url", strOrNil(p.URL))
	d.Set("description", strOrNil(p.Description))
	return d
}

// ToXML renders <promo id type> with url/description children when set.
func (p *Promo) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("promo")
	el.SetAttr("id", p.ID)
	el.SetAttr("type", p.Type)
	appendTextChild(el, "url", p.URL)
	appendTextChild(el, "description", p.Description)
	if parent != nil {
		parent.Append(el)
	}
	return el
}

func PromoFromXML(el *xmltree.Element) (*Promo, error) {
	id, _ := el.Attr("id")
	promoType, _ := el.Attr("type")
	return NewPromo(id, promoType, childText(el, "url"), childText(el, "description"))
}
