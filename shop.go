package yml

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Collection wrapper tags under <shop>. The first three are mandatory in
// the encoded output even when empty; the rest are omitted when empty.
const (
	tagCurrencies      = "currencies"
	tagCategories      = "categories"
	tagOffers          = "offers"
	tagDeliveryOptions = "delivery-options"
	tagPickupOptions   = "pickup-options"
	tagGifts           = "gifts"
	tagPromos          = "promos"
)

// ShopParams carries the Shop constructor inputs. EnableAutoDiscounts
// accepts nil, a bool or one of the yes/true/1/no/false/0 tokens; the token
// form is normalized to a bool and never round-tripped verbatim.
//
// Currency codes and category/offer identifiers are not checked for
// uniqueness here; that belongs to a higher-level validation pass.
type ShopParams struct {
	Name                string
	Company             string
	URL                 string
	Platform            string
	Version             string
	Agency              string
	Email               string
	Currencies          []*Currency
	Categories          []*Category
	Offers              []Offer
	DeliveryOptions     []*Option
	PickupOptions       []*Option
	EnableAutoDiscounts any
	Gifts               []*Gift
	Promos              []*Promo
}

// Shop is the seller aggregate: metadata, catalogs and offers.
type Shop struct {
	Name                string
	Company             string
	URL                 string
	Platform            string
	Version             string
	Agency              string
	Email               string
	Currencies          []*Currency
	Categories          []*Category
	Offers              []Offer
	DeliveryOptions     []*Option
	PickupOptions       []*Option
	EnableAutoDiscounts *bool
	Gifts               []*Gift
	Promos              []*Promo
}

func NewShop(p ShopParams) (*Shop, error) {
	if p.Name == "" {
		return nil, errRequired("name")
	}
	if p.Company == "" {
		return nil, errRequired("company")
	}
	if p.URL != "" {
		if err := maxLength("url", p.URL, 512); err != nil {
			return nil, err
		}
	}
	autoDiscounts, err := boolish("enable_auto_discounts", p.EnableAutoDiscounts, truthyTokens, falsyTokens)
	if err != nil {
		return nil, err
	}
	currencies := p.Currencies
	if currencies == nil {
		currencies = []*Currency{}
	}
	return &Shop{
		Name:                p.Name,
		Company:             p.Company,
		URL:                 p.URL,
		Platform:            p.Platform,
		Version:             p.Version,
		Agency:              p.Agency,
		Email:               p.Email,
		Currencies:          currencies,
		Categories:          p.Categories,
		Offers:              p.Offers,
		DeliveryOptions:     p.DeliveryOptions,
		PickupOptions:       p.PickupOptions,
		EnableAutoDiscounts: autoDiscounts,
		Gifts:               p.Gifts,
		Promos:              p.Promos,
	}, nil
}

func (s *Shop) Dict() *Dict {
	d := NewDict()
	d.Set("name", s.Name)
	d.Set("company", s.Company)
	d.Set("url", strOrNil(s.URL))
	d.Set("platform", strOrNil(s.Platform))
	d.Set("version", strOrNil(s.Version))
	d.Set("agency", strOrNil(s.Agency))
	d.Set("email", strOrNil(s.Email))
	d.Set("currencies", lo.Map(s.Currencies, func(c *Currency, _ int) *Dict { return c.Dict() }))
	d.Set("categories", lo.Map(s.Categories, func(c *Category, _ int) *Dict { return c.Dict() }))
	d.Set("delivery_options", lo.Map(s.DeliveryOptions, func(o *Option, _ int) *Dict { return o.Dict() }))
	d.Set("pickup_options", lo.Map(s.PickupOptions, func(o *Option, _ int) *Dict { return o.Dict() }))
	d.Set("enable_auto_discounts", boolPtrOrNil(s.EnableAutoDiscounts))
	d.Set("offers", lo.Map(s.Offers, func(o Offer, _ int) *Dict { return o.Dict() }))
	d.Set("gifts", lo.Map(s.Gifts, func(g *Gift, _ int) *Dict { return g.Dict() }))
	d.Set("promos", lo.Map(s.Promos, func(p *Promo, _ int) *Dict { return p.Dict() }))
	return d
}

// ToXML assembles the shop subtree. Scalar children are emitted only when
// non-empty; currencies/categories/offers wrappers are always emitted,
// the optional group wrappers only when their collection is non-empty.
func (s *Shop) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("shop")
	appendTextChild(el, "name", s.Name)
	appendTextChild(el, "company", s.Company)
	appendTextChild(el, "url", s.URL)
	appendTextChild(el, "platform", s.Platform)
	appendTextChild(el, "version", s.Version)
	appendTextChild(el, "agency", s.Agency)
	appendTextChild(el, "email", s.Email)

	currenciesEl := el.NewChild(tagCurrencies)
	for _, c := range s.Currencies {
		c.ToXML(currenciesEl)
	}

	categoriesEl := el.NewChild(tagCategories)
	for _, c := range s.Categories {
		c.ToXML(categoriesEl)
	}

	if len(s.DeliveryOptions) > 0 {
		deliveryEl := el.NewChild(tagDeliveryOptions)
		for _, o := range s.DeliveryOptions {
			o.ToXML(deliveryEl)
		}
	}

	if len(s.PickupOptions) > 0 {
		pickupEl := el.NewChild(tagPickupOptions)
		for _, o := range s.PickupOptions {
			o.ToXML(pickupEl)
		}
	}

	if s.EnableAutoDiscounts != nil {
		el.NewChild("enable_auto_discounts").SetText(strconv.FormatBool(*s.EnableAutoDiscounts))
	}

	offersEl := el.NewChild(tagOffers)
	for _, o := range s.Offers {
		o.ToXML(offersEl)
	}

	if len(s.Gifts) > 0 {
		giftsEl := el.NewChild(tagGifts)
		for _, g := range s.Gifts {
			g.ToXML(giftsEl)
		}
	}

	if len(s.Promos) > 0 {
		promosEl := el.NewChild(tagPromos)
		for _, p := range s.Promos {
			p.ToXML(promosEl)
		}
	}

	if parent != nil {
		parent.Append(el)
	}
	return el
}

// assignScalar routes a scalar child tag into its parameter slot. Tags not
// listed here are foreign and dropped, which replaces the original's
// decode-then-filter-by-introspection step.
func (p *ShopParams) assignScalar(tag, text string) {
	switch tag {
	case "name":
		p.Name = text
	case "company":
		p.Company = text
	case "url":
		p.URL = text
	case "platform":
		p.Platform = text
	case "version":
		p.Version = text
	case "agency":
		p.Agency = text
	case "email":
		p.Email = text
	case "enable_auto_discounts":
		p.EnableAutoDiscounts = text
	}
}

// ShopFromXML decodes a shop element from a materialized tree in a single
// pass over its direct children.
func ShopFromXML(el *xmltree.Element) (*Shop, error) {
	p := ShopParams{}
	for _, c := range el.Children() {
		switch c.Tag {
		case tagCurrencies:
			p.Currencies = []*Currency{}
			for _, cc := range c.Children() {
				currency, err := CurrencyFromXML(cc)
				if err != nil {
					return nil, err
				}
				p.Currencies = append(p.Currencies, currency)
			}
		case tagCategories:
			for _, cc := range c.Children() {
				category, err := CategoryFromXML(cc)
				if err != nil {
					return nil, err
				}
				p.Categories = append(p.Categories, category)
			}
		case tagDeliveryOptions:
			for _, oc := range c.Children() {
				option, err := OptionFromXML(oc)
				if err != nil {
					return nil, err
				}
				p.DeliveryOptions = append(p.DeliveryOptions, option)
			}
		case tagPickupOptions:
			for _, oc := range c.Children() {
				option, err := OptionFromXML(oc)
				if err != nil {
					return nil, err
				}
				p.PickupOptions = append(p.PickupOptions, option)
			}
		case tagOffers:
			for _, oc := range c.Children() {
				offer, err := OfferFromXML(oc)
				if err != nil {
					return nil, err
				}
				p.Offers = append(p.Offers, offer)
			}
		case tagGifts:
			for _, gc := range c.Children() {
				gift, err := GiftFromXML(gc)
				if err != nil {
					return nil, err
				}
				p.Gifts = append(p.Gifts, gift)
			}
		case tagPromos:
			for _, pc := range c.Children() {
				promo, err := PromoFromXML(pc)
				if err != nil {
					return nil, err
				}
				p.Promos = append(p.Promos, promo)
			}
		default:
			p.assignScalar(c.Tag, strings.TrimSpace(c.Text()))
		}
	}
	return NewShop(p)
}
