package yml

import (
	"strconv"
	"strings"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// Offer type discriminants as they appear in the type attribute. The
// simplified kind carries no attribute and is represented by "".
const (
	TypeVendorModel = "vendor.model"
	TypeBook        = "book"
	TypeAudioBook   = "audiobook"
	TypeArtistTitle = "artist.title"
	TypeMedicine    = "medicine"
	TypeEventTicket = "event-ticket"
	TypeAlcohol     = "alco"
)

// Offer is one product listing. The concrete kind is self-described by
// OfferType; the simplified kind returns "".
type Offer interface {
	OfferType() string
	ID() string
	Dict() *Dict
	ToXML(parent *xmltree.Element) *xmltree.Element
}

// OfferParams carries the fields shared by every offer kind. Bool-like
// fields accept nil, a bool or a truthy/falsy token, same as
// enable_auto_discounts on the shop.
type OfferParams struct {
	ID                   string
	Available            any
	URL                  string
	Price                string
	OldPrice             string
	CurrencyID           string
	CategoryID           string
	Pictures             []string
	Delivery             any
	Pickup               any
	Description          string
	SalesNotes           string
	ManufacturerWarranty any
	CountryOfOrigin      string
	Adult                any
}

type offerBase struct {
	id                   string
	available            *bool
	url                  string
	price                string
	oldPrice             string
	currencyID           string
	categoryID           string
	pictures             []string
	delivery             *bool
	pickup               *bool
	description          string
	salesNotes           string
	manufacturerWarranty *bool
	countryOfOrigin      string
	adult                *bool
}

func newOfferBase(p OfferParams) (offerBase, error) {
	var b offerBase
	if p.ID == "" {
		return b, errRequired("offer id")
	}
	available, err := boolish("available", p.Available, truthyTokens, falsyTokens)
	if err != nil {
		return b, err
	}
	if p.URL != "" {
		if err := maxLength("url", p.URL, 512); err != nil {
			return b, err
		}
	}
	if p.Price == "" {
		return b, errRequired("price")
	}
	if err := numericOrChoice("price", p.Price, nil); err != nil {
		return b, err
	}
	if p.OldPrice != "" {
		if err := numericOrChoice("oldprice", p.OldPrice, nil); err != nil {
			return b, err
		}
	}
	if err := choice("currencyId", p.CurrencyID, CurrencyChoices); err != nil {
		return b, err
	}
	if p.CategoryID == "" {
		return b, errRequired("categoryId")
	}
	if p.Description == "" {
		return b, errRequired("description")
	}
	delivery, err := boolish("delivery", p.Delivery, truthyTokens, falsyTokens)
	if err != nil {
		return b, err
	}
	pickup, err := boolish("pickup", p.Pickup, truthyTokens, falsyTokens)
	if err != nil {
		return b, err
	}
	warranty, err := boolish("manufacturer_warranty", p.ManufacturerWarranty, truthyTokens, falsyTokens)
	if err != nil {
		return b, err
	}
	adult, err := boolish("adult", p.Adult, truthyTokens, falsyTokens)
	if err != nil {
		return b, err
	}
	b = offerBase{
		id:                   p.ID,
		available:            available,
		url:                  p.URL,
		price:                p.Price,
		oldPrice:             p.OldPrice,
		currencyID:           p.CurrencyID,
		categoryID:           p.CategoryID,
		pictures:             p.Pictures,
		delivery:             delivery,
		pickup:               pickup,
		description:          p.Description,
		salesNotes:           p.SalesNotes,
		manufacturerWarranty: warranty,
		countryOfOrigin:      p.CountryOfOrigin,
		adult:                adult,
	}
	return b, nil
}

func (b *offerBase) ID() string { return b.id }

// baseDict renders the shared fields; variants append their own after it.
func (b *offerBase) baseDict() *Dict {
	d := NewDict()
	d.Set("id", b.id)
	d.Set("available", boolPtrOrNil(b.available))
	d.Set("url", strOrNil(b.url))
	d.Set("price", b.price)
	d.Set("oldprice", strOrNil(b.oldPrice))
	d.Set("currencyId", b.currencyID)
	d.Set("categoryId", b.categoryID)
	d.Set("pictures", sliceOrNil(b.pictures))
	d.Set("delivery", boolPtrOrNil(b.delivery))
	d.Set("pickup", boolPtrOrNil(b.pickup))
	d.Set("description", b.description)
	d.Set("sales_notes", strOrNil(b.salesNotes))
	d.Set("manufacturer_warranty", boolPtrOrNil(b.manufacturerWarranty))
	d.Set("country_of_origin", strOrNil(b.countryOfOrigin))
	d.Set("adult", boolPtrOrNil(b.adult))
	return d
}

// startXML builds the offer element with the shared fields in their fixed
// order. Variant fields are appended by the caller afterwards, so base
// fields always come first.
func (b *offerBase) startXML(offerType string, parent *xmltree.Element) *xmltree.Element {
	el := xmltree.NewElement("offer")
	el.SetAttr("id", b.id)
	if offerType != "" {
		el.SetAttr("type", offerType)
	}
	if b.available != nil {
		el.SetAttr("available", strconv.FormatBool(*b.available))
	}
	appendTextChild(el, "url", b.url)
	appendTextChild(el, "price", b.price)
	appendTextChild(el, "oldprice", b.oldPrice)
	appendTextChild(el, "currencyId", b.currencyID)
	appendTextChild(el, "categoryId", b.categoryID)
	for _, p := range b.pictures {
		appendTextChild(el, "picture", p)
	}
	appendBoolChild(el, "delivery", b.delivery)
	appendBoolChild(el, "pickup", b.pickup)
	appendTextChild(el, "description", b.description)
	appendTextChild(el, "sales_notes", b.salesNotes)
	appendBoolChild(el, "manufacturer_warranty", b.manufacturerWarranty)
	appendTextChild(el, "country_of_origin", b.countryOfOrigin)
	appendBoolChild(el, "adult", b.adult)
	if parent != nil {
		parent.Append(el)
	}
	return el
}

// offerParamsFromXML collects the shared fields from a materialized offer
// element. Unknown child tags are never read, which is what drops foreign
// elements on decode.
func offerParamsFromXML(el *xmltree.Element) OfferParams {
	p := OfferParams{}
	p.ID, _ = el.Attr("id")
	if raw, ok := el.Attr("available"); ok {
		p.Available = raw
	}
	for _, c := range el.Children() {
		text := strings.TrimSpace(c.Text())
		switch c.Tag {
		case "url":
			p.URL = text
		case "price":
			p.Price = text
		case "oldprice":
			p.OldPrice = text
		case "currencyId":
			p.CurrencyID = text
		case "categoryId":
			p.CategoryID = text
		case "picture":
			p.Pictures = append(p.Pictures, text)
		case "delivery":
			p.Delivery = text
		case "pickup":
			p.Pickup = text
		case "description":
			p.Description = text
		case "sales_notes":
			p.SalesNotes = text
		case "manufacturer_warranty":
			p.ManufacturerWarranty = text
		case "country_of_origin":
			p.CountryOfOrigin = text
		case "adult":
			p.Adult = text
		}
	}
	return p
}

// offerDecoders is the closed dispatch table from type discriminant to
// variant decoder. The simplified kind is keyed by the empty string.
var offerDecoders = map[string]func(*xmltree.Element) (Offer, error){
	"":              simplifiedOfferFromXML,
	TypeVendorModel: arbitraryOfferFromXML,
	TypeBook:        bookOfferFromXML,
	TypeAudioBook:   audioBookOfferFromXML,
	TypeArtistTitle: musicVideoOfferFromXML,
	TypeMedicine:    medicineOfferFromXML,
	TypeEventTicket: eventTicketOfferFromXML,
	TypeAlcohol:     alcoholOfferFromXML,
}

// OfferFromXML decodes a single offer element, dispatching on the type
// attribute. A missing attribute selects the simplified kind; an
// unrecognized value is a ParseError, never a silent fallback.
func OfferFromXML(el *xmltree.Element) (Offer, error) {
	offerType, _ := el.Attr("type")
	dec, ok := offerDecoders[offerType]
	if !ok {
		return nil, errUnknownOfferType(offerType)
	}
	return dec(el)
}

// offerFromEvents is the streaming side of offer decoding: the dispatch
// happens on the opening event's attributes, then exactly the offer's own
// subtree events are consumed before the materialized element is decoded.
func offerFromEvents(src xmltree.EventSource, start *xmltree.Element) (Offer, error) {
	offerType, _ := start.Attr("type")
	dec, ok := offerDecoders[offerType]
	if !ok {
		return nil, errUnknownOfferType(offerType)
	}
	if err := consumeSubtree(src, start); err != nil {
		return nil, err
	}
	return dec(start)
}

func appendTextChild(el *xmltree.Element, tag, value string) {
	if value != "" {
		el.NewChild(tag).SetText(value)
	}
}

func appendBoolChild(el *xmltree.Element, tag string, value *bool) {
	if value != nil {
		el.NewChild(tag).SetText(strconv.FormatBool(*value))
	}
}

func childText(el *xmltree.Element, tag string) string {
	for _, c := range el.Children() {
		if c.Tag == tag {
			return strings.TrimSpace(c.Text())
		}
	}
	return ""
}
