package yml

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// ShopFromEvents reconstructs a Shop from a stream of open/close element
// events scoped inside a shop element: decoding stops at the shop's own
// close event or when the source is exhausted. The source stays owned by
// the caller; it is never closed here.
//
// A malformed stream is a hard failure: a wrapper close with no matching
// open, a stray close inside a collection and a source that ends inside an
// open wrapper or offer all return a ParseError.
func ShopFromEvents(src xmltree.EventSource) (*Shop, error) {
	p := ShopParams{}
	var err error
	for {
		ev, evErr := src.Next()
		if evErr == io.EOF {
			break
		}
		if evErr != nil {
			return nil, evErr
		}
		switch ev.Kind {
		case xmltree.ElementOpened:
			switch ev.El.Tag {
			case tagCurrencies:
				p.Currencies, err = collectClosed(src, tagCurrencies, CurrencyFromXML)
			case tagCategories:
				p.Categories, err = collectClosed(src, tagCategories, CategoryFromXML)
			case tagDeliveryOptions:
				p.DeliveryOptions, err = collectClosed(src, tagDeliveryOptions, OptionFromXML)
			case tagPickupOptions:
				p.PickupOptions, err = collectClosed(src, tagPickupOptions, OptionFromXML)
			case tagGifts:
				p.Gifts, err = collectClosed(src, tagGifts, GiftFromXML)
			case tagPromos:
				p.Promos, err = collectClosed(src, tagPromos, PromoFromXML)
			case tagOffers:
				p.Offers, err = collectOffers(src)
			default:
				// Scalar or foreign element; handled on its close event.
			}
			if err != nil {
				return nil, err
			}
		case xmltree.ElementClosed:
			switch ev.El.Tag {
			case "shop":
				return newShopFromStream(p)
			case tagCurrencies, tagCategories, tagDeliveryOptions, tagPickupOptions, tagOffers, tagGifts, tagPromos:
				return nil, errUnbalanced(ev.El.Tag)
			default:
				p.assignScalar(ev.El.Tag, strings.TrimSpace(ev.El.Text()))
			}
		}
	}
	return newShopFromStream(p)
}

func newShopFromStream(p ShopParams) (*Shop, error) {
	if p.Currencies == nil {
		p.Currencies = []*Currency{}
	}
	return NewShop(p)
}

// collectClosed runs a collecting sub-loop: it consumes events until the
// wrapper's own close event and decodes every direct child on its close.
// Depth tracking keeps grandchildren (promo url, description) from being
// mistaken for collection entries.
func collectClosed[T any](src xmltree.EventSource, wrapper string, decode func(*xmltree.Element) (T, error)) ([]T, error) {
	out := []T{}
	depth := 1
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return nil, errTruncated(wrapper)
		}
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case xmltree.ElementOpened:
			depth++
		case xmltree.ElementClosed:
			depth--
			if depth == 0 {
				if ev.El.Tag != wrapper {
					return nil, errUnbalanced(ev.El.Tag)
				}
				return out, nil
			}
			if depth == 1 {
				v, err := decode(ev.El)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
		}
	}
}

// collectOffers is the two-level offers sub-loop: each offer open event
// dispatches on the type attribute, and the variant consumes exactly its
// own subtree before control returns here.
func collectOffers(src xmltree.EventSource) ([]Offer, error) {
	out := []Offer{}
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return nil, errTruncated(tagOffers)
		}
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case xmltree.ElementOpened:
			if ev.El.Tag == "offer" {
				offer, err := offerFromEvents(src, ev.El)
				if err != nil {
					return nil, err
				}
				out = append(out, offer)
				continue
			}
			// Foreign element between offers; skip its whole subtree.
			if err := consumeSubtree(src, ev.El); err != nil {
				return nil, err
			}
		case xmltree.ElementClosed:
			if ev.El.Tag == tagOffers {
				return out, nil
			}
			return nil, errUnbalanced(ev.El.Tag)
		}
	}
}

// consumeSubtree advances src until the close event matching start, using a
// depth counter so identically named nested tags cannot terminate the scan
// early. On return the source is positioned just past start's close event.
func consumeSubtree(src xmltree.EventSource, start *xmltree.Element) error {
	depth := 1
	for depth > 0 {
		ev, err := src.Next()
		if err == io.EOF {
			return errTruncated(start.Tag)
		}
		if err != nil {
			return err
		}
		switch ev.Kind {
		case xmltree.ElementOpened:
			depth++
		case xmltree.ElementClosed:
			depth--
			if depth == 0 && ev.El.Tag != start.Tag {
				return errUnbalanced(ev.El.Tag)
			}
		}
	}
	return nil
}

// ParseShopStream decodes the shop out of a feed document incrementally,
// without materializing the tree above the shop element first.
func ParseShopStream(r io.Reader) (*Shop, error) {
	src := xmltree.NewDecoderEvents(xml.NewDecoder(r))
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return nil, &ParseError{Code: CodeParseError, Message: "no shop element in document"}
		}
		if err != nil {
			return nil, err
		}
		if ev.Kind == xmltree.ElementOpened && ev.El.Tag == "shop" {
			return ShopFromEvents(src)
		}
	}
}
