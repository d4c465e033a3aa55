package yml_test

import (
	"errors"
	"strings"
	"testing"

	yml "github.com/Divaltor/yandex-market-language"
	"github.com/Divaltor/yandex-market-language/xmltree"
)

// currencies/categories/offers wrappers are schema-mandatory and always
// emitted; the optional group wrappers disappear with their collections.
func TestShopWrapperAsymmetry(t *testing.T) {
	shop := mustShop(t, yml.ShopParams{Name: "S", Company: "C"})
	el := shop.ToXML(nil)

	var tags []string
	for _, c := range el.Children() {
		tags = append(tags, c.Tag)
	}
	for _, mandatory := range []string{"currencies", "categories", "offers"} {
		if !containsTag(tags, mandatory) {
			t.Fatalf("wrapper <%s> must be present even when empty, got %v", mandatory, tags)
		}
	}
	for _, optional := range []string{"delivery-options", "pickup-options", "gifts", "promos"} {
		if containsTag(tags, optional) {
			t.Fatalf("wrapper <%s> must be omitted when empty, got %v", optional, tags)
		}
	}
}

func TestShopAutoDiscountCoercion(t *testing.T) {
	base := yml.ShopParams{Name: "S", Company: "C"}

	for _, token := range []any{"yes", "true", "1", "YES", true} {
		p := base
		p.EnableAutoDiscounts = token
		s := mustShop(t, p)
		if s.EnableAutoDiscounts == nil || !*s.EnableAutoDiscounts {
			t.Fatalf("token %v must coerce to true", token)
		}
	}
	for _, token := range []any{"no", "false", "0", false} {
		p := base
		p.EnableAutoDiscounts = token
		s := mustShop(t, p)
		if s.EnableAutoDiscounts == nil || *s.EnableAutoDiscounts {
			t.Fatalf("token %v must coerce to false", token)
		}
	}

	s := mustShop(t, base)
	if s.EnableAutoDiscounts != nil {
		t.Fatalf("absent value must stay absent")
	}

	p := base
	p.EnableAutoDiscounts = "err"
	_, err := yml.NewShop(p)
	var verr *yml.ValidationError
	if !errors.As(err, &verr) || verr.Field != "enable_auto_discounts" || verr.Code != yml.CodeInvalidEnum {
		t.Fatalf("expected enum violation, got %v", err)
	}
	if len(verr.Allowed) != 6 {
		t.Fatalf("error must list all six tokens, got %v", verr.Allowed)
	}
}

// The token form never round-trips verbatim: encode emits the normalized
// boolean literal.
func TestShopAutoDiscountNormalizedOnEncode(t *testing.T) {
	p := yml.ShopParams{Name: "S", Company: "C", EnableAutoDiscounts: "yes"}
	el := mustShop(t, p).ToXML(nil)

	var text string
	for _, c := range el.Children() {
		if c.Tag == "enable_auto_discounts" {
			text = c.Text()
		}
	}
	if text != "true" {
		t.Fatalf("enable_auto_discounts text = %q, want %q", text, "true")
	}
}

func TestShopURLBound(t *testing.T) {
	p := yml.ShopParams{Name: "S", Company: "C", URL: strings.Repeat("u", 513)}
	_, err := yml.NewShop(p)
	var verr *yml.ValidationError
	if !errors.As(err, &verr) || verr.Field != "url" || verr.Code != yml.CodeTooLong {
		t.Fatalf("expected url too_long, got %v", err)
	}

	p.URL = strings.Repeat("u", 512)
	if _, err := yml.NewShop(p); err != nil {
		t.Fatalf("512-character url rejected: %v", err)
	}
}

func TestShopFromXMLDropsUnknownTags(t *testing.T) {
	shop := mustShop(t, testShopParams(t))
	el := shop.ToXML(nil)
	el.NewChild("cpa").SetText("1")

	decoded, err := yml.ShopFromXML(el)
	if err != nil {
		t.Fatalf("ShopFromXML: %v", err)
	}
	if !decoded.Dict().Equal(shop.Dict()) {
		t.Fatalf("unknown tag must be dropped silently")
	}
}

func TestShopFromXMLDefaultsCurrencies(t *testing.T) {
	el := xmltree.NewElement("shop")
	el.NewChild("name").SetText("S")
	el.NewChild("company").SetText("C")
	el.NewChild("categories")
	el.NewChild("offers")

	shop, err := yml.ShopFromXML(el)
	if err != nil {
		t.Fatalf("ShopFromXML: %v", err)
	}
	if shop.Currencies == nil || len(shop.Currencies) != 0 {
		t.Fatalf("currencies must default to an empty list")
	}
}

func TestShopDictKeys(t *testing.T) {
	shop := mustShop(t, testShopParams(t))
	want := []string{
		"name", "company", "url", "platform", "version", "agency", "email",
		"currencies", "categories", "delivery_options", "pickup_options",
		"enable_auto_discounts", "offers", "gifts", "promos",
	}
	got := shop.Dict().Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestShopDictCleanDropsAbsent(t *testing.T) {
	shop := mustShop(t, yml.ShopParams{Name: "S", Company: "C"})
	cleaned := shop.Dict().Clean()
	for _, absent := range []string{"url", "platform", "enable_auto_discounts"} {
		if _, ok := cleaned.Get(absent); ok {
			t.Fatalf("clean dict must drop absent field %q", absent)
		}
	}
	if _, ok := cleaned.Get("name"); !ok {
		t.Fatalf("clean dict must keep present fields")
	}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
