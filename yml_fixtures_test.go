package yml_test

import (
	"testing"

	yml "github.com/Divaltor/yandex-market-language"
)

func intPtr(n int) *int { return &n }

func mustCurrency(t *testing.T, code, rate string, plus *int) *yml.Currency {
	t.Helper()
	c, err := yml.NewCurrency(code, rate, plus)
	if err != nil {
		t.Fatalf("NewCurrency(%q, %q): %v", code, rate, err)
	}
	return c
}

func mustCategory(t *testing.T, id, name, parentID string) *yml.Category {
	t.Helper()
	c, err := yml.NewCategory(id, name, parentID)
	if err != nil {
		t.Fatalf("NewCategory(%q): %v", id, err)
	}
	return c
}

func mustOption(t *testing.T, cost, days string, orderBefore *int) *yml.Option {
	t.Helper()
	o, err := yml.NewOption(cost, days, orderBefore)
	if err != nil {
		t.Fatalf("NewOption(%q, %q): %v", cost, days, err)
	}
	return o
}

func baseOfferParams(id string) yml.OfferParams {
	return yml.OfferParams{
		ID:          id,
		Available:   true,
		URL:         "https://best.seller.ru/product?id=" + id,
		Price:       "600",
		CurrencyID:  "RUB",
		CategoryID:  "1",
		Pictures:    []string{"https://best.seller.ru/img/" + id + ".jpg"},
		Delivery:    "true",
		Description: "Item " + id,
		SalesNotes:  "Prepayment required",
	}
}

func mustSimplifiedOffer(t *testing.T, id string) *yml.SimplifiedOffer {
	t.Helper()
	o, err := yml.NewSimplifiedOffer(yml.SimplifiedOfferParams{
		OfferParams: baseOfferParams(id),
		Name:        "Product " + id,
		Vendor:      "BestVendor",
		VendorCode:  "A" + id,
	})
	if err != nil {
		t.Fatalf("NewSimplifiedOffer: %v", err)
	}
	return o
}

func mustBookOffer(t *testing.T, id string) *yml.BookOffer {
	t.Helper()
	o, err := yml.NewBookOffer(yml.BookOfferParams{
		OfferParams: baseOfferParams(id),
		Name:        "All Quiet on the Western Front",
		Publisher:   "AST",
		Author:      "Erich Maria Remarque",
		ISBN:        "978-5-17-087889-5",
		Year:        "2017",
		Language:    "ru",
		Binding:     "hard",
		PageExtent:  288,
	})
	if err != nil {
		t.Fatalf("NewBookOffer: %v", err)
	}
	return o
}

// allKindOffers returns one offer of every kind, simplified first.
func allKindOffers(t *testing.T) []yml.Offer {
	t.Helper()
	offers := []yml.Offer{
		mustSimplifiedOffer(t, "100"),
		mustBookOffer(t, "102"),
	}
	arbitrary, err := yml.NewArbitraryOffer(yml.ArbitraryOfferParams{
		OfferParams: baseOfferParams("101"),
		Model:       "A1234",
		Vendor:      "BestVendor",
		TypePrefix:  "Printer",
	})
	if err != nil {
		t.Fatalf("NewArbitraryOffer: %v", err)
	}
	audioBook, err := yml.NewAudioBookOffer(yml.AudioBookOfferParams{
		OfferParams:     baseOfferParams("103"),
		Name:            "The Master and Margarita",
		Publisher:       "1C",
		Author:          "Mikhail Bulgakov",
		PerformedBy:     "Maxim Suhanov",
		PerformanceType: "read",
		Storage:         "CD",
		Format:          "mp3",
		RecordingLength: "13.15",
	})
	if err != nil {
		t.Fatalf("NewAudioBookOffer: %v", err)
	}
	musicVideo, err := yml.NewMusicVideoOffer(yml.MusicVideoOfferParams{
		OfferParams: baseOfferParams("104"),
		Title:       "Dark Side of the Moon",
		Artist:      "Pink Floyd",
		Year:        "1973",
		Media:       "CD",
	})
	if err != nil {
		t.Fatalf("NewMusicVideoOffer: %v", err)
	}
	medicine, err := yml.NewMedicineOffer(yml.MedicineOfferParams{
		OfferParams: baseOfferParams("105"),
		Name:        "Paracetamol",
	})
	if err != nil {
		t.Fatalf("NewMedicineOffer: %v", err)
	}
	eventTicket, err := yml.NewEventTicketOffer(yml.EventTicketOfferParams{
		OfferParams: baseOfferParams("106"),
		Name:        "Swan Lake",
		Place:       "Bolshoi Theatre",
		Date:        "2020-03-14 19:00:00",
		Hall:        "Main",
		IsPremiere:  "no",
	})
	if err != nil {
		t.Fatalf("NewEventTicketOffer: %v", err)
	}
	alcohol, err := yml.NewAlcoholOffer(yml.AlcoholOfferParams{
		OfferParams: baseOfferParams("107"),
		Name:        "Chateau Margaux 2015",
		Vendor:      "Chateau Margaux",
		Barcode:     "3458720015843",
		Volume:      "0.75",
	})
	if err != nil {
		t.Fatalf("NewAlcoholOffer: %v", err)
	}
	return append(offers, arbitrary, audioBook, musicVideo, medicine, eventTicket, alcohol)
}

func testShopParams(t *testing.T) yml.ShopParams {
	t.Helper()
	return yml.ShopParams{
		Name:    "BestSeller",
		Company: "Best Seller LLC",
		URL:     "https://best.seller.ru",
		Currencies: []*yml.Currency{
			mustCurrency(t, "RUB", "1", nil),
			mustCurrency(t, "USD", "60.1", intPtr(1)),
		},
		Categories: []*yml.Category{
			mustCategory(t, "1", "Books", ""),
			mustCategory(t, "2", "Audiobooks", "1"),
		},
		DeliveryOptions: []*yml.Option{
			mustOption(t, "250", "1-3", intPtr(18)),
		},
		EnableAutoDiscounts: "yes",
		Offers:              allKindOffers(t),
	}
}

func mustShop(t *testing.T, p yml.ShopParams) *yml.Shop {
	t.Helper()
	s, err := yml.NewShop(p)
	if err != nil {
		t.Fatalf("NewShop: %v", err)
	}
	return s
}

func mustFeed(t *testing.T) *yml.Feed {
	t.Helper()
	feed, err := yml.NewFeed(mustShop(t, testShopParams(t)), "2020-03-14 12:00:00")
	if err != nil {
		t.Fatalf("NewFeed: %v", err)
	}
	return feed
}
