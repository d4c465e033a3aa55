package main

import (
	"fmt"
	"strings"

	yml "github.com/Divaltor/yandex-market-language"
)

// feedDef is the YAML feed definition consumed by `ymlfeed convert`. It
// mirrors the dict representation of the model: one flat offer mapping per
// entry with a `type` selector, snake_case keys.
type feedDef struct {
	Date string  `yaml:"date"`
	Shop shopDef `yaml:"shop"`
}

type shopDef struct {
	Name                string        `yaml:"name"`
	Company             string        `yaml:"company"`
	URL                 string        `yaml:"url"`
	Platform            string        `yaml:"platform"`
	Version             string        `yaml:"version"`
	Agency              string        `yaml:"agency"`
	Email               string        `yaml:"email"`
	Currencies          []currencyDef `yaml:"currencies"`
	Categories          []categoryDef `yaml:"categories"`
	DeliveryOptions     []optionDef   `yaml:"delivery_options"`
	PickupOptions       []optionDef   `yaml:"pickup_options"`
	EnableAutoDiscounts *string       `yaml:"enable_auto_discounts"`
	Offers              []offerDef    `yaml:"offers"`
	Gifts               []giftDef     `yaml:"gifts"`
	Promos              []promoDef    `yaml:"promos"`
}

type currencyDef struct {
	ID   string `yaml:"id"`
	Rate string `yaml:"rate"`
	Plus *int   `yaml:"plus"`
}

type categoryDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	ParentID string `yaml:"parent_id"`
}

type optionDef struct {
	Cost        string `yaml:"cost"`
	Days        string `yaml:"days"`
	OrderBefore *int   `yaml:"order_before"`
}

type giftDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type promoDef struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// offerDef is the union of all variant fields; build() picks the ones the
// selected kind understands.
type offerDef struct {
	Type                 string   `yaml:"type"`
	ID                   string   `yaml:"id"`
	Available            *bool    `yaml:"available"`
	URL                  string   `yaml:"url"`
	Price                string   `yaml:"price"`
	OldPrice             string   `yaml:"old_price"`
	Currency             string   `yaml:"currency"`
	CategoryID           string   `yaml:"category_id"`
	Pictures             []string `yaml:"pictures"`
	Delivery             *bool    `yaml:"delivery"`
	Pickup               *bool    `yaml:"pickup"`
	Description          string   `yaml:"description"`
	SalesNotes           string   `yaml:"sales_notes"`
	ManufacturerWarranty *bool    `yaml:"manufacturer_warranty"`
	CountryOfOrigin      string   `yaml:"country_of_origin"`
	Adult                *bool    `yaml:"adult"`

	Name            string `yaml:"name"`
	Vendor          string `yaml:"vendor"`
	VendorCode      string `yaml:"vendor_code"`
	Model           string `yaml:"model"`
	TypePrefix      string `yaml:"type_prefix"`
	Publisher       string `yaml:"publisher"`
	Author          string `yaml:"author"`
	ISBN            string `yaml:"isbn"`
	Year            string `yaml:"year"`
	Volume          string `yaml:"volume"`
	Part            string `yaml:"part"`
	Language        string `yaml:"language"`
	Binding         string `yaml:"binding"`
	PageExtent      int    `yaml:"page_extent"`
	PerformedBy     string `yaml:"performed_by"`
	PerformanceType string `yaml:"performance_type"`
	Storage         string `yaml:"storage"`
	Format          string `yaml:"format"`
	RecordingLength string `yaml:"recording_length"`
	Title           string `yaml:"title"`
	Artist          string `yaml:"artist"`
	Media           string `yaml:"media"`
	Starring        string `yaml:"starring"`
	Director        string `yaml:"director"`
	OriginalName    string `yaml:"original_name"`
	Country         string `yaml:"country"`
	Place           string `yaml:"place"`
	Date            string `yaml:"date"`
	Hall            string `yaml:"hall"`
	HallPart        string `yaml:"hall_part"`
	IsPremiere      *bool  `yaml:"is_premiere"`
	IsKids          *bool  `yaml:"is_kids"`
	Barcode         string `yaml:"barcode"`
}

func (d feedDef) build() (*yml.Feed, error) {
	shop, err := d.Shop.build()
	if err != nil {
		return nil, err
	}
	return yml.NewFeed(shop, d.Date)
}

func (d shopDef) build() (*yml.Shop, error) {
	p := yml.ShopParams{
		Name:     d.Name,
		Company:  d.Company,
		URL:      d.URL,
		Platform: d.Platform,
		Version:  d.Version,
		Agency:   d.Agency,
		Email:    d.Email,
	}
	if d.EnableAutoDiscounts != nil {
		p.EnableAutoDiscounts = *d.EnableAutoDiscounts
	}
	var err error
	for _, c := range d.Currencies {
		currency, cerr := yml.NewCurrency(c.ID, c.Rate, c.Plus)
		if cerr != nil {
			return nil, cerr
		}
		p.Currencies = append(p.Currencies, currency)
	}
	for _, c := range d.Categories {
		category, cerr := yml.NewCategory(c.ID, c.Name, c.ParentID)
		if cerr != nil {
			return nil, cerr
		}
		p.Categories = append(p.Categories, category)
	}
	if p.DeliveryOptions, err = buildOptions(d.DeliveryOptions); err != nil {
		return nil, err
	}
	if p.PickupOptions, err = buildOptions(d.PickupOptions); err != nil {
		return nil, err
	}
	for _, o := range d.Offers {
		offer, oerr := o.build()
		if oerr != nil {
			return nil, oerr
		}
		p.Offers = append(p.Offers, offer)
	}
	for _, g := range d.Gifts {
		gift, gerr := yml.NewGift(g.ID, g.Name)
		if gerr != nil {
			return nil, gerr
		}
		p.Gifts = append(p.Gifts, gift)
	}
	for _, pr := range d.Promos {
		promo, perr := yml.NewPromo(pr.ID, pr.Type, pr.URL, pr.Description)
		if perr != nil {
			return nil, perr
		}
		p.Promos = append(p.Promos, promo)
	}
	return yml.NewShop(p)
}

func buildOptions(defs []optionDef) ([]*yml.Option, error) {
	out := make([]*yml.Option, 0, len(defs))
	for _, d := range defs {
		option, err := yml.NewOption(d.Cost, d.Days, d.OrderBefore)
		if err != nil {
			return nil, err
		}
		out = append(out, option)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (d offerDef) params() yml.OfferParams {
	return yml.OfferParams{
		ID:                   d.ID,
		Available:            boolAny(d.Available),
		URL:                  d.URL,
		Price:                d.Price,
		OldPrice:             d.OldPrice,
		CurrencyID:           d.Currency,
		CategoryID:           d.CategoryID,
		Pictures:             d.Pictures,
		Delivery:             boolAny(d.Delivery),
		Pickup:               boolAny(d.Pickup),
		Description:          d.Description,
		SalesNotes:           d.SalesNotes,
		ManufacturerWarranty: boolAny(d.ManufacturerWarranty),
		CountryOfOrigin:      d.CountryOfOrigin,
		Adult:                boolAny(d.Adult),
	}
}

func (d offerDef) build() (yml.Offer, error) {
	switch d.Type {
	case "":
		return yml.NewSimplifiedOffer(yml.SimplifiedOfferParams{
			OfferParams: d.params(),
			Name:        d.Name,
			Vendor:      d.Vendor,
			VendorCode:  d.VendorCode,
		})
	case yml.TypeVendorModel:
		return yml.NewArbitraryOffer(yml.ArbitraryOfferParams{
			OfferParams: d.params(),
			Model:       d.Model,
			Vendor:      d.Vendor,
			TypePrefix:  d.TypePrefix,
		})
	case yml.TypeBook:
		return yml.NewBookOffer(yml.BookOfferParams{
			OfferParams: d.params(),
			Name:        d.Name,
			Publisher:   d.Publisher,
			Author:      d.Author,
			ISBN:        d.ISBN,
			Year:        d.Year,
			Volume:      d.Volume,
			Part:        d.Part,
			Language:    d.Language,
			Binding:     d.Binding,
			PageExtent:  d.PageExtent,
		})
	case yml.TypeAudioBook:
		return yml.NewAudioBookOffer(yml.AudioBookOfferParams{
			OfferParams:     d.params(),
			Name:            d.Name,
			Publisher:       d.Publisher,
			Author:          d.Author,
			ISBN:            d.ISBN,
			PerformedBy:     d.PerformedBy,
			PerformanceType: d.PerformanceType,
			Storage:         d.Storage,
			Format:          d.Format,
			RecordingLength: d.RecordingLength,
		})
	case yml.TypeArtistTitle:
		return yml.NewMusicVideoOffer(yml.MusicVideoOfferParams{
			OfferParams:  d.params(),
			Title:        d.Title,
			Artist:       d.Artist,
			Year:         d.Year,
			Media:        d.Media,
			Starring:     d.Starring,
			Director:     d.Director,
			OriginalName: d.OriginalName,
			Country:      d.Country,
		})
	case yml.TypeMedicine:
		return yml.NewMedicineOffer(yml.MedicineOfferParams{
			OfferParams: d.params(),
			Name:        d.Name,
		})
	case yml.TypeEventTicket:
		return yml.NewEventTicketOffer(yml.EventTicketOfferParams{
			OfferParams: d.params(),
			Name:        d.Name,
			Place:       d.Place,
			Date:        d.Date,
			Hall:        d.Hall,
			HallPart:    d.HallPart,
			IsPremiere:  boolAny(d.IsPremiere),
			IsKids:      boolAny(d.IsKids),
		})
	case yml.TypeAlcohol:
		return yml.NewAlcoholOffer(yml.AlcoholOfferParams{
			OfferParams: d.params(),
			Name:        d.Name,
			Vendor:      d.Vendor,
			Barcode:     d.Barcode,
			Volume:      d.Volume,
		})
	}
	known := []string{
		yml.TypeVendorModel, yml.TypeBook, yml.TypeAudioBook, yml.TypeArtistTitle,
		yml.TypeMedicine, yml.TypeEventTicket, yml.TypeAlcohol,
	}
	return nil, fmt.Errorf("offer %s: unknown type %q (known: %s)", d.ID, d.Type, strings.Join(known, ", "))
}

// boolAny keeps a nil *bool as the tri-state absence value.
func boolAny(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
