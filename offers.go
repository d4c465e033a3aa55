package yml

import (
	"strconv"

	"github.com/Divaltor/yandex-market-language/xmltree"
)

// SimplifiedOffer is the default offer kind. It carries no type attribute
// and must round-trip that way, not via a sentinel value.
type SimplifiedOffer struct {
	offerBase
	Name       string
	Vendor     string
	VendorCode string
}

type SimplifiedOfferParams struct {
	OfferParams
	Name       string
	Vendor     string
	VendorCode string
}

func NewSimplifiedOffer(p SimplifiedOfferParams) (*SimplifiedOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errRequired("name")
	}
	return &SimplifiedOffer{offerBase: base, Name: p.Name, Vendor: p.Vendor, VendorCode: p.VendorCode}, nil
}

func (o *SimplifiedOffer) OfferType() string { return "" }

func (o *SimplifiedOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("name", o.Name)
	d.Set("vendor", strOrNil(o.Vendor))
	d.Set("vendorCode", strOrNil(o.VendorCode))
	return d
}

func (o *SimplifiedOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "name", o.Name)
	appendTextChild(el, "vendor", o.Vendor)
	appendTextChild(el, "vendorCode", o.VendorCode)
	return el
}

func simplifiedOfferFromXML(el *xmltree.Element) (Offer, error) {
	return NewSimplifiedOffer(SimplifiedOfferParams{
		OfferParams: offerParamsFromXML(el),
		Name:        childText(el, "name"),
		Vendor:      childText(el, "vendor"),
		VendorCode:  childText(el, "vendorCode"),
	})
}

// ArbitraryOffer is the vendor.model kind for arbitrary goods.
type ArbitraryOffer struct {
	offerBase
	Model      string
	Vendor     string
	TypePrefix string
}

type ArbitraryOfferParams struct {
	OfferParams
	Model      string
	Vendor     string
	TypePrefix string
}

func NewArbitraryOffer(p ArbitraryOfferParams) (*ArbitraryOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Model == "" {
		return nil, errRequired("model")
	}
	if p.Vendor == "" {
		return nil, errRequired("vendor")
	}
	return &ArbitraryOffer{offerBase: base, Model: p.Model, Vendor: p.Vendor, TypePrefix: p.TypePrefix}, nil
}

func (o *ArbitraryOffer) OfferType() string { return TypeVendorModel }

func (o *ArbitraryOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("model", o.Model)
	d.Set("vendor", o.Vendor)
	d.Set("typePrefix", strOrNil(o.TypePrefix))
	return d
}

func (o *ArbitraryOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "typePrefix", o.TypePrefix)
	appendTextChild(el, "vendor", o.Vendor)
	appendTextChild(el, "model", o.Model)
	return el
}

func arbitraryOfferFromXML(el *xmltree.Element) (Offer, error) {
	return NewArbitraryOffer(ArbitraryOfferParams{
		OfferParams: offerParamsFromXML(el),
		Model:       childText(el, "model"),
		Vendor:      childText(el, "vendor"),
		TypePrefix:  childText(el, "typePrefix"),
	})
}

// BookOffer is the book kind for paper books.
type BookOffer struct {
	offerBase
	Name       string
	Publisher  string
	Author     string
	ISBN       string
	Year       string
	Volume     string
	Part       string
	Language   string
	Binding    string
	PageExtent int
}

type BookOfferParams struct {
	OfferParams
	Name       string
	Publisher  string
	Author     string
	ISBN       string
	Year       string
	Volume     string
	Part       string
	Language   string
	Binding    string
	PageExtent int
}

func NewBookOffer(p BookOfferParams) (*BookOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errRequired("name")
	}
	if p.Publisher == "" {
		return nil, errRequired("publisher")
	}
	if p.PageExtent < 0 {
		return nil, errNotInt("page_extent", p.PageExtent)
	}
	return &BookOffer{
		offerBase:  base,
		Name:       p.Name,
		Publisher:  p.Publisher,
		Author:     p.Author,
		ISBN:       p.ISBN,
		Year:       p.Year,
		Volume:     p.Volume,
		Part:       p.Part,
		Language:   p.Language,
		Binding:    p.Binding,
		PageExtent: p.PageExtent,
	}, nil
}

func (o *BookOffer) OfferType() string { return TypeBook }

func (o *BookOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("name", o.Name)
	d.Set("publisher", o.Publisher)
	d.Set("author", strOrNil(o.Author))
	d.Set("ISBN", strOrNil(o.ISBN))
	d.Set("year", strOrNil(o.Year))
	d.Set("volume", strOrNil(o.Volume))
	d.Set("part", strOrNil(o.Part))
	d.Set("language", strOrNil(o.Language))
	d.Set("binding", strOrNil(o.Binding))
	if o.PageExtent > 0 {
		d.Set("page_extent", o.PageExtent)
	} else {
		d.Set("page_extent", nil)
	}
	return d
}

func (o *BookOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "name", o.Name)
	appendTextChild(el, "author", o.Author)
	appendTextChild(el, "publisher", o.Publisher)
	appendTextChild(el, "ISBN", o.ISBN)
	appendTextChild(el, "year", o.Year)
	appendTextChild(el, "volume", o.Volume)
	appendTextChild(el, "part", o.Part)
	appendTextChild(el, "language", o.Language)
	appendTextChild(el, "binding", o.Binding)
	if o.PageExtent > 0 {
		appendTextChild(el, "page_extent", strconv.Itoa(o.PageExtent))
	}
	return el
}

func bookOfferFromXML(el *xmltree.Element) (Offer, error) {
	pageExtent := 0
	if raw := childText(el, "page_extent"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, errNotInt("page_extent", raw)
		}
		pageExtent = n
	}
	return NewBookOffer(BookOfferParams{
		OfferParams: offerParamsFromXML(el),
		Name:        childText(el, "name"),
		Publisher:   childText(el, "publisher"),
		Author:      childText(el, "author"),
		ISBN:        childText(el, "ISBN"),
		Year:        childText(el, "year"),
		Volume:      childText(el, "volume"),
		Part:        childText(el, "part"),
		Language:    childText(el, "language"),
		Binding:     childText(el, "binding"),
		PageExtent:  pageExtent,
	})
}

// AudioBookOffer is the audiobook kind.
type AudioBookOffer struct {
	offerBase
	Name            string
	Publisher       string
	Author          string
	ISBN            string
	PerformedBy     string
	PerformanceType string
	Storage         string
	Format          string
	RecordingLength string
}

type AudioBookOfferParams struct {
	OfferParams
	Name            string
	Publisher       string
	Author          string
	ISBN            string
	PerformedBy     string
	PerformanceType string
	Storage         string
	Format          string
	RecordingLength string
}

func NewAudioBookOffer(p AudioBookOfferParams) (*AudioBookOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errRequired("name")
	}
	if p.Publisher == "" {
		return nil, errRequired("publisher")
	}
	return &AudioBookOffer{
		offerBase:       base,
		Name:            p.Name,
		Publisher:       p.Publisher,
		Author:          p.Author,
		ISBN:            p.ISBN,
		PerformedBy:     p.PerformedBy,
		PerformanceType: p.PerformanceType,
		Storage:         p.Storage,
		Format:          p.Format,
		RecordingLength: p.RecordingLength,
	}, nil
}

func (o *AudioBookOffer) OfferType() string { return TypeAudioBook }

func (o *AudioBookOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("name", o.Name)
	d.Set("publisher", o.Publisher)
	d.Set("author", strOrNil(o.Author))
	d.Set("ISBN", strOrNil(o.ISBN))
	d.Set("performed_by", strOrNil(o.PerformedBy))
	d.Set("performance_type", strOrNil(o.PerformanceType))
	d.Set("storage", strOrNil(o.Storage))
	d.Set("format", strOrNil(o.Format))
	d.Set("recording_length", strOrNil(o.RecordingLength))
	return d
}

func (o *AudioBookOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "name", o.Name)
	appendTextChild(el, "author", o.Author)
	appendTextChild(el, "publisher", o.Publisher)
	appendTextChild(el, "ISBN", o.ISBN)
	appendTextChild(el, "performed_by", o.PerformedBy)
	appendTextChild(el, "performance_type", o.PerformanceType)
	appendTextChild(el, "storage", o.Storage)
	appendTextChild(el, "format", o.Format)
	appendTextChild(el, "recording_length", o.RecordingLength)
	return el
}

func audioBookOfferFromXML(el *xmltree.Element) (Offer, error) {
	return NewAudioBookOffer(AudioBookOfferParams{
		OfferParams:     offerParamsFromXML(el),
		Name:            childText(el, "name"),
		Publisher:       childText(el, "publisher"),
		Author:          childText(el, "author"),
		ISBN:            childText(el, "ISBN"),
		PerformedBy:     childText(el, "performed_by"),
		PerformanceType: childText(el, "performance_type"),
		Storage:         childText(el, "storage"),
		Format:          childText(el, "format"),
		RecordingLength: childText(el, "recording_length"),
	})
}

// MusicVideoOffer is the artist.title kind for music and video.
type MusicVideoOffer struct {
	offerBase
	Title        string
	Artist       string
	Year         string
	Media        string
	Starring     string
	Director     string
	OriginalName string
	Country      string
}

type MusicVideoOfferParams struct {
	OfferParams
	Title        string
	Artist       string
	Year         string
	Media        string
	Starring     string
	Director     string
	OriginalName string
	Country      string
}

func NewMusicVideoOffer(p MusicVideoOfferParams) (*MusicVideoOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Title == "" {
		return nil, errRequired("title")
	}
	return &MusicVideoOffer{
		offerBase:    base,
		Title:        p.Title,
		Artist:       p.Artist,
		Year:         p.Year,
		Media:        p.Media,
		Starring:     p.Starring,
		Director:     p.Director,
		OriginalName: p.OriginalName,
		Country:      p.Country,
	}, nil
}

func (o *MusicVideoOffer) OfferType() string { return TypeArtistTitle }

func (o *MusicVideoOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("title", o.Title)
	d.Set("artist", strOrNil(o.Artist))
	d.Set("year", strOrNil(o.Year))
	d.Set("media", strOrNil(o.Media))
	d.Set("starring", strOrNil(o.Starring))
	d.Set("director", strOrNil(o.Director))
	d.Set("originalName", strOrNil(o.OriginalName))
	d.Set("country", strOrNil(o.Country))
	return d
}

func (o *MusicVideoOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "artist", o.Artist)
	appendTextChild(el, "title", o.Title)
	appendTextChild(el, "year", o.Year)
	appendTextChild(el, "media", o.Media)
	appendTextChild(el, "starring", o.Starring)
	appendTextChild(el, "director", o.Director)
	appendTextChild(el, "originalName", o.OriginalName)
	appendTextChild(el, "country", o.Country)
	return el
}

func musicVideoOfferFromXML(el *xmltree.Element) (Offer, error) {
	return NewMusicVideoOffer(MusicVideoOfferParams{
		OfferParams:  offerParamsFromXML(el),
		Title:        childText(el, "title"),
		Artist:       childText(el, "artist"),
		Year:         childText(el, "year"),
		Media:        childText(el, "media"),
		Starring:     childText(el, "starring"),
		Director:     childText(el, "director"),
		OriginalName: childText(el, "originalName"),
		Country:      childText(el, "country"),
	})
}

// MedicineOffer is the medicine kind. Marketplace rules require such
// listings to be deliverable and picked up, so both flags are forced true
// at construction regardless of the input.
type MedicineOffer struct {
	offerBase
	Name string
}

type MedicineOfferParams struct {
	OfferParams
	Name string
}

func NewMedicineOffer(p MedicineOfferParams) (*MedicineOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errRequired("name")
	}
	t := true
	base.delivery = &t
	pickup := true
	base.pickup = &pickup
	return &MedicineOffer{offerBase: base, Name: p.Name}, nil
}

func (o *MedicineOffer) OfferType() string { return TypeMedicine }

func (o *MedicineOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("name", o.Name)
	return d
}

func (o *MedicineOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "name", o.Name)
	return el
}

func medicineOfferFromXML(el *xmltree.Element) (Offer, error) {
	return NewMedicineOffer(MedicineOfferParams{
		OfferParams: offerParamsFromXML(el),
		Name:        childText(el, "name"),
	})
}

// EventTicketOffer is the event-ticket kind. Date accepts both feed
// timestamp layouts and is stored normalized to the primary one.
type EventTicketOffer struct {
	offerBase
	Name       string
	Place      string
	Date       string
	Hall       string
	HallPart   string
	IsPremiere *bool
	IsKids     *bool
}

type EventTicketOfferParams struct {
	OfferParams
	Name       string
	Place      string
	Date       string
	Hall       string
	HallPart   string
	IsPremiere any
	IsKids     any
}

func NewEventTicketOffer(p EventTicketOfferParams) (*EventTicketOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errRequired("name")
	}
	if p.Place == "" {
		return nil, errRequired("place")
	}
	if p.Date == "" {
		return nil, errRequired("date")
	}
	date, err := datetimeWithFallback("date", p.Date, DateFormat, AltDateFormat)
	if err != nil {
		return nil, err
	}
	isPremiere, err := boolish("is_premiere", p.IsPremiere, truthyTokens, falsyTokens)
	if err != nil {
		return nil, err
	}
	isKids, err := boolish("is_kids", p.IsKids, truthyTokens, falsyTokens)
	if err != nil {
		return nil, err
	}
	return &EventTicketOffer{
		offerBase:  base,
		Name:       p.Name,
		Place:      p.Place,
		Date:       date,
		Hall:       p.Hall,
		HallPart:   p.HallPart,
		IsPremiere: isPremiere,
		IsKids:     isKids,
	}, nil
}

func (o *EventTicketOffer) OfferType() string { return TypeEventTicket }

func (o *EventTicketOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("name", o.Name)
	d.Set("place", o.Place)
	d.Set("date", o.Date)
	d.Set("hall", strOrNil(o.Hall))
	d.Set("hall_part", strOrNil(o.HallPart))
	d.Set("is_premiere", boolPtrOrNil(o.IsPremiere))
	d.Set("is_kids", boolPtrOrNil(o.IsKids))
	return d
}

func (o *EventTicketOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "name", o.Name)
	appendTextChild(el, "place", o.Place)
	appendTextChild(el, "date", o.Date)
	appendTextChild(el, "hall", o.Hall)
	appendTextChild(el, "hall_part", o.HallPart)
	appendBoolChild(el, "is_premiere", o.IsPremiere)
	appendBoolChild(el, "is_kids", o.IsKids)
	return el
}

func eventTicketOfferFromXML(el *xmltree.Element) (Offer, error) {
	p := EventTicketOfferParams{
		OfferParams: offerParamsFromXML(el),
		Name:        childText(el, "name"),
		Place:       childText(el, "place"),
		Date:        childText(el, "date"),
		Hall:        childText(el, "hall"),
		HallPart:    childText(el, "hall_part"),
	}
	if raw := childText(el, "is_premiere"); raw != "" {
		p.IsPremiere = raw
	}
	if raw := childText(el, "is_kids"); raw != "" {
		p.IsKids = raw
	}
	return NewEventTicketOffer(p)
}

// AlcoholOffer is the alco kind.
type AlcoholOffer struct {
	offerBase
	Name    string
	Vendor  string
	Barcode string
	Volume  string
}

type AlcoholOfferParams struct {
	OfferParams
	Name    string
	Vendor  string
	Barcode string
	Volume  string
}

func NewAlcoholOffer(p AlcoholOfferParams) (*AlcoholOffer, error) {
	base, err := newOfferBase(p.OfferParams)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errRequired("name")
	}
	if p.Volume != "" {
		if err := numericOrChoice("volume", p.Volume, nil); err != nil {
			return nil, err
		}
	}
	return &AlcoholOffer{offerBase: base, Name: p.Name, Vendor: p.Vendor, Barcode: p.Barcode, Volume: p.Volume}, nil
}

func (o *AlcoholOffer) OfferType() string { return TypeAlcohol }

func (o *AlcoholOffer) Dict() *Dict {
	d := o.baseDict()
	d.Set("name", o.Name)
	d.Set("vendor", strOrNil(o.Vendor))
	d.Set("barcode", strOrNil(o.Barcode))
	d.Set("volume", strOrNil(o.Volume))
	return d
}

func (o *AlcoholOffer) ToXML(parent *xmltree.Element) *xmltree.Element {
	el := o.startXML(o.OfferType(), parent)
	appendTextChild(el, "name", o.Name)
	appendTextChild(el, "vendor", o.Vendor)
	appendTextChild(el, "barcode", o.Barcode)
	appendTextChild(el, "volume", o.Volume)
	return el
}

func alcoholOfferFromXML(el *xmltree.Element) (Offer, error) {
	return NewAlcoholOffer(AlcoholOfferParams{
		OfferParams: offerParamsFromXML(el),
		Name:        childText(el, "name"),
		Vendor:      childText(el, "vendor"),
		Barcode:     childText(el, "barcode"),
		Volume:      childText(el, "volume"),
	})
}
