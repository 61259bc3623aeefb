package homes

import (
	"context"
	"slices"
)

// Section identifies which field group of the listing-body dataset
// subsequent labels and values belong to.
type Section int

// Section constants.
const (
	SectionNone Section = iota
	SectionEssential
	SectionCommunity
	SectionAmenities
)

// Section heading titles as printed on the listing page.
const (
	TitleEssential = "Essential Information"
	TitleCommunity = "Community Information"
	TitleAmenities = "Amenities"
)

// SectionFromTitle returns the section for a heading title.
// The match is exact; anything else is SectionNone.
func SectionFromTitle(title string) Section {
	switch title {
	case TitleEssential:
		return SectionEssential
	case TitleCommunity:
		return SectionCommunity
	case TitleAmenities:
		return SectionAmenities
	default:
		return SectionNone
	}
}

// String returns the heading title of the section.
func (s Section) String() string {
	switch s {
	case SectionEssential:
		return TitleEssential
	case SectionCommunity:
		return TitleCommunity
	case SectionAmenities:
		return TitleAmenities
	default:
		return "(none)"
	}
}

// Field labels as printed on the listing page.
const (
	LabelPrice         = "Price"
	LabelBedrooms      = "Bedrooms"
	LabelBathrooms     = "Bathrooms"
	LabelFullBaths     = "Full Baths"
	LabelHalfBaths     = "Half Baths"
	LabelSquareFootage = "Square Footage"
	LabelLotSqft       = "Lot SQFT"
	LabelYearBuilt     = "Year Built"
	LabelType          = "Type"
	LabelSubType       = "Sub-Type"
	LabelStyle         = "Style"
	LabelStatus        = "Status"

	LabelAddress     = "Address"
	LabelSubdivision = "Subdivision"
	LabelCity        = "City"
	LabelProvince    = "Province"
	LabelPostalCode  = "Postal Code"

	LabelParkingSpaces = "Parking Spaces"
	LabelParking       = "Parking"
	LabelNumGarages    = "# of Garages"
)

// FieldGroup is a group of listing fields with a fixed set of labels.
// Labels outside the set are never stored.
type FieldGroup interface {
	// HasLabel reports whether label is one of the group's declared labels.
	HasLabel(label string) bool

	// Set stores value under label. Returns false, storing nothing,
	// if label is not declared by the group.
	Set(label, value string) bool

	// Get returns the value stored under label, or nil.
	Get(label string) *string

	// Labels returns the declared labels in page order.
	Labels() []string
}

var (
	_ FieldGroup = (*EssentialInfo)(nil)
	_ FieldGroup = (*CommunityInfo)(nil)
	_ FieldGroup = (*Amenities)(nil)
)

// EssentialInfo holds the "Essential Information" section of a listing.
// A nil field means its label never appeared on the page.
type EssentialInfo struct {
	Price         *string `json:"price"`
	Bedrooms      *string `json:"bedrooms"`
	Bathrooms     *string `json:"bathrooms"`
	FullBaths     *string `json:"fullBaths"`
	HalfBaths     *string `json:"halfBaths"`
	SquareFootage *string `json:"squareFootage"`
	LotSqft       *string `json:"lotSqft"`
	YearBuilt     *string `json:"yearBuilt"`
	Type          *string `json:"type"`
	SubType       *string `json:"subType"`
	Style         *string `json:"style"`
	Status        *string `json:"status"`
}

var essentialLabels = []string{
	LabelPrice, LabelBedrooms, LabelBathrooms, LabelFullBaths, LabelHalfBaths,
	LabelSquareFootage, LabelLotSqft, LabelYearBuilt, LabelType, LabelSubType,
	LabelStyle, LabelStatus,
}

func (e *EssentialInfo) field(label string) **string {
	switch label {
	case LabelPrice:
		return &e.Price
	case LabelBedrooms:
		return &e.Bedrooms
	case LabelBathrooms:
		return &e.Bathrooms
	case LabelFullBaths:
		return &e.FullBaths
	case LabelHalfBaths:
		return &e.HalfBaths
	case LabelSquareFootage:
		return &e.SquareFootage
	case LabelLotSqft:
		return &e.LotSqft
	case LabelYearBuilt:
		return &e.YearBuilt
	case LabelType:
		return &e.Type
	case LabelSubType:
		return &e.SubType
	case LabelStyle:
		return &e.Style
	case LabelStatus:
		return &e.Status
	}
	return nil
}

func (e *EssentialInfo) HasLabel(label string) bool { return e.field(label) != nil }
func (e *EssentialInfo) Set(label, value string) bool { return set(e.field(label), value) }
func (e *EssentialInfo) Get(label string) *string { return get(e.field(label)) }
func (e *EssentialInfo) Labels() []string { return slices.Clone(essentialLabels) }

// CommunityInfo holds the "Community Information" section of a listing.
type CommunityInfo struct {
	Address     *string `json:"address"`
	Subdivision *string `json:"subdivision"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postalCode"`
}

var communityLabels = []string{
	LabelAddress, LabelSubdivision, LabelCity, LabelProvince, LabelPostalCode,
}

func (c *CommunityInfo) field(label string) **string {
	switch label {
	case LabelAddress:
		return &c.Address
	case LabelSubdivision:
		return &c.Subdivision
	case LabelCity:
		return &c.City
	case LabelProvince:
		return &c.Province
	case LabelPostalCode:
		return &c.PostalCode
	}
	return nil
}

func (c *CommunityInfo) HasLabel(label string) bool { return c.field(label) != nil }
func (c *CommunityInfo) Set(label, value string) bool { return set(c.field(label), value) }
func (c *CommunityInfo) Get(label string) *string { return get(c.field(label)) }
func (c *CommunityInfo) Labels() []string { return slices.Clone(communityLabels) }

// Amenities holds the "Amenities" section of a listing.
type Amenities struct {
	ParkingSpaces *string `json:"parkingSpaces"`
	Parking       *string `json:"parking"`
	NumGarages    *string `json:"numGarages"`
}

var amenityLabels = []string{
	LabelParkingSpaces, LabelParking, LabelNumGarages,
}

func (a *Amenities) field(label string) **string {
	switch label {
	case LabelParkingSpaces:
		return &a.ParkingSpaces
	case LabelParking:
		return &a.Parking
	case LabelNumGarages:
		return &a.NumGarages
	}
	return nil
}

func (a *Amenities) HasLabel(label string) bool { return a.field(label) != nil }
func (a *Amenities) Set(label, value string) bool { return set(a.field(label), value) }
func (a *Amenities) Get(label string) *string { return get(a.field(label)) }
func (a *Amenities) Labels() []string { return slices.Clone(amenityLabels) }

func set(field **string, value string) bool {
	if field == nil {
		return false
	}
	*field = &value
	return true
}

func get(field **string) *string {
	if field == nil {
		return nil
	}
	return *field
}

// Listing is the attributes extracted from one listing page.
type Listing struct {
	URL       string        `json:"url"`
	Essential EssentialInfo `json:"essentialInfo"`
	Community CommunityInfo `json:"communityInfo"`
	Amenities Amenities     `json:"amenities"`
}

// NewListing returns an empty listing for the page at url.
func NewListing(url string) *Listing {
	return &Listing{URL: url}
}

// Group returns the field group for a section, or nil for SectionNone.
func (l *Listing) Group(s Section) FieldGroup {
	switch s {
	case SectionEssential:
		return &l.Essential
	case SectionCommunity:
		return &l.Community
	case SectionAmenities:
		return &l.Amenities
	default:
		return nil
	}
}

// FieldCount returns the number of fields found across all groups.
func (l *Listing) FieldCount() int {
	n := 0
	for _, s := range []Section{SectionEssential, SectionCommunity, SectionAmenities} {
		g := l.Group(s)
		for _, label := range g.Labels() {
			if g.Get(label) != nil {
				n++
			}
		}
	}
	return n
}

// ListingExtractor builds a Listing from the markup of a listing page.
type ListingExtractor interface {
	// Extract streams through markup and returns the listing found in it.
	// Unrecognized markup is ignored; a page without a listing-body
	// dataset yields a listing with only the URL set.
	Extract(url, markup string) (*Listing, error)
}

// ListingProbe reports whether markup follows the listing page template.
type ListingProbe interface {
	HasListingBlock(markup string) bool

	// Headings returns the section headings inside the listing block.
	Headings(markup string) []string
}

// ListingWriter writes flattened listings to an output format.
type ListingWriter interface {
	WriteListings(ctx context.Context, listings []FlatListing) error
}
