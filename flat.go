package homes

// FlatFields is the output schema of a FlatListing, in column order.
// Essential info "Status" is extracted but deliberately not part of it.
var FlatFields = []string{
	"url",
	"address",
	"subdivision",
	"postalCode",
	"price",
	"bedrooms",
	"bathrooms",
	"fullBaths",
	"halfBaths",
	"squareFootage",
	"lotSqft",
	"yearBuilt",
	"type",
	"subType",
	"style",
	"parkingSpaces",
	"parking",
	"numGarages",
}

// FlatListing is the fixed-schema output record of one listing.
// Values are the raw trimmed page strings; nil means not found.
type FlatListing struct {
	URL           string  `json:"url"`
	Address       *string `json:"address"`
	Subdivision   *string `json:"subdivision"`
	PostalCode    *string `json:"postalCode"`
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
	ParkingSpaces *string `json:"parkingSpaces"`
	Parking       *string `json:"parking"`
	NumGarages    *string `json:"numGarages"`
}

// Project flattens a listing into its output record. Values are copied
// by reference without parsing or validation.
func Project(l *Listing) FlatListing {
	return FlatListing{
		URL:           l.URL,
		Address:       l.Community.Address,
		Subdivision:   l.Community.Subdivision,
		PostalCode:    l.Community.PostalCode,
		Price:         l.Essential.Price,
		Bedrooms:      l.Essential.Bedrooms,
		Bathrooms:     l.Essential.Bathrooms,
		FullBaths:     l.Essential.FullBaths,
		HalfBaths:     l.Essential.HalfBaths,
		SquareFootage: l.Essential.SquareFootage,
		LotSqft:       l.Essential.LotSqft,
		YearBuilt:     l.Essential.YearBuilt,
		Type:          l.Essential.Type,
		SubType:       l.Essential.SubType,
		Style:         l.Essential.Style,
		ParkingSpaces: l.Amenities.ParkingSpaces,
		Parking:       l.Amenities.Parking,
		NumGarages:    l.Amenities.NumGarages,
	}
}

// ProjectAll flattens listings in order.
func ProjectAll(listings []*Listing) []FlatListing {
	flat := make([]FlatListing, 0, len(listings))
	for _, l := range listings {
		flat = append(flat, Project(l))
	}
	return flat
}

// Values returns the record's values in FlatFields order.
// The first value is the URL and is never nil.
func (f FlatListing) Values() []*string {
	url := f.URL
	return []*string{
		&url,
		f.Address,
		f.Subdivision,
		f.PostalCode,
		f.Price,
		f.Bedrooms,
		f.Bathrooms,
		f.FullBaths,
		f.HalfBaths,
		f.SquareFootage,
		f.LotSqft,
		f.YearBuilt,
		f.Type,
		f.SubType,
		f.Style,
		f.ParkingSpaces,
		f.Parking,
		f.NumGarages,
	}
}
