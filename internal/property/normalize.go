package property

import (
	"fmt"
	"log/slog"
	"strings"
)

// EnumPolicy selects when coded fields get their labels.
type EnumPolicy int

const (
	// EnumRaw keeps the numeric code; presentation resolves it later.
	EnumRaw EnumPolicy = iota
	// EnumResolve looks the label up while normalizing.
	EnumResolve
)

// LocationStyle selects how the location line is composed.
type LocationStyle int

const (
	// LocationList renders "colony, municipality, state" for cards.
	LocationList LocationStyle = iota
	// LocationDetail renders "street, CP postal_code" for the detail page.
	LocationDetail
)

// Options controls normalization.
type Options struct {
	Enums    EnumPolicy
	Location LocationStyle
}

// ListOptions is used for listing pages.
var ListOptions = Options{Enums: EnumRaw, Location: LocationList}

// DetailOptions is used for the detail page.
var DetailOptions = Options{Enums: EnumResolve, Location: LocationDetail}

// Normalize builds a Property from a raw API record.
// Amounts that fail to parse are shown as NaNPrice and logged.
func Normalize(raw RawRecord, opts Options) *Property {
	p := &Property{
		ID:             raw.ID,
		Title:          raw.Title,
		Description:    raw.Description,
		State:          raw.State,
		Municipality:   raw.Municipality,
		Colony:         raw.Colony,
		Street:         raw.Street,
		PostalCode:     strings.TrimSpace(string(raw.PostalCode)),
		HasGarden:      flag(raw.HasGarden),
		HasStudy:       flag(raw.HasStudy),
		HasServiceRoom: flag(raw.HasServiceRoom),
		HasCondominium: flag(raw.IsCondominium),
		SaleStatus:     raw.SaleStatus,
	}

	p.Price = amount(raw.ID, "sale_value", raw.SaleValue)
	p.CommercialValue = amount(raw.ID, "commercial_value", raw.CommercialValue)

	p.Images = make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		p.Images = append(p.Images, img.URL)
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}

	p.Features = make([]string, 0, len(raw.Features))
	p.Features = append(p.Features, raw.Features...)

	p.Beds = measure(raw.ID, "bedrooms", raw.Bedrooms)
	p.Baths = measure(raw.ID, "bathrooms", raw.Bathrooms)
	p.ConstructionSize = measure(raw.ID, "construction_size", raw.ConstructionSize)
	p.Sqft = p.ConstructionSize
	p.LandSize = measure(raw.ID, "land_size", raw.LandSize)

	switch opts.Location {
	case LocationDetail:
		p.Location = fmt.Sprintf("%s, CP %s", raw.Street, p.PostalCode)
	default:
		p.Location = fmt.Sprintf("%s, %s, %s", raw.Colony, raw.Municipality, raw.State)
	}

	switch opts.Enums {
	case EnumResolve:
		p.PropertyType = ResolvePropertyType(raw.PropertyTypeID)
		p.SaleType = ResolveSaleType(raw.SaleTypeID)
		p.LegalStatus = ResolveLegalStatus(raw.LegalStatusID)
	default:
		p.PropertyType = Enum{Code: raw.PropertyTypeID}
		p.SaleType = Enum{Code: raw.SaleTypeID}
		p.LegalStatus = Enum{Code: raw.LegalStatusID}
	}

	return p
}

// NormalizeAll normalizes records in order.
func NormalizeAll(raws []RawRecord, opts Options) []*Property {
	out := make([]*Property, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r, opts))
	}
	return out
}

func flag(b *bool) bool {
	return b != nil && *b
}

func amount(id int64, field string, v StringNumber) string {
	s, err := FormatCurrency(string(v))
	if err != nil {
		slog.Warn("unparseable amount", "id", id, "field", field, "value", string(v))
	}
	return s
}

// measure parses a count or area; negative and invalid values become zero.
func measure(id int64, field string, v StringNumber) float64 {
	f, ok := v.Float()
	if !ok {
		slog.Warn("unparseable number", "id", id, "field", field, "value", string(v))
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}
