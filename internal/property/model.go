// Package property provides the listing view model, the normalizer that
// builds it from raw API records, and the client-side filter engine.
package property

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringNumber accepts a JSON string or number and keeps its textual form.
// The catalog API sends NUMERIC columns as strings and integers as numbers,
// not always consistently.
type StringNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = StringNumber(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = StringNumber(num.String())
	return nil
}

// Float parses the value as a float. Empty values are zero and ok.
func (s StringNumber) Float() (float64, bool) {
	v := strings.TrimSpace(string(s))
	if v == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Code is a small enum code sent either as an integer or a numeric string.
type Code StringNumber

// UnmarshalJSON implements json.Unmarshaler.
func (c *Code) UnmarshalJSON(b []byte) error {
	return (*StringNumber)(c).UnmarshalJSON(b)
}

// String returns the code in its textual form.
func (c Code) String() string {
	return strings.TrimSpace(string(c))
}

// Int returns the code as an integer when it is one.
func (c Code) Int() (int, bool) {
	n, err := strconv.Atoi(c.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// ImageRef is one image descriptor of a raw record.
type ImageRef struct {
	URL string `json:"url"`
}

// RawRecord is a property as served by the catalog API.
type RawRecord struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	SaleValue        StringNumber `json:"sale_value"`
	Images           []ImageRef   `json:"images,omitempty"`
	Bedrooms         StringNumber `json:"bedrooms"`
	Bathrooms        StringNumber `json:"bathrooms"`
	ConstructionSize StringNumber `json:"construction_size"`
	Description      string       `json:"description"`
	Features         []string     `json:"features,omitempty"`
	State            string       `json:"state"`
	Municipality     string       `json:"municipality"`
	Colony           string       `json:"colony"`
	Street           string       `json:"street"`
	PostalCode       StringNumber `json:"postal_code"`
	PropertyTypeID   Code         `json:"property_type_id"`
	SaleTypeID       Code         `json:"sale_type_id"`
	LegalStatusID    Code         `json:"legal_status_id"`
	CommercialValue  StringNumber `json:"commercial_value"`
	LandSize         StringNumber `json:"land_size"`
	HasGarden        *bool        `json:"has_garden,omitempty"`
	HasStudy         *bool        `json:"has_study,omitempty"`
	HasServiceRoom   *bool        `json:"has_service_room,omitempty"`
	IsCondominium    *bool        `json:"is_condominium,omitempty"`
	SaleStatus       string       `json:"sale_status"`
}

// StatusAvailable is the sale status of publicly listed properties.
const StatusAvailable = "disponible"

// Available reports whether the record may appear in public listings.
func (r RawRecord) Available() bool {
	return r.SaleStatus == StatusAvailable
}

// Enum is a coded field. Until it is resolved only Code is set; a resolved
// enum also carries its Spanish label and the dictionary key of that label.
type Enum struct {
	Code  Code
	Label string
	Key   string
}

// Resolved reports whether the enum carries a label.
func (e Enum) Resolved() bool {
	return e.Label != ""
}

// String returns the label, or the raw code when unresolved.
func (e Enum) String() string {
	if e.Resolved() {
		return e.Label
	}
	return e.Code.String()
}

// MarshalJSON writes the label when resolved, otherwise the code as a number
// (or a string when the code is not an integer).
func (e Enum) MarshalJSON() ([]byte, error) {
	if e.Resolved() {
		return json.Marshal(e.Label)
	}
	if n, ok := e.Code.Int(); ok {
		return json.Marshal(n)
	}
	return json.Marshal(e.Code.String())
}

// Property is the canonical view model every page renders from.
// It is built fresh per fetch and never modified afterwards.
type Property struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Price            string   `json:"price"`
	Image            string   `json:"image"`
	Images           []string `json:"images"`
	Beds             float64  `json:"beds"`
	Baths            float64  `json:"baths"`
	Sqft             float64  `json:"sqft"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
	Location         string   `json:"location"`
	PropertyType     Enum     `json:"propertyType"`
	SaleType         Enum     `json:"saleType"`
	LegalStatus      Enum     `json:"legalStatus"`
	CommercialValue  string   `json:"commercialValue"`
	State            string   `json:"state"`
	Municipality     string   `json:"municipality"`
	Colony           string   `json:"colony"`
	Street           string   `json:"street"`
	PostalCode       string   `json:"postalCode"`
	LandSize         float64  `json:"landSize"`
	ConstructionSize float64  `json:"constructionSize"`
	HasGarden        bool     `json:"hasGarden"`
	HasStudy         bool     `json:"hasStudy"`
	HasServiceRoom   bool     `json:"hasServiceRoom"`
	HasCondominium   bool     `json:"hasCondominium"`
	SaleStatus       string   `json:"sale_status"`
}
