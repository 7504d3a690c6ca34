package property

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Filter holds the user's filter choices. The zero value matches everything;
// nil or zero numeric bounds and false flags are unset.
type Filter struct {
	Search          string   `json:"search,omitempty"`
	Bedrooms        *int     `json:"bedrooms,omitempty"`
	Bathrooms       *int     `json:"bathrooms,omitempty"`
	MinConstruction *float64 `json:"minConstruction,omitempty"`
	MaxConstruction *float64 `json:"maxConstruction,omitempty"`
	MinLand         *float64 `json:"minLand,omitempty"`
	MaxLand         *float64 `json:"maxLand,omitempty"`
	HasGarden       bool     `json:"hasGarden,omitempty"`
	HasStudy        bool     `json:"hasStudy,omitempty"`
	HasServiceRoom  bool     `json:"hasServiceRoom,omitempty"`
	HasCondominium  bool     `json:"hasCondominium,omitempty"`
}

// Apply returns the properties that satisfy every active predicate of f,
// in their original order. It only sees the page it is given.
func Apply(props []*Property, f Filter) []*Property {
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(f.Search))

	out := make([]*Property, 0, len(props))
	for _, p := range props {
		if search != "" &&
			!strings.Contains(fold.String(p.Title), search) &&
			!strings.Contains(strconv.FormatInt(p.ID, 10), search) {
			continue
		}
		if set(f.Bedrooms) && p.Beds < float64(*f.Bedrooms) {
			continue
		}
		if set(f.Bathrooms) && p.Baths < float64(*f.Bathrooms) {
			continue
		}
		if !within(p.ConstructionSize, f.MinConstruction, f.MaxConstruction) {
			continue
		}
		if !within(p.LandSize, f.MinLand, f.MaxLand) {
			continue
		}
		if (f.HasGarden && !p.HasGarden) ||
			(f.HasStudy && !p.HasStudy) ||
			(f.HasServiceRoom && !p.HasServiceRoom) ||
			(f.HasCondominium && !p.HasCondominium) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func set[T int | float64](v *T) bool {
	return v != nil && *v != 0
}

func within(v float64, lo, hi *float64) bool {
	if set(lo) && v < *lo {
		return false
	}
	if set(hi) && v > *hi {
		return false
	}
	return true
}

// Active returns how many predicates are in effect.
func (f Filter) Active() int {
	n := 0
	if strings.TrimSpace(f.Search) != "" {
		n++
	}
	for _, on := range []bool{
		set(f.Bedrooms), set(f.Bathrooms),
		set(f.MinConstruction), set(f.MaxConstruction),
		set(f.MinLand), set(f.MaxLand),
		f.HasGarden, f.HasStudy, f.HasServiceRoom, f.HasCondominium,
	} {
		if on {
			n++
		}
	}
	return n
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f.Active() == 0
}

// Query parameter names shared by the web form, the JSON API and Values.
const (
	ParamSearch          = "search"
	ParamBedrooms        = "bedrooms"
	ParamBathrooms       = "bathrooms"
	ParamMinConstruction = "minConstruction"
	ParamMaxConstruction = "maxConstruction"
	ParamMinLand         = "minLand"
	ParamMaxLand         = "maxLand"
	ParamGarden          = "hasGarden"
	ParamStudy           = "hasStudy"
	ParamServiceRoom     = "hasServiceRoom"
	ParamCondominium     = "hasCondominium"
)

// ParseFilter reads a filter from query or form values. Malformed numbers
// and non-positive bounds are ignored.
func ParseFilter(v url.Values) Filter {
	return Filter{
		Search:          strings.TrimSpace(v.Get(ParamSearch)),
		Bedrooms:        parseInt(v.Get(ParamBedrooms)),
		Bathrooms:       parseInt(v.Get(ParamBathrooms)),
		MinConstruction: parseFloat(v.Get(ParamMinConstruction)),
		MaxConstruction: parseFloat(v.Get(ParamMaxConstruction)),
		MinLand:         parseFloat(v.Get(ParamMinLand)),
		MaxLand:         parseFloat(v.Get(ParamMaxLand)),
		HasGarden:       parseBool(v.Get(ParamGarden)),
		HasStudy:        parseBool(v.Get(ParamStudy)),
		HasServiceRoom:  parseBool(v.Get(ParamServiceRoom)),
		HasCondominium:  parseBool(v.Get(ParamCondominium)),
	}
}

// Values encodes the active predicates so links can carry them.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(f.Search); s != "" {
		v.Set(ParamSearch, s)
	}
	if set(f.Bedrooms) {
		v.Set(ParamBedrooms, strconv.Itoa(*f.Bedrooms))
	}
	if set(f.Bathrooms) {
		v.Set(ParamBathrooms, strconv.Itoa(*f.Bathrooms))
	}
	setFloat(v, ParamMinConstruction, f.MinConstruction)
	setFloat(v, ParamMaxConstruction, f.MaxConstruction)
	setFloat(v, ParamMinLand, f.MinLand)
	setFloat(v, ParamMaxLand, f.MaxLand)
	setBool(v, ParamGarden, f.HasGarden)
	setBool(v, ParamStudy, f.HasStudy)
	setBool(v, ParamServiceRoom, f.HasServiceRoom)
	setBool(v, ParamCondominium, f.HasCondominium)
	return v
}

func parseInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func parseFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return nil
	}
	return &f
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func setFloat(v url.Values, key string, f *float64) {
	if set(f) {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}

func setBool(v url.Values, key string, b bool) {
	if b {
		v.Set(key, "1")
	}
}
