package property

import (
	"net/url"
	"reflect"
	"testing"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func ids(props []*Property) []int64 {
	out := make([]int64, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func sampleProperties() []*Property {
	return []*Property{
		{ID: 101, Title: "Casa en Lomas", Beds: 1, Baths: 1, ConstructionSize: 80, LandSize: 100},
		{ID: 102, Title: "Departamento Centro", Beds: 2, Baths: 1, ConstructionSize: 120, LandSize: 0, HasCondominium: true},
		{ID: 203, Title: "CASA con jardín", Beds: 3, Baths: 2, ConstructionSize: 200, LandSize: 300, HasGarden: true},
		{ID: 204, Title: "Residencia", Beds: 4, Baths: 3, ConstructionSize: 350, LandSize: 500, HasGarden: true, HasStudy: true},
		{ID: 305, Title: "Casa grande", Beds: 5, Baths: 4, ConstructionSize: 420, LandSize: 800, HasGarden: true, HasStudy: true, HasServiceRoom: true},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"zero filter", Filter{}, []int64{101, 102, 203, 204, 305}},
		{"search title case-insensitive", Filter{Search: "casa"}, []int64{101, 203, 305}},
		{"search id substring", Filter{Search: "20"}, []int64{203, 204}},
		{"search trims", Filter{Search: "  residencia "}, []int64{204}},
		{"bedrooms lower bound", Filter{Bedrooms: intPtr(3)}, []int64{203, 204, 305}},
		{"bathrooms lower bound", Filter{Bathrooms: intPtr(3)}, []int64{204, 305}},
		{"zero bedrooms unset", Filter{Bedrooms: intPtr(0)}, []int64{101, 102, 203, 204, 305}},
		{"construction min", Filter{MinConstruction: floatPtr(200)}, []int64{203, 204, 305}},
		{"construction max", Filter{MaxConstruction: floatPtr(200)}, []int64{101, 102, 203}},
		{"construction range", Filter{MinConstruction: floatPtr(100), MaxConstruction: floatPtr(350)}, []int64{102, 203, 204}},
		{"land range", Filter{MinLand: floatPtr(200), MaxLand: floatPtr(600)}, []int64{203, 204}},
		{"garden", Filter{HasGarden: true}, []int64{203, 204, 305}},
		{"garden and study", Filter{HasGarden: true, HasStudy: true}, []int64{204, 305}},
		{"service room", Filter{HasServiceRoom: true}, []int64{305}},
		{"condominium", Filter{HasCondominium: true}, []int64{102}},
		{"conjunction", Filter{Search: "casa", Bedrooms: intPtr(3), HasStudy: true}, []int64{305}},
		{"no match", Filter{Search: "oficina"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(sampleProperties(), tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyBedroomsExact(t *testing.T) {
	got := Apply(sampleProperties(), Filter{Bedrooms: intPtr(3)})
	for _, p := range got {
		if p.Beds < 3 {
			t.Errorf("property %d has %v beds, want >= 3", p.ID, p.Beds)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d properties, want 3", len(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	filters := []Filter{
		{},
		{Search: "casa"},
		{Bedrooms: intPtr(2), HasGarden: true},
		{MinLand: floatPtr(100), MaxLand: floatPtr(500)},
	}
	for _, f := range filters {
		once := Apply(sampleProperties(), f)
		twice := Apply(once, f)
		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Errorf("filter %+v not idempotent: %v vs %v", f, ids(once), ids(twice))
		}
	}
}

func TestApplyIdentity(t *testing.T) {
	props := sampleProperties()
	got := Apply(props, Filter{})
	if len(got) != len(props) {
		t.Fatalf("got %d, want %d", len(got), len(props))
	}
	for i := range props {
		if got[i] != props[i] {
			t.Errorf("index %d: got %p, want %p", i, got[i], props[i])
		}
	}
}

func TestFilterActive(t *testing.T) {
	if n := (Filter{}).Active(); n != 0 {
		t.Errorf("zero filter Active() = %d", n)
	}
	if !(Filter{Bedrooms: intPtr(0)}).IsZero() {
		t.Error("zero bedroom bound should count as unset")
	}
	f := Filter{Search: "x", Bedrooms: intPtr(2), MaxLand: floatPtr(10), HasStudy: true}
	if n := f.Active(); n != 4 {
		t.Errorf("Active() = %d, want 4", n)
	}
}

func TestParseFilter(t *testing.T) {
	v := url.Values{}
	v.Set("search", " casa ")
	v.Set("bedrooms", "3")
	v.Set("bathrooms", "abc")
	v.Set("minConstruction", "120.5")
	v.Set("maxLand", "-1")
	v.Set("hasGarden", "on")
	v.Set("hasStudy", "false")

	f := ParseFilter(v)
	if f.Search != "casa" {
		t.Errorf("Search = %q", f.Search)
	}
	if f.Bedrooms == nil || *f.Bedrooms != 3 {
		t.Errorf("Bedrooms = %v, want 3", f.Bedrooms)
	}
	if f.Bathrooms != nil {
		t.Errorf("Bathrooms = %v, want nil", *f.Bathrooms)
	}
	if f.MinConstruction == nil || *f.MinConstruction != 120.5 {
		t.Errorf("MinConstruction = %v", f.MinConstruction)
	}
	if f.MaxLand != nil {
		t.Error("negative bound should be ignored")
	}
	if !f.HasGarden || f.HasStudy {
		t.Errorf("flags = %v %v", f.HasGarden, f.HasStudy)
	}
}

func TestFilterValuesRoundTrip(t *testing.T) {
	f := Filter{
		Search:          "lomas",
		Bedrooms:        intPtr(2),
		MinConstruction: floatPtr(90.5),
		MaxLand:         floatPtr(400),
		HasCondominium:  true,
	}
	got := ParseFilter(f.Values())
	if !reflect.DeepEqual(got, f) {
		t.Errorf("round trip = %+v, want %+v", got, f)
	}
	if len((Filter{}).Values()) != 0 {
		t.Error("zero filter should encode to no values")
	}
}
