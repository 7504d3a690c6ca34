package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/cnk-ceneka/cnk/internal/catalog"
	"github.com/cnk-ceneka/cnk/internal/property"
)

type fakeSource struct {
	resp  *catalog.ListResponse
	err   error
	calls []call
}

type call struct{ page, limit int }

func (f *fakeSource) ListProperties(_ context.Context, page, limit int) (*catalog.ListResponse, error) {
	f.calls = append(f.calls, call{page, limit})
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func intPtr(n int) *int { return &n }

func records() []property.RawRecord {
	return []property.RawRecord{
		{ID: 1, Title: "Casa", SaleValue: "1500000", SaleStatus: "disponible", PropertyTypeID: "1",
			Colony: "Centro", Municipality: "Puebla", State: "Puebla", Street: "Av. Juárez 10", PostalCode: "72000"},
		{ID: 2, Title: "Vendida", SaleValue: "900000", SaleStatus: "vendida"},
		{ID: 3, Title: "Depto", SaleValue: "abc", SaleStatus: "disponible", PropertyTypeID: "9"},
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{19, 9, 3},
		{18, 9, 2},
		{1, 9, 1},
		{0, 9, 1},
		{-5, 9, 1},
		{10, 0, 1},
		{100, 10, 10},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{0, 3, 1},
		{-2, 3, 1},
		{2, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestParseVariant(t *testing.T) {
	if v, err := ParseVariant(""); err != nil || v != VariantAvailable {
		t.Errorf("ParseVariant(\"\") = %q, %v", v, err)
	}
	if v, err := ParseVariant("all"); err != nil || v != VariantAll {
		t.Errorf("ParseVariant(all) = %q, %v", v, err)
	}
	if _, err := ParseVariant("sold"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestFetchAvailable(t *testing.T) {
	src := &fakeSource{resp: &catalog.ListResponse{
		Data:       records(),
		Pagination: catalog.Pagination{Total: 19, Pages: intPtr(7)},
	}}

	page, err := NewFetcher(src, VariantAvailable).Fetch(context.Background(), 2, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(src.calls) != 1 || src.calls[0] != (call{2, 9}) {
		t.Errorf("calls = %v", src.calls)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3 (pages field ignored)", page.TotalPages)
	}
	if page.Number != 2 || page.Size != 9 || page.Total != 19 {
		t.Errorf("page = %+v", page)
	}
	if len(page.Properties) != 2 {
		t.Fatalf("got %d properties, want 2 available", len(page.Properties))
	}

	p := page.Properties[0]
	if p.Location != "Centro, Puebla, Puebla" {
		t.Errorf("Location = %q", p.Location)
	}
	if p.Price != "$1,500,000" {
		t.Errorf("Price = %q", p.Price)
	}
	if p.PropertyType.Resolved() {
		t.Error("list view must not resolve enums")
	}
	if page.Properties[1].Price != property.NaNPrice {
		t.Errorf("bad price = %q, want %q", page.Properties[1].Price, property.NaNPrice)
	}
}

func TestFetchAll(t *testing.T) {
	tests := []struct {
		name  string
		pages *int
		want  int
	}{
		{"pages present", intPtr(7), 7},
		{"pages absent", nil, 3},
		{"pages zero", intPtr(0), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{resp: &catalog.ListResponse{
				Data:       records(),
				Pagination: catalog.Pagination{Total: 19, Pages: tt.pages},
			}}
			page, err := NewFetcher(src, VariantAll).Fetch(context.Background(), 1, 9)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.TotalPages != tt.want {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.want)
			}
			if len(page.Properties) != 3 {
				t.Errorf("got %d properties, want all 3", len(page.Properties))
			}
		})
	}
}

func TestFetchDefaultsPageSize(t *testing.T) {
	src := &fakeSource{resp: &catalog.ListResponse{Data: []property.RawRecord{}}}
	page, err := NewFetcher(src, "").Fetch(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls[0].limit != DefaultPageSize || page.Size != DefaultPageSize {
		t.Errorf("limit = %d, size = %d", src.calls[0].limit, page.Size)
	}
	if page.Properties == nil || page.TotalPages != 1 {
		t.Errorf("empty page = %+v", page)
	}
}

func TestFetchError(t *testing.T) {
	boom := errors.New("connection refused")
	page, err := NewFetcher(&fakeSource{err: boom}, VariantAvailable).Fetch(context.Background(), 1, 9)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
	if page != nil {
		t.Error("failed fetch returned a page")
	}
}

func TestResolve(t *testing.T) {
	src := &fakeSource{resp: &catalog.ListResponse{Data: records()}}
	r := NewResolver(src, 0)

	p, err := r.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls[0] != (call{1, DefaultScanLimit}) {
		t.Errorf("call = %v, want page 1 limit %d", src.calls[0], DefaultScanLimit)
	}
	if p.Location != "Av. Juárez 10, CP 72000" {
		t.Errorf("Location = %q", p.Location)
	}
	if p.PropertyType.Label != "Casa Habitacional" {
		t.Errorf("PropertyType = %q", p.PropertyType.Label)
	}

	// Sold records are still reachable by id.
	sold, err := r.Resolve(context.Background(), 2)
	if err != nil || sold.Title != "Vendida" {
		t.Errorf("Resolve(2) = %v, %v", sold, err)
	}

	other, err := r.Resolve(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.PropertyType.Label != "Otro" {
		t.Errorf("unknown type label = %q, want Otro", other.PropertyType.Label)
	}
}

func TestResolveNotFound(t *testing.T) {
	src := &fakeSource{resp: &catalog.ListResponse{Data: records()}}
	_, err := NewResolver(src, 50).Resolve(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if src.calls[0].limit != 50 {
		t.Errorf("limit = %d, want 50", src.calls[0].limit)
	}
}

func TestResolveTransportError(t *testing.T) {
	boom := errors.New("timeout")
	_, err := NewResolver(&fakeSource{err: boom}, 0).Resolve(context.Background(), 1)
	if errors.Is(err, ErrNotFound) {
		t.Error("transport failure reported as not found")
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}
