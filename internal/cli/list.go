package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/listing"
	"github.com/cnk-ceneka/cnk/internal/property"
)

type listOptions struct {
	page    int
	size    int
	all     bool
	filter  property.Filter
	beds    int
	baths   int
	minCons float64
	maxCons float64
	minLand float64
	maxLand float64
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog properties",
		Long: "Fetch one page of the property catalog and print it, optionally narrowed " +
			"by the same filters the website offers. Filters apply to the fetched page only.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.page, "page", 1, "page number")
	f.IntVar(&opts.size, "size", 0, "page size (default from config, 9)")
	f.BoolVar(&opts.all, "all", false, "include properties that are not available")
	f.StringVar(&opts.filter.Search, "search", "", "match id or title")
	f.IntVar(&opts.beds, "beds", 0, "minimum bedrooms")
	f.IntVar(&opts.baths, "baths", 0, "minimum bathrooms")
	f.Float64Var(&opts.minCons, "min-construction", 0, "minimum construction size (m²)")
	f.Float64Var(&opts.maxCons, "max-construction", 0, "maximum construction size (m²)")
	f.Float64Var(&opts.minLand, "min-land", 0, "minimum land size (m²)")
	f.Float64Var(&opts.maxLand, "max-land", 0, "maximum land size (m²)")
	f.BoolVar(&opts.filter.HasGarden, "garden", false, "only with garden")
	f.BoolVar(&opts.filter.HasStudy, "study", false, "only with study")
	f.BoolVar(&opts.filter.HasServiceRoom, "service-room", false, "only with service room")
	f.BoolVar(&opts.filter.HasCondominium, "condominium", false, "only in condominium")

	return cmd
}

// buildFilter moves the numeric flags that were set into the filter.
func (o listOptions) buildFilter() property.Filter {
	f := o.filter
	if o.beds > 0 {
		f.Bedrooms = &o.beds
	}
	if o.baths > 0 {
		f.Bathrooms = &o.baths
	}
	for _, v := range []struct {
		src float64
		dst **float64
	}{
		{o.minCons, &f.MinConstruction},
		{o.maxCons, &f.MaxConstruction},
		{o.minLand, &f.MinLand},
		{o.maxLand, &f.MaxLand},
	} {
		if v.src > 0 {
			val := v.src
			*v.dst = &val
		}
	}
	return f
}

func runList(cmd *cobra.Command, opts listOptions) error {
	if opts.page < 1 {
		return fmt.Errorf("invalid page %d: pages start at 1", opts.page)
	}
	variant, err := listing.ParseVariant(settings.ListingVariant)
	if err != nil {
		return err
	}
	if opts.all {
		variant = listing.VariantAll
	}
	size := opts.size
	if size <= 0 {
		size = settings.PageSize
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	page, err := listing.NewFetcher(client, variant).Fetch(cmd.Context(), opts.page, size)
	if err != nil {
		return err
	}
	if last := listing.ClampPage(opts.page, page.TotalPages); last != opts.page {
		return fmt.Errorf("page %d out of range: the catalog has %d page(s)", opts.page, last)
	}
	page.Properties = property.Apply(page.Properties, opts.buildFilter())

	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, page)
	}
	return printPropertyTable(out, page)
}
