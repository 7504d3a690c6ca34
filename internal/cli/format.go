package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cnk-ceneka/cnk/internal/gallery"
	"github.com/cnk-ceneka/cnk/internal/i18n"
	"github.com/cnk-ceneka/cnk/internal/inquiry"
	"github.com/cnk-ceneka/cnk/internal/listing"
	"github.com/cnk-ceneka/cnk/internal/property"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertyTable prints one listing page as a formatted table.
func printPropertyTable(out io.Writer, page *listing.Page) error {
	if len(page.Properties) == 0 {
		_, err := fmt.Fprintf(out, "No properties found (page %d of %d).\n", page.Number, page.TotalPages)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tPRICE\tBED\tBATH\tM²\tLOCATION"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t-----\t---\t----\t--\t--------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range page.Properties {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, truncate(p.Title, 40), p.Price,
			formatMeasure(p.Beds), formatMeasure(p.Baths), formatMeasure(p.ConstructionSize),
			truncate(p.Location, 40)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(out, "\nPage %d of %d (%d in catalog)\n", page.Number, page.TotalPages, page.Total)
	return err
}

// printPropertyDetail prints a resolved property, labels in t's language.
func printPropertyDetail(out io.Writer, p *property.Property, t i18n.Translator) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Property #%d\n", p.ID)
	fmt.Fprintf(&b, "  Title:       %s\n", p.Title)
	fmt.Fprintf(&b, "  Price:       %s\n", p.Price)
	fmt.Fprintf(&b, "  Commercial:  %s\n", p.CommercialValue)
	fmt.Fprintf(&b, "  Type:        %s\n", p.PropertyType.Translate(t.T))
	fmt.Fprintf(&b, "  Sale:        %s\n", p.SaleType.Translate(t.T))
	fmt.Fprintf(&b, "  Legal:       %s\n", p.LegalStatus.Translate(t.T))
	fmt.Fprintf(&b, "  Beds:        %s\n", formatMeasure(p.Beds))
	fmt.Fprintf(&b, "  Baths:       %s\n", formatMeasure(p.Baths))
	fmt.Fprintf(&b, "  Built:       %s m²\n", formatMeasure(p.ConstructionSize))
	fmt.Fprintf(&b, "  Land:        %s m²\n", formatMeasure(p.LandSize))
	fmt.Fprintf(&b, "  Location:    %s\n", p.Location)
	fmt.Fprintf(&b, "  Area:        %s\n", joinNonEmpty(p.Colony, p.Municipality, p.State))

	var extras []string
	for _, x := range []struct {
		on  bool
		key string
	}{
		{p.HasGarden, "jardin"},
		{p.HasStudy, "estudio"},
		{p.HasServiceRoom, "cuarto-servicio"},
		{p.HasCondominium, "condominio"},
	} {
		if x.on {
			extras = append(extras, t.T(x.key))
		}
	}
	if len(extras) > 0 {
		fmt.Fprintf(&b, "  Extras:      %s\n", strings.Join(extras, ", "))
	}
	if len(p.Features) > 0 {
		fmt.Fprintf(&b, "  Features:    %s\n", strings.Join(p.Features, ", "))
	}
	fmt.Fprintf(&b, "  Images:      %d\n", len(p.Images))
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// printGallery prints gallery URLs, one per line, after any fallback notice.
func printGallery(out io.Writer, res gallery.Result, t i18n.Translator) error {
	var b strings.Builder
	if msg := res.Message(t.T); msg != "" {
		fmt.Fprintf(&b, "%s\n\n", msg)
	}
	for _, u := range res.Images {
		fmt.Fprintln(&b, u)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// printDictionary prints key = value lines in key order.
func printDictionary(out io.Writer, dict map[string]string) error {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", k, dict[k]); err != nil {
			return fmt.Errorf("writing dictionary: %w", err)
		}
	}
	return w.Flush()
}

// printInquiryTable prints stored inquiries as a formatted table.
func printInquiryTable(out io.Writer, list []*inquiry.Inquiry) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No inquiries.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "REFERENCE\tDATE\tNAME\tEMAIL\tPROPERTY\tLANG"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, inq := range list {
		prop := "-"
		if inq.PropertyID != nil {
			prop = "#" + strconv.FormatInt(*inq.PropertyID, 10)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inq.Reference, inq.CreatedAt.Format("2006-01-02 15:04"),
			truncate(inq.Name, 30), inq.Email, prop, inq.Lang); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(out, "\nTotal: %d inquiries\n", len(list))
	return err
}

// printInquiryDetail prints one inquiry followed by its delivery log.
func printInquiryDetail(out io.Writer, inq *inquiry.Inquiry, notes []*inquiry.Notification) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Inquiry %s\n", inq.Reference)
	fmt.Fprintf(&b, "  Date:      %s\n", inq.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "  Name:      %s\n", inq.Name)
	fmt.Fprintf(&b, "  Email:     %s\n", inq.Email)
	if inq.Phone != "" {
		fmt.Fprintf(&b, "  Phone:     %s\n", inq.Phone)
	}
	if inq.PropertyID != nil {
		fmt.Fprintf(&b, "  Property:  #%d\n", *inq.PropertyID)
	}
	fmt.Fprintf(&b, "  Language:  %s\n", inq.Lang)
	fmt.Fprintf(&b, "\n%s\n", inq.Message)

	if len(notes) > 0 {
		b.WriteString("\nNotifications:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "  %s  %-7s %s", n.CreatedAt.Format("2006-01-02 15:04"), n.Status, n.Recipient)
			if n.Error != "" {
				fmt.Fprintf(&b, " (%s)", n.Error)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// formatMeasure prints a count or area, "-" when unknown.
func formatMeasure(f float64) string {
	if f <= 0 {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
