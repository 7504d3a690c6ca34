package property

// enumEntry is one row of a code table.
type enumEntry struct {
	label string
	key   string
}

// enumTable maps codes to labels with a fallback for unknown codes.
type enumTable struct {
	entries  map[string]enumEntry
	fallback enumEntry
}

func (t enumTable) resolve(c Code) Enum {
	e, ok := t.entries[c.String()]
	if !ok {
		e = t.fallback
	}
	return Enum{Code: c, Label: e.label, Key: e.key}
}

var propertyTypes = enumTable{
	entries: map[string]enumEntry{
		"1": {"Casa Habitacional", "tipo-propiedad-1"},
		"2": {"Departamento", "tipo-propiedad-2"},
		"3": {"Terreno", "tipo-propiedad-3"},
	},
	fallback: enumEntry{"Otro", "otro"},
}

var saleTypes = enumTable{
	entries: map[string]enumEntry{
		"1": {"Venta Directa", "tipo-venta-1"},
		"2": {"Cesión de derechos adjudicatarios", "tipo-venta-2"},
		"3": {"Remate bancario", "tipo-venta-3"},
	},
	fallback: enumEntry{"Otro", "otro"},
}

var legalStatuses = enumTable{
	entries: map[string]enumEntry{
		"1": {"Cesión de Derechos C/ posesión", "estatus-legal-1"},
		"2": {"Propiedad en proceso legal", "estatus-legal-2"},
		"3": {"Propiedad libre", "estatus-legal-3"},
	},
	fallback: enumEntry{"No definido", "no-definido"},
}

// ResolvePropertyType maps a property type code to its label ("Otro" if unknown).
func ResolvePropertyType(c Code) Enum {
	return propertyTypes.resolve(c)
}

// ResolveSaleType maps a sale type code to its label ("Otro" if unknown).
func ResolveSaleType(c Code) Enum {
	return saleTypes.resolve(c)
}

// ResolveLegalStatus maps a legal status code to its label ("No definido" if unknown).
func ResolveLegalStatus(c Code) Enum {
	return legalStatuses.resolve(c)
}

// Translate returns the enum's display text through t, which is typically
// an i18n.Translator's T method. Unresolved enums show their raw code.
func (e Enum) Translate(t func(string) string) string {
	if !e.Resolved() {
		return e.Code.String()
	}
	if e.Key == "" || t == nil {
		return e.Label
	}
	return t(e.Key)
}
