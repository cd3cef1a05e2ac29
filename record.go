package addrtree

import "strings"

// AddressRecord is a structured, validated view of one raw input record.
// Each field is either absent (empty string) or a non-empty,
// whitespace-trimmed value. Records are built once from raw input and
// consumed by a single Hierarchy.Insert call.
type AddressRecord struct {
	Region   string
	Postcode string
	City     string
	Street   string
	Number   string
	Unit     string

	// Optional WGS84 point from the source geometry. Latitude and
	// Longitude are only meaningful when HasPoint is true.
	Latitude  float64
	Longitude float64
	HasPoint  bool
}

// RecordFromProperties builds an AddressRecord from a raw field mapping.
// Values are whitespace-trimmed; keys that are missing or empty after
// trimming yield an absent field. This never fails: unknown keys are
// ignored and no value is rejected.
func RecordFromProperties(props map[string]string) AddressRecord {
	return AddressRecord{
		Region:   cleanField(props, "region"),
		Postcode: cleanField(props, "postcode"),
		City:     cleanField(props, "city"),
		Street:   cleanField(props, "street"),
		Number:   cleanField(props, "number"),
		Unit:     cleanField(props, "unit"),
	}
}

// cleanField looks up a property and trims it. Absent and
// empty-after-trim both come back as "".
func cleanField(props map[string]string, key string) string {
	return strings.TrimSpace(props[key])
}

// IsComplete reports whether the record carries every field required for
// hierarchy insertion: region, postcode, city and street. Number and unit
// are not consulted; they are optional at any completeness level.
func (r AddressRecord) IsComplete() bool {
	return r.Region != "" && r.Postcode != "" && r.City != "" && r.Street != ""
}

// MissingFields returns the names of required fields absent from the
// record, in hierarchy order. Empty for complete records.
func (r AddressRecord) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"region", r.Region},
		{"postcode", r.Postcode},
		{"city", r.City},
		{"street", r.Street},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
