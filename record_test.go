package addrtree

import (
	"reflect"
	"testing"
)

func TestRecordFromPropertiesTrims(t *testing.T) {
	rec := RecordFromProperties(map[string]string{
		"region":   "  CA ",
		"postcode": "92101",
		"city":     "\tSan Diego\n",
		"street":   "Main St",
		"number":   " 100",
		"unit":     "B ",
	})

	want := AddressRecord{
		Region:   "CA",
		Postcode: "92101",
		City:     "San Diego",
		Street:   "Main St",
		Number:   "100",
		Unit:     "B",
	}
	if rec != want {
		t.Errorf("RecordFromProperties = %+v, want %+v", rec, want)
	}
}

func TestRecordFromPropertiesAbsentFields(t *testing.T) {
	// Missing keys, empty values and whitespace-only values all come
	// back as absent; unknown keys are ignored.
	rec := RecordFromProperties(map[string]string{
		"region": "",
		"city":   "   ",
		"street": "Main St",
		"hash":   "abcd1234",
	})

	if rec.Region != "" || rec.Postcode != "" || rec.City != "" {
		t.Errorf("expected absent fields, got %+v", rec)
	}
	if rec.Street != "Main St" {
		t.Errorf("Street = %q, want %q", rec.Street, "Main St")
	}
	if rec.HasPoint {
		t.Error("record built from properties should carry no point")
	}
}

func TestRecordFromPropertiesNilMap(t *testing.T) {
	rec := RecordFromProperties(nil)
	if rec != (AddressRecord{}) {
		t.Errorf("RecordFromProperties(nil) = %+v, want zero record", rec)
	}
}

func TestIsComplete(t *testing.T) {
	base := map[string]string{
		"region":   "CA",
		"postcode": "92101",
		"city":     "San Diego",
		"street":   "Main St",
	}

	if !RecordFromProperties(base).IsComplete() {
		t.Error("record with all required fields should be complete")
	}

	// Number and unit do not affect completeness.
	withOptionals := map[string]string{}
	for k, v := range base {
		withOptionals[k] = v
	}
	withOptionals["number"] = "100"
	withOptionals["unit"] = "B"
	if !RecordFromProperties(withOptionals).IsComplete() {
		t.Error("optional fields should not affect completeness")
	}

	for _, missing := range []string{"region", "postcode", "city", "street"} {
		props := map[string]string{}
		for k, v := range base {
			props[k] = v
		}
		delete(props, missing)
		if RecordFromProperties(props).IsComplete() {
			t.Errorf("record without %s should be incomplete", missing)
		}
	}
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		rec  AddressRecord
		want []string
	}{
		{AddressRecord{Region: "CA", Postcode: "92101", City: "San Diego", Street: "Main St"}, nil},
		{AddressRecord{Postcode: "92101", City: "San Diego", Street: "Main St"}, []string{"region"}},
		{AddressRecord{Region: "CA", Street: "Main St"}, []string{"postcode", "city"}},
		{AddressRecord{}, []string{"region", "postcode", "city", "street"}},
	}
	for _, tt := range tests {
		if got := tt.rec.MissingFields(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("MissingFields(%+v) = %v, want %v", tt.rec, got, tt.want)
		}
	}
}
