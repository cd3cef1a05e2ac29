package addrtree

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineBytes bounds a single input line. OpenAddresses features are a
// few hundred bytes; 1MB leaves room for exotic geometries without
// letting one corrupt line exhaust memory.
const maxLineBytes = 1 << 20

// geoJSONFeature is the subset of a GeoJSON feature line this package
// reads: the address properties and an optional Point geometry.
type geoJSONFeature struct {
	Properties map[string]any `json:"properties"`
	Geometry   *struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

// RecordSource reads address records from line-delimited GeoJSON, one
// feature per line. Blank lines, lines that fail to parse and features
// without a properties object are skipped and counted rather than
// reported as errors: the datasets are large and noisy, and ingestion
// is best-effort.
type RecordSource struct {
	scanner    *bufio.Scanner
	maxRecords int // 0 = unlimited
	yielded    int
	skipped    int
}

// SourceOption is a functional option for configuring a RecordSource.
type SourceOption func(*RecordSource)

// WithMaxRecords caps how many records the source yields, for sampling
// a large dataset. Zero or negative means unlimited.
func WithMaxRecords(n int) SourceOption {
	return func(s *RecordSource) {
		s.maxRecords = n
	}
}

// NewRecordSource wraps a line-delimited GeoJSON stream.
func NewRecordSource(r io.Reader, opts ...SourceOption) *RecordSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(bufio.ScanLines)
	s := &RecordSource{scanner: sc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next address record from the stream. io.EOF signals
// the end of the sequence (or the max-records cap); any other error is a
// read failure on the underlying stream.
func (s *RecordSource) Next() (AddressRecord, error) {
	for {
		if s.maxRecords > 0 && s.yielded >= s.maxRecords {
			return AddressRecord{}, io.EOF
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return AddressRecord{}, fmt.Errorf("reading input: %w", err)
			}
			return AddressRecord{}, io.EOF
		}

		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var feat geoJSONFeature
		if err := json.Unmarshal(line, &feat); err != nil || feat.Properties == nil {
			s.skipped++
			continue
		}

		rec := RecordFromProperties(stringProperties(feat.Properties))
		if feat.Geometry != nil && feat.Geometry.Type == "Point" && len(feat.Geometry.Coordinates) >= 2 {
			// GeoJSON positions are (longitude, latitude).
			rec.Longitude = feat.Geometry.Coordinates[0]
			rec.Latitude = feat.Geometry.Coordinates[1]
			rec.HasPoint = true
		}
		s.yielded++
		return rec, nil
	}
}

// Skipped returns how many lines were dropped as unparseable or missing
// a properties object.
func (s *RecordSource) Skipped() int {
	return s.skipped
}

// stringProperties keeps the string-valued entries of a raw properties
// object. OpenAddresses writes every address field as a string; numeric
// values under other keys (ids, hashes) are not address fields.
func stringProperties(props map[string]any) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		if sv, ok := v.(string); ok {
			out[k] = sv
		}
	}
	return out
}
