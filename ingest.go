package addrtree

import (
	"errors"
	"fmt"
	"io"
)

// IngestAll pumps every record from src into h. Records rejected for
// missing required fields are skipped and counted; any other insertion
// error (a mis-seeded builder) aborts the pass. The returned stats are
// valid even when an error is returned.
func IngestAll(h *Hierarchy, src *RecordSource) (IngestStats, error) {
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return h.Stats(), nil
		}
		if err != nil {
			return h.Stats(), err
		}
		if _, err := h.Insert(rec); err != nil {
			if errors.Is(err, ErrMissingRequiredField) {
				continue
			}
			return h.Stats(), fmt.Errorf("inserting record: %w", err)
		}
	}
}

// Summary renders the stats in the ingestion report format.
func (s IngestStats) Summary() string {
	return fmt.Sprintf("Processed %d entries. %d were missing data and were skipped.", s.Processed, s.Incomplete)
}
