// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// ToJSON serializes a batch result.
func ToJSON(b *models.BatchResult, pretty bool) ([]byte, error) {
	return marshal(b, pretty)
}

// FileToJSON serializes a single file result.
func FileToJSON(f *models.FileQuote, pretty bool) ([]byte, error) {
	return marshal(f, pretty)
}

// RecordsToJSON serializes flattened records.
func RecordsToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return marshal(records, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
