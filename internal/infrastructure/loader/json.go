package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/upbringing/recommender/internal/domain"
)

// JSONSource reads catalog records from a JSON array of objects, either an
// inline string or a stream such as stdin.
type JSONSource struct {
	reader io.Reader
}

// NewJSONStringSource wraps an inline JSON blob
func NewJSONStringSource(data string) *JSONSource {
	return &JSONSource{reader: strings.NewReader(data)}
}

// NewJSONStreamSource wraps a reader, typically os.Stdin
func NewJSONStreamSource(r io.Reader) *JSONSource {
	return &JSONSource{reader: r}
}

func (s *JSONSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []domain.RawRecord
	dec := json.NewDecoder(s.reader)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON catalog: %v", domain.ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: JSON catalog is empty", domain.ErrEmptyCatalog)
	}
	return records, nil
}
