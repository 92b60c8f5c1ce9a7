package genotype

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/genogrid/pkg/errors"
)

// DefaultField is the zero-based column holding the genotype call.
const DefaultField = 3

// Option configures Read.
type Option func(*reader)

type reader struct {
	field int
	skip  func(string) bool
}

// WithField selects the zero-based column to extract.
func WithField(i int) Option {
	return func(r *reader) { r.field = i }
}

// WithSkip drops records whose extracted value satisfies fn, e.g. no-calls
// written as "--".
func WithSkip(fn func(value string) bool) Option {
	return func(r *reader) { r.skip = fn }
}

// Read returns one item per record in r, in input order.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	cfg := reader{field: DefaultField}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.field < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "field index %d is negative", cfg.field)
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var items []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse genotype records")
		}
		if len(rec) <= cfg.field {
			line, _ := cr.FieldPos(0)
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"line %d: %d fields, need at least %d", line, len(rec), cfg.field+1)
		}
		v := strings.TrimSpace(rec[cfg.field])
		if cfg.skip != nil && cfg.skip(v) {
			continue
		}
		items = append(items, v)
	}
	return items, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "genotype file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Categories returns the distinct values of items in first-seen order.
func Categories(items []string) []string {
	seen := make(map[string]bool, 16)
	var out []string
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

// NoCall reports whether v is an empty or dashed genotype call.
func NoCall(v string) bool {
	return v == "" || strings.Trim(v, "-") == ""
}
