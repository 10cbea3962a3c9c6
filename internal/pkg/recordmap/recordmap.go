// Package recordmap translates sparse, variably shaped form submissions
// into column and value lists for parameterized statements. Column names
// come only from a fixed dictionary declared at compile time, never from
// the caller's key names.
package recordmap

import (
	"errors"
	"fmt"
)

// ErrEmptyRecord indicates the input contained no recognized fields.
var ErrEmptyRecord = errors.New("record contains no recognized fields")

// Field pairs an input key with its database column.
type Field struct {
	Name   string
	Column string
}

// Dictionary is an ordered field to column mapping. Output order always
// follows declaration order regardless of input map iteration.
type Dictionary []Field

// Map extracts the dictionary fields present in record, in dictionary
// order. Keys absent from record are skipped; keys absent from the
// dictionary are ignored. An empty string value becomes nil so it is
// stored as SQL NULL.
func (d Dictionary) Map(record map[string]interface{}) (columns []string, values []interface{}, err error) {
	for _, f := range d {
		raw, ok := record[f.Name]
		if !ok {
			continue
		}
		columns = append(columns, f.Column)
		values = append(values, normalize(raw))
	}
	if len(columns) == 0 {
		return nil, nil, ErrEmptyRecord
	}
	return columns, values, nil
}

// ReplaceMap returns every dictionary column as a column keyed map for a
// full-record replacement. Fields absent from record become nil so the
// stored row carries NULL where the new submission left a section blank.
// Input with zero recognized keys is still rejected; wiping a whole row
// is a delete, not an update.
func (d Dictionary) ReplaceMap(record map[string]interface{}) (map[string]interface{}, error) {
	recognized := 0
	set := make(map[string]interface{}, len(d))
	for _, f := range d {
		raw, ok := record[f.Name]
		if !ok {
			set[f.Column] = nil
			continue
		}
		recognized++
		set[f.Column] = normalize(raw)
	}
	if recognized == 0 {
		return nil, ErrEmptyRecord
	}
	return set, nil
}

// Placeholders returns $1..$n for a values list of length n.
func Placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("$%d", i+1)
	}
	return out
}

func normalize(v interface{}) interface{} {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}
