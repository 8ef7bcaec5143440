package main

import "strings"

const delimiter = ","

// Record is one input line split on the delimiter. Field order is preserved;
// rules replace individual fields in place. There is no quoting or escaping
// support, a comma always separates fields.
type Record struct {
	fields []string
}

func SplitRecord(line string) *Record {
	return &Record{fields: strings.Split(line, delimiter)}
}

func (r *Record) Len() int {
	return len(r.fields)
}

// Field returns the field at the given column with surrounding whitespace
// stripped, or a StructuralError if the record is too short.
func (r *Record) Field(column int) (string, error) {
	if column < 0 || column >= len(r.fields) {
		return "", &StructuralError{Column: column, Fields: len(r.fields)}
	}
	return strings.TrimSpace(r.fields[column]), nil
}

func (r *Record) SetField(column int, value string) {
	r.fields[column] = value
}

func (r *Record) Join() string {
	return strings.Join(r.fields, delimiter)
}

// Row is the unit a Rule operates on: one record plus its line number for
// diagnostics.
type Row struct {
	Record *Record
	Line   int
}
