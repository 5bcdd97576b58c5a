// Package people holds the record types the loader builds and the aggregators read
package people

import (
	"iter"
	"time"
)

// Schema field names, shared by every input format
const (
	FieldName           = "name"
	FieldSiblings       = "siblings"
	FieldFavouriteFood  = "favourite_food"
	FieldBirthTimezone  = "birth_timezone"
	FieldBirthTimestamp = "birth_timestamp"
)

// Fields lists the schema in canonical order
var Fields = []string{FieldName, FieldSiblings, FieldFavouriteFood, FieldBirthTimezone, FieldBirthTimestamp}

// Record is one person
type Record struct {
	Name           string
	Siblings       int
	FavouriteFood  string
	BirthTimezone  string // IANA name or UTC offset, resolved by package tz
	BirthTimestamp int64  // epoch milliseconds
}

// BirthTime returns the birth instant in UTC
func (r Record) BirthTime() time.Time { return time.UnixMilli(r.BirthTimestamp).UTC() }

// Dataset is an ordered, read-only collection of records
type Dataset struct {
	records []Record
}

// NewDataset copies recs so later changes to the slice do not leak in
func NewDataset(recs []Record) Dataset {
	cp := make([]Record, len(recs))
	copy(cp, recs)
	return Dataset{records: cp}
}

// Len returns the number of records
func (d Dataset) Len() int { return len(d.records) }

// At returns the i-th record; panics when out of range like a slice index
func (d Dataset) At(i int) Record { return d.records[i] }

// All iterates records in file order
func (d Dataset) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range d.records {
			if !yield(i, r) {
				return
			}
		}
	}
}
