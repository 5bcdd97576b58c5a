package peoplefile

import (
	"strconv"

	"peoplestats/internal/core/people"
	perr "peoplestats/internal/platform/errors"
	"peoplestats/internal/platform/validate"
)

// rawRecord is one input row before numeric parsing, identical for JSON and CSV
type rawRecord struct {
	Name           string `json:"name" validate:"required"`
	Siblings       string `json:"siblings" validate:"required,number"`
	FavouriteFood  string `json:"favourite_food" validate:"required"`
	BirthTimezone  string `json:"birth_timezone" validate:"required"`
	BirthTimestamp string `json:"birth_timestamp" validate:"required,numeric"`

	pos string // "line 3" or "record 2", for error messages
}

// fromFields picks schema fields by exact name; extra keys are ignored
func fromFields(fields map[string]string, pos string) rawRecord {
	return rawRecord{
		Name:           fields[people.FieldName],
		Siblings:       fields[people.FieldSiblings],
		FavouriteFood:  fields[people.FieldFavouriteFood],
		BirthTimezone:  fields[people.FieldBirthTimezone],
		BirthTimestamp: fields[people.FieldBirthTimestamp],
		pos:            pos,
	}
}

// record validates r and parses its numeric fields
func (r rawRecord) record() (people.Record, error) {
	if err := validate.Struct(r); err != nil {
		return people.Record{}, r.fail(err)
	}
	sib, err := strconv.Atoi(r.Siblings)
	if err != nil {
		return people.Record{}, r.fail(perr.WithField(
			perr.Validationf("siblings %q is out of range", r.Siblings), people.FieldSiblings))
	}
	ts, err := strconv.ParseInt(r.BirthTimestamp, 10, 64)
	if err != nil {
		return people.Record{}, r.fail(perr.WithField(
			perr.Validationf("birth_timestamp %q is not an integer millisecond timestamp", r.BirthTimestamp),
			people.FieldBirthTimestamp))
	}
	return people.Record{
		Name:           r.Name,
		Siblings:       sib,
		FavouriteFood:  r.FavouriteFood,
		BirthTimezone:  r.BirthTimezone,
		BirthTimestamp: ts,
	}, nil
}

// fail prefixes err with the row position and keeps its field
func (r rawRecord) fail(err error) error {
	field := ""
	if e, ok := perr.As(err); ok {
		field = e.Field()
	}
	return perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, r.pos), field)
}
