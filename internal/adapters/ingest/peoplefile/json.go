package peoplefile

import (
	"bytes"
	"encoding/json"
	stderrs "errors"
	"fmt"
	"io"

	perr "peoplestats/internal/platform/errors"
)

var errNotText = stderrs.New("value must be a string or a number")

// textValue accepts a JSON string or number and keeps its text form.
// Source data carries numbers both quoted and bare
type textValue string

func (v *textValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = textValue(s)
		return nil
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*v = textValue(n.String())
		return nil
	default:
		return fmt.Errorf("%w, got %s", errNotText, b)
	}
}

// decodeJSON reads a single JSON array of objects
func decodeJSON(r io.Reader) ([]rawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []map[string]textValue
	if err := dec.Decode(&rows); err != nil {
		if stderrs.Is(err, io.EOF) {
			return nil, perr.JSONErrf("empty input, want a JSON array")
		}
		return nil, jsonErr(err)
	}
	if rows == nil {
		return nil, perr.JSONErrf("want a JSON array, got null")
	}
	if dec.More() {
		return nil, perr.JSONErrf("unexpected trailing data after the JSON array")
	}

	out := make([]rawRecord, len(rows))
	for i, row := range rows {
		fields := make(map[string]string, len(row))
		for k, v := range row {
			fields[k] = string(v)
		}
		out[i] = fromFields(fields, fmt.Sprintf("record %d", i))
	}
	return out, nil
}

// jsonErr separates malformed input from read failures
func jsonErr(err error) error {
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case stderrs.As(err, &syn):
		return perr.Wrapf(err, perr.ErrorCodeJSON, "malformed JSON at byte %d", syn.Offset)
	case stderrs.As(err, &typ):
		return perr.Wrapf(err, perr.ErrorCodeJSON, "unexpected JSON %s at byte %d", typ.Value, typ.Offset)
	case stderrs.Is(err, errNotText):
		return perr.Wrap(err, perr.ErrorCodeJSON, "unexpected JSON value")
	case stderrs.Is(err, io.ErrUnexpectedEOF):
		return perr.Wrap(err, perr.ErrorCodeJSON, "truncated JSON")
	default:
		return perr.Wrap(err, perr.ErrorCodeIO, "read JSON")
	}
}
