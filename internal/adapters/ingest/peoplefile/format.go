package peoplefile

import (
	"path/filepath"
	"strings"

	perr "peoplestats/internal/platform/errors"
)

// Format is the payload encoding of an input file
type Format int

const (
	// FormatUnknown is the zero value
	FormatUnknown Format = iota
	// FormatJSON is a single JSON array of objects
	FormatJSON
	// FormatCSV is a header line followed by comma separated rows
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// Detect returns the payload format of path and whether it is gzip wrapped
func Detect(path string) (Format, bool, error) {
	name := filepath.Base(path)
	gz := false
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".gz") {
		gz = true
		name = strings.TrimSuffix(name, ext)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, gz, nil
	case ".csv":
		return FormatCSV, gz, nil
	}

	if gz {
		return FormatUnknown, true, perr.InvalidArgf("unsupported payload %q inside gzip file %s (want .json or .csv)", filepath.Ext(name), path)
	}
	return FormatUnknown, false, perr.InvalidArgf("unsupported file extension %q for %s (want .json, .csv or .gz)", filepath.Ext(name), path)
}
