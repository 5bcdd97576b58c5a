package peoplefile

import (
	"bufio"
	stderrs "errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"peoplestats/internal/core/people"
	perr "peoplestats/internal/platform/errors"
)

const maxCSVLine = 1 << 20

// decodeCSV reads a header line and comma separated rows.
// There is no quoting: every comma separates fields
func decodeCSV(r io.Reader) ([]rawRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxCSVLine)

	var (
		header []string
		out    []rawRecord
		line   int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cells := splitCells(text)

		if header == nil {
			if err := checkHeader(cells); err != nil {
				return nil, err
			}
			header = cells
			continue
		}

		if len(cells) != len(header) {
			return nil, perr.CSVErrf("line %d: %d fields, header has %d", line, len(cells), len(header))
		}
		fields := make(map[string]string, len(header))
		for i, h := range header {
			fields[h] = cells[i]
		}
		out = append(out, fromFields(fields, fmt.Sprintf("line %d", line)))
	}
	if err := sc.Err(); err != nil {
		if stderrs.Is(err, bufio.ErrTooLong) {
			return nil, perr.CSVErrf("line %d: longer than %d bytes", line+1, maxCSVLine)
		}
		return nil, perr.Wrap(err, perr.ErrorCodeIO, "read CSV")
	}
	if header == nil {
		return nil, perr.CSVErrf("empty input, want a header line")
	}
	return out, nil
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// checkHeader requires every schema field once; extra columns are allowed
func checkHeader(cells []string) error {
	seen := make(map[string]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return perr.CSVErrf("header: duplicate column %q", c)
		}
		seen[c] = true
	}
	var missing []string
	for _, f := range people.Fields {
		if !seen[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return perr.CSVErrf("header: missing column(s) %s", strings.Join(missing, ", "))
	}
	return nil
}
