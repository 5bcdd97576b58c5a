package peoplefile

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newTextReader strips a leading byte order mark; spreadsheet exports often carry one.
// A UTF-16 BOM switches decoding to UTF-16 so those files read as UTF-8 text
func newTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
