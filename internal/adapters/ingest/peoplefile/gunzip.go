package peoplefile

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	perr "peoplestats/internal/platform/errors"
)

// gunzip decompresses src into the scratch dir and returns the decompressed path.
// A relative scratch dir is resolved next to src; it is created when missing
func gunzip(ctx context.Context, src, scratch string, bufSize int) (string, int64, error) {
	dir := scratch
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(src), scratch)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, perr.Wrapf(err, perr.ErrorCodeIO, "create scratch dir %s", dir)
	}

	base := filepath.Base(src)
	dst := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base)))

	in, err := os.Open(src)
	if err != nil {
		return "", 0, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", src)
	}
	defer func() { _ = in.Close() }()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return "", 0, perr.Wrapf(err, perr.ErrorCodeIO, "%s is not a gzip file", src)
	}
	defer func() { _ = zr.Close() }()

	tmp := dst + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return "", 0, perr.Wrapf(err, perr.ErrorCodeIO, "create %s", tmp)
	}
	// hide ReadFrom so CopyBuffer really copies in bufSize chunks
	n, werr := io.CopyBuffer(struct{ io.Writer }{out}, ctxReader{ctx: ctx, r: zr}, make([]byte, bufSize))
	cerr := out.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(tmp)
		return "", 0, perr.Wrapf(werr, perr.ErrorCodeIO, "decompress %s", src)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return "", 0, perr.Wrapf(err, perr.ErrorCodeIO, "rename %s", tmp)
	}
	return dst, n, nil
}

// ctxReader stops a long copy once ctx is done
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
