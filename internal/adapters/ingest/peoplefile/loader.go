package peoplefile

import (
	"context"
	stderrs "errors"
	"io"
	"io/fs"
	"os"
	"time"

	"peoplestats/internal/core/people"
	"peoplestats/internal/platform/config"
	perr "peoplestats/internal/platform/errors"
	"peoplestats/internal/platform/logger"
)

// OpLoad tags every error returned by Load
const OpLoad = "load"

const (
	// DefaultScratchDir is where gzip input is decompressed, relative to the source file
	DefaultScratchDir = "gzoutput"
	// DefaultCopyBufferKB is the decompression copy chunk size
	DefaultCopyBufferKB = 32
)

// Options holds configuration for the loader
type Options struct {
	ScratchDir   string
	CopyBufferKB int
}

// FromConfig reads the loader options from config with PEOPLESTATS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("PEOPLESTATS_")
	return Options{
		ScratchDir:   c.MayString("SCRATCH_DIR", DefaultScratchDir),
		CopyBufferKB: c.MayInt("COPY_BUFFER_KB", DefaultCopyBufferKB),
	}
}

// Loader turns an input file into a people.Dataset
type Loader struct {
	opt Options
}

// New builds a Loader, filling unset options with defaults
func New(opt Options) *Loader {
	if opt.ScratchDir == "" {
		opt.ScratchDir = DefaultScratchDir
	}
	if opt.CopyBufferKB <= 0 {
		opt.CopyBufferKB = DefaultCopyBufferKB
	}
	return &Loader{opt: opt}
}

// Load reads path completely. Either every record parses or an error is returned
func (l *Loader) Load(ctx context.Context, path string) (people.Dataset, error) {
	ds, err := l.load(ctx, path)
	if err != nil {
		return people.Dataset{}, perr.WithOp(err, OpLoad)
	}
	return ds, nil
}

func (l *Loader) load(ctx context.Context, path string) (people.Dataset, error) {
	log := logger.Named(ctx, "loader")
	start := time.Now()

	fi, err := os.Stat(path)
	switch {
	case stderrs.Is(err, fs.ErrNotExist):
		return people.Dataset{}, perr.NotFoundf("input file %s does not exist", path)
	case err != nil:
		return people.Dataset{}, perr.Wrapf(err, perr.ErrorCodeIO, "stat %s", path)
	case fi.IsDir():
		return people.Dataset{}, perr.InvalidArgf("%s is a directory, want a file", path)
	}

	format, gz, err := Detect(path)
	if err != nil {
		return people.Dataset{}, err
	}
	log.Debug().Str("path", path).Str("format", format.String()).Bool("gzip", gz).Msg("loader: format resolved")

	if gz {
		dst, n, err := gunzip(ctx, path, l.opt.ScratchDir, l.opt.CopyBufferKB*1024)
		if err != nil {
			return people.Dataset{}, err
		}
		log.Debug().Str("src", path).Str("dst", dst).Int64("bytes", n).Msg("loader: decompressed")
		path = dst
	}

	f, err := os.Open(path)
	if err != nil {
		return people.Dataset{}, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", path).Msg("loader: close failed")
		}
	}()

	raws, err := decode(format, newTextReader(f))
	if err != nil {
		return people.Dataset{}, err
	}

	recs := make([]people.Record, 0, len(raws))
	for _, raw := range raws {
		rec, err := raw.record()
		if err != nil {
			return people.Dataset{}, err
		}
		recs = append(recs, rec)
	}

	log.Debug().
		Str("path", path).
		Int("records", len(recs)).
		Dur("took", time.Since(start)).
		Msg("loader: dataset loaded")
	return people.NewDataset(recs), nil
}

func decode(format Format, r io.Reader) ([]rawRecord, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatCSV:
		return decodeCSV(r)
	default:
		return nil, perr.InvalidArgf("unsupported format %s", format)
	}
}
