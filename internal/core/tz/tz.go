// Package tz resolves birth timezone strings into *time.Location values.
// Accepted forms are IANA names (America/Los_Angeles, UTC) and fixed offsets
// (+05:30, -0800, UTC+8, GMT-08:00). Unknown names fail; there is no UTC fallback
package tz

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	perr "peoplestats/internal/platform/errors"
)

const maxOffset = 14 * time.Hour

var (
	loadLocation = time.LoadLocation // seam
	cache        sync.Map            // string -> *time.Location
	offsetRe     = regexp.MustCompile(`^(?i:UTC|GMT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)
)

// Resolve returns the location for name, caching successful lookups
func Resolve(name string) (*time.Location, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return nil, perr.Timezonef("empty timezone")
	}
	if v, ok := cache.Load(s); ok {
		return v.(*time.Location), nil
	}
	loc, err := resolve(s)
	if err != nil {
		return nil, err
	}
	cache.Store(s, loc)
	return loc, nil
}

func resolve(s string) (*time.Location, error) {
	// LoadLocation maps "Local" to the host zone, which says nothing about a birth place
	if strings.EqualFold(s, "Local") {
		return nil, perr.Timezonef("timezone %q is host dependent", s)
	}
	if m := offsetRe.FindStringSubmatch(s); m != nil {
		return fixed(s, m[1], m[2], m[3])
	}
	loc, err := loadLocation(s)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeTimezone, "unknown timezone %q", s)
	}
	return loc, nil
}

func fixed(name, sign, hh, mm string) (*time.Location, error) {
	h, _ := strconv.Atoi(hh)
	m := 0
	if mm != "" {
		m, _ = strconv.Atoi(mm)
	}
	if m >= 60 {
		return nil, perr.Timezonef("timezone %q: minutes out of range", name)
	}
	off := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	if off > maxOffset {
		return nil, perr.Timezonef("timezone %q: offset out of range", name)
	}
	if sign == "-" {
		off = -off
	}
	return time.FixedZone(name, int(off/time.Second)), nil
}
