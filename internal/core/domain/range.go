package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// VersionRange is a bracket-interval version constraint as it appears in
// package manifests: "[1.0,2.0)", "(,1.5]", "[1.0]", or a bare "1.0"
// which is shorthand for the inclusive minimum "[1.0,)".
//
// The zero value is the unbounded range, satisfied by every version.
type VersionRange struct {
	Min          *semver.Version
	Max          *semver.Version
	MinInclusive bool
	MaxInclusive bool
}

// AnyVersion is the unbounded range.
var AnyVersion = VersionRange{}

// ParseRange parses bracket interval notation into a VersionRange.
func ParseRange(s string) (VersionRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AnyVersion, nil
	}

	// Bare version: inclusive minimum, no upper bound.
	if s[0] != '[' && s[0] != '(' {
		minV, err := semver.NewVersion(s)
		if err != nil {
			return VersionRange{}, rangeErr(s, err)
		}
		return VersionRange{Min: minV, MinInclusive: true}, nil
	}

	last := s[len(s)-1]
	if last != ']' && last != ')' {
		return VersionRange{}, rangeErr(s, nil)
	}

	r := VersionRange{
		MinInclusive: s[0] == '[',
		MaxInclusive: last == ']',
	}

	body := s[1 : len(s)-1]
	lo, hi, found := strings.Cut(body, ",")
	if !found {
		// Exact pin: "[1.0]" means exactly 1.0.
		if !r.MinInclusive || !r.MaxInclusive {
			return VersionRange{}, rangeErr(s, nil)
		}
		v, err := semver.NewVersion(strings.TrimSpace(lo))
		if err != nil {
			return VersionRange{}, rangeErr(s, err)
		}
		r.Min, r.Max = v, v
		return r, nil
	}

	lo = strings.TrimSpace(lo)
	hi = strings.TrimSpace(hi)
	if lo == "" && hi == "" {
		return VersionRange{}, rangeErr(s, nil)
	}

	if lo != "" {
		v, err := semver.NewVersion(lo)
		if err != nil {
			return VersionRange{}, rangeErr(s, err)
		}
		r.Min = v
	}
	if hi != "" {
		v, err := semver.NewVersion(hi)
		if err != nil {
			return VersionRange{}, rangeErr(s, err)
		}
		r.Max = v
	}

	if r.Min != nil && r.Max != nil && r.Min.GreaterThan(r.Max) {
		return VersionRange{}, rangeErr(s, nil)
	}

	return r, nil
}

// MustParseRange parses bracket interval notation and panics on error.
// It is intended for tests and static initialization.
func MustParseRange(s string) VersionRange {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

func rangeErr(s string, cause error) error {
	err := ErrInvalidRange
	if cause != nil {
		err = zerr.Wrap(cause, ErrInvalidRange.Error())
	}
	return zerr.With(err, "range", s)
}

// Satisfies reports whether v falls inside the range. Prerelease versions
// satisfy a range only when the caller opts in via allowPrerelease.
func (r VersionRange) Satisfies(v *semver.Version, allowPrerelease bool) bool {
	if v == nil {
		return false
	}
	if v.Prerelease() != "" && !allowPrerelease {
		return false
	}
	if r.Min != nil {
		cmp := v.Compare(r.Min)
		if cmp < 0 || (cmp == 0 && !r.MinInclusive) {
			return false
		}
	}
	if r.Max != nil {
		cmp := v.Compare(r.Max)
		if cmp > 0 || (cmp == 0 && !r.MaxInclusive) {
			return false
		}
	}
	return true
}

// IsExact reports whether the range pins a single version.
func (r VersionRange) IsExact() bool {
	return r.Min != nil && r.Max != nil && r.Min.Equal(r.Max) &&
		r.MinInclusive && r.MaxInclusive
}

// String renders the range back into bracket interval notation.
func (r VersionRange) String() string {
	if r.Min == nil && r.Max == nil {
		return "(,)"
	}
	if r.IsExact() {
		return "[" + r.Min.String() + "]"
	}

	var b strings.Builder
	if r.MinInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.Min != nil {
		b.WriteString(r.Min.String())
	}
	b.WriteByte(',')
	if r.Max != nil {
		b.WriteString(r.Max.String())
	}
	if r.MaxInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
