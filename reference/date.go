package reference

import (
	"fmt"
	"strconv"
	"strings"
)

// EdtfString is a date field as stored on a Reference: either an EDTF
// string or, if it doesn't parse as EDTF, a literal kept verbatim (I3).
type EdtfString string

// Precision records which EDTF components were present, since a partial
// date ("2020", "2020-06") still parses successfully but with fewer
// components than a full one.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

// EdtfDate is a single parsed calendar point, as opposed to a range.
type EdtfDate struct {
	Year      int
	Month     int // 1-12, 0 if absent
	Day       int // 1-31, 0 if absent
	Precision Precision
	Uncertain bool // trailing '?'
	Approximate bool // trailing '~'
}

// RefDate is the result of parsing an EdtfString: exactly one of the
// fields below is populated (I3's "either parses ... or is treated as a
// literal").
type RefDate struct {
	Date     *EdtfDate // single point in time
	Interval *Interval // a range
	Literal  string    // unparseable input, kept as-is
}

// Interval is an EDTF level-1 interval: "start/end". Either bound may be
// open ("..") or unset to mean "present"/"open-ended".
type Interval struct {
	Start     *EdtfDate
	End       *EdtfDate
	OpenStart bool
	OpenEnd   bool
}

// InvalidEdtfError is never actually returned by Parse — per I3 and §7, an
// unparsed EDTF string always falls back to Literal rather than failing —
// but is kept as the named error kind §7 specifies, for callers that want
// to treat literal fallback as an error in strict contexts.
type InvalidEdtfError struct {
	Input string
}

func (e *InvalidEdtfError) Error() string {
	return fmt.Sprintf("reference: %q is neither a valid EDTF date nor literal-safe", e.Input)
}

// Parse parses s as an EDTF level-1 string. Unparseable input is returned
// as RefDate.Literal rather than an error (I3).
func (s EdtfString) Parse() RefDate {
	str := strings.TrimSpace(string(s))
	if str == "" {
		return RefDate{Literal: ""}
	}
	if idx := strings.Index(str, "/"); idx >= 0 {
		left, right := str[:idx], str[idx+1:]
		iv := Interval{}
		if left == ".." {
			iv.OpenStart = true
		} else if d, ok := parseDatePoint(left); ok {
			iv.Start = d
		} else {
			return RefDate{Literal: str}
		}
		if right == ".." {
			iv.OpenEnd = true
		} else if d, ok := parseDatePoint(right); ok {
			iv.End = d
		} else {
			return RefDate{Literal: str}
		}
		return RefDate{Interval: &iv}
	}
	if d, ok := parseDatePoint(str); ok {
		return RefDate{Date: d}
	}
	return RefDate{Literal: str}
}

// parseDatePoint parses a single EDTF date point: "YYYY", "YYYY-MM", or
// "YYYY-MM-DD", with an optional trailing '?' (uncertain) or '~'
// (approximate).
func parseDatePoint(s string) (*EdtfDate, bool) {
	d := &EdtfDate{}
	if strings.HasSuffix(s, "?") {
		d.Uncertain = true
		s = strings.TrimSuffix(s, "?")
	}
	if strings.HasSuffix(s, "~") {
		d.Approximate = true
		s = strings.TrimSuffix(s, "~")
	}
	parts := strings.Split(s, "-")
	// A leading '-' (negative/BCE year) produces a leading empty part;
	// reassemble it onto the year.
	if len(parts) > 0 && parts[0] == "" && len(parts) > 1 {
		parts = append([]string{"-" + parts[1]}, parts[2:]...)
	}
	switch len(parts) {
	case 1:
		y, err := strconv.Atoi(parts[0])
		if err != nil || len(parts[0]) < 4 {
			return nil, false
		}
		d.Year = y
		d.Precision = PrecisionYear
	case 2:
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || m < 1 || m > 12 {
			return nil, false
		}
		d.Year, d.Month = y, m
		d.Precision = PrecisionMonth
	case 3:
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		dd, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || m < 1 || m > 12 || dd < 1 || dd > 31 {
			return nil, false
		}
		d.Year, d.Month, d.Day = y, m, dd
		d.Precision = PrecisionDay
	default:
		return nil, false
	}
	return d, true
}

// String renders the canonical form of a parsed RefDate: the same string a
// second Parse would reproduce byte-for-byte (§8 EDTF canonical-round-trip
// property).
func (r RefDate) String() string {
	switch {
	case r.Date != nil:
		return r.Date.String()
	case r.Interval != nil:
		left := ".."
		if r.Interval.Start != nil {
			left = r.Interval.Start.String()
		}
		right := ".."
		if r.Interval.End != nil {
			right = r.Interval.End.String()
		}
		return left + "/" + right
	default:
		return r.Literal
	}
}

// String renders d in canonical EDTF form.
func (d *EdtfDate) String() string {
	var sb strings.Builder
	sign := ""
	y := d.Year
	if y < 0 {
		sign = "-"
		y = -y
	}
	fmt.Fprintf(&sb, "%s%04d", sign, y)
	if d.Precision >= PrecisionMonth {
		fmt.Fprintf(&sb, "-%02d", d.Month)
	}
	if d.Precision >= PrecisionDay {
		fmt.Fprintf(&sb, "-%02d", d.Day)
	}
	// '~' precedes '?' so parseDatePoint, which strips a trailing '?'
	// before a trailing '~', reads both flags back.
	if d.Approximate {
		sb.WriteByte('~')
	}
	if d.Uncertain {
		sb.WriteByte('?')
	}
	return sb.String()
}

// Year returns the four-digit year for any RefDate shape, or 0 if there is
// none (used by the sorter's year key, §4.6.1).
func (r RefDate) Year() int {
	switch {
	case r.Date != nil:
		return r.Date.Year
	case r.Interval != nil && r.Interval.Start != nil:
		return r.Interval.Start.Year
	default:
		return 0
	}
}
