package reference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEdtfString_Parse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RefDate
	}{
		{"year", "2020", RefDate{Date: &EdtfDate{Year: 2020, Precision: PrecisionYear}}},
		{"year-month", "2020-06", RefDate{Date: &EdtfDate{Year: 2020, Month: 6, Precision: PrecisionMonth}}},
		{"full", "2020-06-15", RefDate{Date: &EdtfDate{Year: 2020, Month: 6, Day: 15, Precision: PrecisionDay}}},
		{"uncertain", "2020?", RefDate{Date: &EdtfDate{Year: 2020, Precision: PrecisionYear, Uncertain: true}}},
		{"approximate", "2020~", RefDate{Date: &EdtfDate{Year: 2020, Precision: PrecisionYear, Approximate: true}}},
		{"negative year", "-0500", RefDate{Date: &EdtfDate{Year: -500, Precision: PrecisionYear}}},
		{"range", "2010/2020", RefDate{Interval: &Interval{
			Start: &EdtfDate{Year: 2010, Precision: PrecisionYear},
			End:   &EdtfDate{Year: 2020, Precision: PrecisionYear},
		}}},
		{"open start", "../2020", RefDate{Interval: &Interval{
			OpenStart: true,
			End:       &EdtfDate{Year: 2020, Precision: PrecisionYear},
		}}},
		{"open end", "2010/..", RefDate{Interval: &Interval{
			Start:   &EdtfDate{Year: 2010, Precision: PrecisionYear},
			OpenEnd: true,
		}}},
		{"literal", "Spring 2020", RefDate{Literal: "Spring 2020"}},
		{"empty", "", RefDate{Literal: ""}},
		{"short year rejected", "20", RefDate{Literal: "20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdtfString(tt.in).Parse()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRefDate_Year(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"point", "1999", 1999},
		{"interval", "1999/2005", 1999},
		{"open start interval", "../2005", 0},
		{"literal", "no date", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdtfString(tt.in).Parse().Year()
			if got != tt.want {
				t.Errorf("Year() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEdtfCanonicalRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Parse(d.String()) reproduces d", prop.ForAll(
		func(year, month, day int, uncertain, approximate bool) bool {
			d := &EdtfDate{Year: year}
			switch {
			case month != 0 && day != 0:
				d.Month, d.Day, d.Precision = month, day, PrecisionDay
			case month != 0:
				d.Month, d.Precision = month, PrecisionMonth
			default:
				d.Precision = PrecisionYear
			}
			d.Uncertain = uncertain
			d.Approximate = approximate

			str := d.String()
			got := EdtfString(str).Parse()
			if got.Date == nil {
				return false
			}
			return got.Date.Year == d.Year &&
				got.Date.Month == d.Month &&
				got.Date.Day == d.Day &&
				got.Date.Precision == d.Precision &&
				got.Date.Uncertain == d.Uncertain &&
				got.Date.Approximate == d.Approximate &&
				got.String() == str
		},
		gen.IntRange(0, 9999),
		gen.OneConstOf(0, 1, 6, 12),
		gen.OneConstOf(0, 1, 15, 28),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
