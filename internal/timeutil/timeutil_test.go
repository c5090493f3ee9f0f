package timeutil

import (
	"math"
	"testing"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

func TestUnixJ2000(t *testing.T) {
	if UnixJ2000 != 946728000.0 {
		t.Errorf("UnixJ2000 = %v, want 946728000", UnixJ2000)
	}
}

func TestDaysFrom2000(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
	}{
		{
			name: "epoch itself",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 0.0,
		},
		{
			name: "2002-01-01 noon is exactly 731 days",
			time: time.Date(2002, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 731.0,
		},
		{
			name: "one day before the epoch",
			time: time.Date(1999, 12, 31, 12, 0, 0, 0, time.UTC),
			want: -1.0,
		},
		{
			name: "six hours past the epoch",
			time: time.Date(2000, 1, 1, 18, 0, 0, 0, time.UTC),
			want: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Whole and quarter days are exactly representable, so this
			// comparison is exact.
			if got := DaysFrom2000(tt.time); got != tt.want {
				t.Errorf("DaysFrom2000(%v) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestDaysFrom2000_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	local := time.Date(2002, 1, 1, 19, 0, 0, 0, loc) // 12:00 UTC
	if got := DaysFrom2000(local); got != 731.0 {
		t.Errorf("DaysFrom2000(%v) = %v, want 731", local, got)
	}
}

// The calendar and timestamp paths must agree for the same physical instant.
func TestJulianCenturiesPathsAgree(t *testing.T) {
	instants := []time.Time{
		time.Date(2002, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1990, 7, 4, 6, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 15, 3, 27, 45, 500_000_000, time.UTC),
	}
	for _, instant := range instants {
		sec := float64(instant.UnixNano()) / 1e9
		a := JulianCenturies(instant)
		b := JulianCenturiesFromTimestamp(sec)
		if diff := math.Abs(a - b); diff > 1e-12 {
			t.Errorf("%v: calendar path %v, timestamp path %v (diff=%.2e)", instant, a, b, diff)
		}
	}
}

// Cross-validate the day count against two independent Julian-day
// implementations: learnmeeus and go-satellite.
func TestDaysFrom2000_CrossCheck(t *testing.T) {
	const jdJ2000 = 2451545.0

	instants := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2002, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2004, 4, 6, 7, 51, 28, 0, time.UTC),
		time.Date(1990, 7, 4, 6, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 6, 4, 1, 0, 0, time.UTC),
	}
	for _, instant := range instants {
		got := DaysFrom2000(instant)

		ref := julian.TimeToJD(instant) - jdJ2000
		if diff := math.Abs(got - ref); diff > 1e-8 {
			t.Errorf("%v: DaysFrom2000 = %v, learnmeeus = %v (diff=%.2e)", instant, got, ref, diff)
		}

		refSat := satellite.JDay(
			instant.Year(), int(instant.Month()), instant.Day(),
			instant.Hour(), instant.Minute(), instant.Second(),
		) - jdJ2000
		if diff := math.Abs(got - refSat); diff > 1e-8 {
			t.Errorf("%v: DaysFrom2000 = %v, go-satellite = %v (diff=%.2e)", instant, got, refSat, diff)
		}
	}
}

func TestDegRadHelpers(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("Deg2Rad(180) = %v, want π", got)
	}
	if got := Rad2Deg(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("Rad2Deg(π/2) = %v, want 90", got)
	}
}
