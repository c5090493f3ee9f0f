package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/nbren12/coszenith"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

// coszenith-profiler sweeps a time range at a fixed location, evaluating the
// cosine of the solar zenith angle through both the calendar-time and the
// UNIX-timestamp entry points. It reports value statistics, the daylight
// fraction, and the largest disagreement between the two paths, and can
// optionally dump the per-step samples as CSV.
func main() {
	log.SetFlags(0)

	var (
		lat      = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon      = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		startStr = flag.String("start", "", "UTC start time in RFC3339 or YYYY-MM-DD (optional, defaults to today 00:00 UTC)")
		hours    = flag.Float64("hours", 24, "length of the sweep in hours")
		step     = flag.Duration("step", 10*time.Minute, "sweep step (e.g. 30s, 10m, 1h)")
		outCSV   = flag.String("outcsv", "", "optional path to write per-step CSV (time,cos_zenith,daylight)")
	)

	flag.Parse()

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Did you mean to set -lat/-lon?")
	}
	if *hours <= 0 {
		log.Fatalf("-hours must be positive, got %v", *hours)
	}
	if *step <= 0 {
		log.Fatalf("-step must be positive, got %v", *step)
	}

	var start time.Time
	if *startStr == "" {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		start, err = parseUTCTime(*startStr)
		if err != nil {
			log.Fatalf("invalid -start %q: %v", *startStr, err)
		}
	}
	end := start.Add(time.Duration(*hours * float64(time.Hour)))

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{"time", "cos_zenith", "daylight"}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	var (
		valueStats  stats
		samples     int
		daylight    int
		maxPathDiff float64
	)

	for t := start; !t.After(end); t = t.Add(*step) {
		v := coszenith.CosZenithAngle(t, *lon, *lat)

		// Same instant through the arithmetic-only path; the two must
		// agree to floating-point tolerance.
		vTS := coszenith.CosZenithAngleFromTimestamp(float64(t.UnixNano())/1e9, *lon, *lat)
		if diff := math.Abs(v - vTS); diff > maxPathDiff {
			maxPathDiff = diff
		}

		valueStats.add(v)
		samples++
		if v > 0 {
			daylight++
		}

		if outWriter != nil {
			rec := []string{
				t.Format(time.RFC3339),
				fmt.Sprintf("%.9f", v),
				fmt.Sprintf("%t", v > 0),
			}
			if err := outWriter.Write(rec); err != nil {
				log.Printf("failed to write outcsv row at %v: %v", t, err)
			}
		}
	}

	fmt.Println("=== coszenith profiler summary ===")
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("Range:  %s .. %s (step %s)\n", start.Format(time.RFC3339), end.Format(time.RFC3339), *step)
	fmt.Printf("Samples: %d\n", samples)

	if valueStats.count == 0 {
		fmt.Println("No valid samples.")
		return
	}

	fmt.Println("\ncos(zenith):")
	fmt.Printf("  min:   %.6f\n", valueStats.min)
	fmt.Printf("  max:   %.6f\n", valueStats.max)
	fmt.Printf("  avg:   %.6f\n", valueStats.avg())

	fmt.Printf("\nDaylight fraction: %.1f%%\n", 100*float64(daylight)/float64(samples))
	fmt.Printf("Max calendar/timestamp path disagreement: %.3e\n", maxPathDiff)
}

func parseUTCTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		t, err = time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
