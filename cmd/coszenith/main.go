package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/nbren12/coszenith"
)

func main() {
	log.SetFlags(0)

	var (
		lat       = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon       = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		timeStr   = flag.String("time", "", "UTC time in RFC3339 or 'YYYY-MM-DDTHH:MM' (optional, defaults to now)")
		timestamp = flag.Float64("timestamp", math.NaN(), "UNIX timestamp in seconds (overrides -time)")
		jsonOut   = flag.Bool("json", false, "output result as JSON")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `coszenith – cosine of the solar zenith angle

Usage:
  coszenith [flags]

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
	}

	var (
		when  time.Time
		value float64
	)

	switch {
	case !math.IsNaN(*timestamp):
		// The pure-arithmetic path; the printed time is derived only for
		// display.
		value = coszenith.CosZenithAngleFromTimestamp(*timestamp, *lon, *lat)
		sec, frac := math.Modf(*timestamp)
		when = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	case *timeStr == "":
		when = time.Now().UTC()
		value = coszenith.CosZenithAngle(when, *lon, *lat)
	default:
		var err error
		when, err = parseUTCTime(*timeStr)
		if err != nil {
			log.Fatalf("could not parse -time %q: %v", *timeStr, err)
		}
		value = coszenith.CosZenithAngle(when, *lon, *lat)
	}

	daylight := value > 0

	if *jsonOut {
		printJSON(when, *lat, *lon, value, daylight)
		return
	}

	fmt.Printf("Cosine of solar zenith angle for lat=%.6f lon=%.6f\n", *lat, *lon)
	fmt.Printf("Time: %s\n\n", when.Format(time.RFC3339Nano))
	fmt.Printf("cos(zenith): %.9f\n", value)
	if daylight {
		fmt.Println("Sun:         above the horizon")
	} else {
		fmt.Println("Sun:         below the horizon")
	}
}

func parseUTCTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
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

type jsonOutput struct {
	Time      string  `json:"time"` // RFC3339, UTC
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CosZenith float64 `json:"cos_zenith"`
	Daylight  bool    `json:"daylight"`
}

func printJSON(when time.Time, lat, lon, value float64, daylight bool) {
	out := jsonOutput{
		Time:      when.Format(time.RFC3339Nano),
		Latitude:  lat,
		Longitude: lon,
		CosZenith: value,
		Daylight:  daylight,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}
