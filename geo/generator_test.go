package geo

import (
	"math"
	"testing"

	"release-pulse/models"
)

func closeTo(got [2]float64, wantLon, wantLat float64) bool {
	return math.Abs(got[0]-wantLon) < 1e-9 && math.Abs(got[1]-wantLat) < 1e-9
}

func TestTrackToPointsNoBeats(t *testing.T) {
	points := TrackToPoints(models.Track{Artist: "x", Release: "y"})
	if points == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}

func TestDominantRegion(t *testing.T) {
	got := DominantRegion(map[string]float64{"a": 0.9, "b": 0.1})
	if got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := DominantRegion(nil); got != "" {
		t.Fatalf("expected empty for nil following, got %q", got)
	}
}

func TestDominantRegionTieBreak(t *testing.T) {
	got := DominantRegion(map[string]float64{"b": 0.5, "a": 0.5})
	if got != "a" {
		t.Fatalf("expected deterministic tie break to a, got %q", got)
	}
}

func TestStepCounts(t *testing.T) {
	track := models.Track{
		Following: map[string]float64{"gallery": 1.0},
		Beats: []models.Beat{
			{Event: "teaser"},
			{Event: "critic_preview"},
			{Event: "drop"},
		},
	}
	points := TrackToPoints(track)
	if len(points) != 4+4+8 {
		t.Fatalf("expected 16 points, got %d", len(points))
	}
}

func TestInterpolationBetweenEqualPoints(t *testing.T) {
	// An unknown home region has no anchor, so the walk starts at the default
	// anchor offset and every beat targets the current position.
	track := models.Track{
		Following: map[string]float64{"moon": 1.0},
		Beats:     []models.Beat{{Event: "drop"}},
	}
	points := TrackToPoints(track)
	if len(points) != 8 {
		t.Fatalf("expected 8 points, got %d", len(points))
	}
	first := points[0].Geometry.Coordinates
	for i, p := range points {
		if p.Geometry.Coordinates != first {
			t.Fatalf("point %d moved: %v != %v", i, p.Geometry.Coordinates, first)
		}
	}
}

func TestWalkStartsOffshoreAndLandsOnAnchor(t *testing.T) {
	track := models.Track{
		Following: map[string]float64{"gallery": 1.0},
		Beats:     []models.Beat{{Event: "drop"}},
	}
	points := TrackToPoints(track)
	if len(points) != 8 {
		t.Fatalf("expected 8 points, got %d", len(points))
	}

	anchor := regionAnchors["gallery"]
	last := points[len(points)-1].Geometry.Coordinates
	if !closeTo(last, anchor[0], anchor[1]) {
		t.Fatalf("expected final point on home anchor %v, got %v", anchor, last)
	}

	// First step covers 1/8 of the 10° westward offset.
	wantLon := (anchor[0] - 10.0) + 10.0/8.0
	got := points[0].Geometry.Coordinates
	if !closeTo(got, wantLon, anchor[1]) {
		t.Fatalf("unexpected first point %v, want lon %v lat %v", got, wantLon, anchor[1])
	}
}

func TestTimestampsMonotonic(t *testing.T) {
	track := models.Track{
		Following: map[string]float64{"gallery": 1.0},
		Beats:     []models.Beat{{Event: "teaser"}, {Event: "drop"}},
	}
	points := TrackToPoints(track)
	for i, p := range points {
		want := int64(i * stepMillis)
		if p.Properties.Timestamp != want {
			t.Fatalf("point %d timestamp %d, want %d", i, p.Properties.Timestamp, want)
		}
	}
}

func TestEventTargetsAndProximity(t *testing.T) {
	track := models.Track{
		Artist:    "Nova Aria",
		Release:   "Chromatic Drift",
		Following: map[string]float64{"gallery": 1.0},
		Beats: []models.Beat{
			{Event: "platform_boost", Delta: models.Delta{Hype: 10, Press: 4, Virality: 0.22}},
		},
	}
	points := TrackToPoints(track)
	anchor := regionAnchors["tiktok"]
	last := points[len(points)-1]

	if !closeTo(last.Geometry.Coordinates, anchor[0], anchor[1]) {
		t.Fatalf("platform_boost should land on tiktok anchor, got %v", last.Geometry.Coordinates)
	}
	prox := last.Properties.Proximity
	if len(prox) != 1 || prox[0].Name != "Tiktok" || prox[0].Lon != anchor[0] || prox[0].Lat != anchor[1] {
		t.Fatalf("unexpected proximity block: %+v", prox)
	}
	if last.Properties.Artist != "Nova Aria" || last.Properties.Hype != 10 || last.Properties.Virality != 0.22 {
		t.Fatalf("beat delta not carried onto points: %+v", last.Properties)
	}
}

func TestDeterministicReplay(t *testing.T) {
	track := models.Track{
		Following: map[string]float64{"niche": 0.6, "gallery": 0.4},
		Beats:     []models.Beat{{Event: "teaser"}, {Event: "award"}, {Event: "drop"}},
	}
	a := TrackToPoints(track)
	b := TrackToPoints(track)
	if len(a) != len(b) {
		t.Fatalf("replay length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Geometry != b[i].Geometry || a[i].Properties.Timestamp != b[i].Properties.Timestamp {
			t.Fatalf("replay diverged at point %d", i)
		}
	}
}
