package geo

import (
	"strings"

	"release-pulse/models"
)

// Anchor coordinates per audience region (lon, lat).
var regionAnchors = map[string][2]float64{
	"gallery":    {-73.9857, 40.7580},  // NYC-ish
	"tiktok":     {139.6917, 35.6895},  // Tokyo-ish
	"mainstream": {2.3522, 48.8566},    // Paris-ish
	"collectors": {-0.1276, 51.5072},   // London-ish
	"niche":      {18.4233, -33.9180},  // Cape Town-ish
}

// Region a given event aims toward. Empty string means the home region
// (dominant following), so a drop heads for the artist's own crowd.
var eventToRegion = map[string]string{
	"teaser":           "niche",
	"collab_reveal":    "mainstream",
	"critic_preview":   "gallery",
	"drop":             "",
	"record_sale":      "collectors",
	"controversy":      "mainstream",
	"award":            "gallery",
	"platform_boost":   "tiktok",
	"supply_extension": "collectors",
}

const defaultRegion = "mainstream"

// Spacing between consecutive point timestamps.
const stepMillis = 200

// DominantRegion returns the highest-weighted region of a following map,
// or "" when the map is empty. Ties break toward the lexicographically
// smaller name so output stays deterministic.
func DominantRegion(following map[string]float64) string {
	best := ""
	var bestWeight float64
	for name, weight := range following {
		if best == "" || weight > bestWeight || (weight == bestWeight && name < best) {
			best = name
			bestWeight = weight
		}
	}
	return best
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// TrackToPoints converts a release track into an ordered sequence of GeoJSON
// point features. The walk starts 10° west of the home anchor and, beat by
// beat, interpolates toward each event's target region. Deterministic for a
// given track.
func TrackToPoints(track models.Track) []models.PointFeature {
	home := DominantRegion(track.Following)
	if home == "" {
		home = defaultRegion
	}

	start, ok := regionAnchors[home]
	if !ok {
		start = regionAnchors[defaultRegion]
	}
	curLon, curLat := start[0]-10.0, start[1]

	features := make([]models.PointFeature, 0)
	var ts int64

	for _, beat := range track.Beats {
		ev := strings.TrimSpace(beat.Event)

		region := home
		if target, known := eventToRegion[ev]; known && target != "" {
			region = target
		}

		// Unknown region name: hold position instead of jumping.
		targetLon, targetLat := curLon, curLat
		if anchor, known := regionAnchors[region]; known {
			targetLon, targetLat = anchor[0], anchor[1]
		}

		// Short hops for small events, longer arcs for big moments.
		steps := 8
		if ev == "teaser" || ev == "critic_preview" {
			steps = 4
		}

		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			features = append(features, models.PointFeature{
				Type: "Feature",
				Properties: models.PointProperties{
					Artist:   track.Artist,
					Release:  track.Release,
					Event:    ev,
					Hype:     beat.Delta.Hype,
					Press:    beat.Delta.Press,
					Virality: beat.Delta.Virality,
					Proximity: []models.Proximity{{
						Name: capitalize(region),
						Lat:  targetLat,
						Lon:  targetLon,
					}},
					Timestamp: ts,
				},
				Geometry: models.PointGeometry{
					Type:        "Point",
					Coordinates: [2]float64{lerp(curLon, targetLon, t), lerp(curLat, targetLat, t)},
				},
			})
			ts += stepMillis
		}

		curLon, curLat = targetLon, targetLat
	}

	return features
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
