package models

import (
	"encoding/json"
	"os"
)

// Track is the release seed loaded from JSON.
type Track struct {
	Artist    string             `json:"artist"`
	Release   string             `json:"release"`
	Following map[string]float64 `json:"following"`
	Beats     []Beat             `json:"beats"`
}

// Beat is one narrative event in a release timeline.
type Beat struct {
	T     float64 `json:"t"`
	Event string  `json:"event"`
	Delta Delta   `json:"delta"`
}

type Delta struct {
	Hype     float64 `json:"hype"`
	Press    float64 `json:"press"`
	Virality float64 `json:"virality"`
}

// PointFeature is a GeoJSON Point feature emitted by the geo generator.
type PointFeature struct {
	Type       string          `json:"type"`
	Properties PointProperties `json:"properties"`
	Geometry   PointGeometry   `json:"geometry"`
}

type PointProperties struct {
	Artist    string      `json:"artist"`
	Release   string      `json:"release"`
	Event     string      `json:"event"`
	Hype      float64     `json:"hype"`
	Press     float64     `json:"press"`
	Virality  float64     `json:"virality"`
	Proximity []Proximity `json:"proximity"`
	Timestamp int64       `json:"timestamp"`
}

// Proximity labels the region a point is moving toward.
type Proximity struct {
	Name     string  `json:"name"`
	Country  string  `json:"country"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"`
}

type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // lon, lat
}

// ReleaseState is the simulated release snapshot mutated by the ticker.
type ReleaseState struct {
	Artist          string             `json:"artist"`
	Release         string             `json:"release"`
	Event           string             `json:"event"`
	Hype            float64            `json:"hype"`     // 0..100
	Press           float64            `json:"press"`    // 0..100
	Virality        float64            `json:"virality"` // 0..1
	ListingPressure float64            `json:"listing_pressure"`
	Following       map[string]float64 `json:"following"`
	Sold            int                `json:"sold"`
	Editions        int                `json:"editions"`
	Floor           *float64           `json:"floor"`
}

// LoadTrack reads a release seed file.
func LoadTrack(path string) (Track, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Track{}, err
	}
	var track Track
	if err := json.Unmarshal(raw, &track); err != nil {
		return Track{}, err
	}
	return track, nil
}
