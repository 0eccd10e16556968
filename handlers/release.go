package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"release-pulse/geo"
	"release-pulse/models"
)

// GetRelease converts the release seed into the points array the map view
// expects. A missing or broken seed yields an empty array, never an error.
func (s *Server) GetRelease(c *gin.Context) {
	track, err := models.LoadTrack(s.SeedPath)
	if err != nil {
		log.Println("release load:", err)
		c.JSON(http.StatusOK, []models.PointFeature{})
		return
	}
	c.JSON(http.StatusOK, geo.TrackToPoints(track))
}

// GetReleaseState projects the seed's last beat into a flat state object.
func (s *Server) GetReleaseState(c *gin.Context) {
	track, err := models.LoadTrack(s.SeedPath)
	if err != nil {
		log.Println("release state load:", err)
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	var last models.Beat
	if n := len(track.Beats); n > 0 {
		last = track.Beats[n-1]
	}

	following := track.Following
	if len(following) == 0 {
		following = map[string]float64{
			"mainstream": 0.4,
			"tiktok":     0.3,
			"gallery":    0.1,
			"collectors": 0.1,
			"niche":      0.1,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":           track.Artist,
		"release":          track.Release,
		"event":            last.Event,
		"hype":             last.Delta.Hype,
		"press":            last.Delta.Press,
		"virality":         last.Delta.Virality,
		"following":        following,
		"listing_pressure": 0.15,
	})
}
