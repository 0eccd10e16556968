package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"release-pulse/state"
)

// Server carries the handler dependencies.
type Server struct {
	DB       *gorm.DB
	Store    *state.Store
	SeedPath string
}

// Register wires all routes, including the legacy /fud aliases.
func (s *Server) Register(r *gin.Engine) {
	r.GET("/", s.Root)
	r.GET("/release", s.GetRelease)
	r.GET("/release_state", s.GetReleaseState)
	r.GET("/chat", s.GetChat)
	r.POST("/userchat", s.PostChat)
	r.POST("/email", s.PostEmail)
	r.GET("/hurricane", s.GetHurricane)
	r.GET("/market", s.GetMarket)

	fud := r.Group("/fud")
	{
		fud.GET("/chat", s.GetChat)
		fud.GET("/market", s.GetMarket)
		fud.GET("/hurricane", s.GetHurricane)
		fud.POST("/userchat", s.PostChat)
		fud.GET("/release", s.GetRelease)
		fud.GET("/release_state", s.GetReleaseState)
	}
}

func (s *Server) Root(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
