package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMarket returns the in-memory market snapshot verbatim.
func (s *Server) GetMarket(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Market())
}

// GetHurricane returns the in-memory hurricane track verbatim.
func (s *Server) GetHurricane(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Hurricane())
}
