package handlers

import (
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"release-pulse/models"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

// PostEmail validates and stores a mailing-list signup.
func (s *Server) PostEmail(c *gin.Context) {
	email := c.PostForm("email")
	if !emailPattern.MatchString(email) {
		c.String(http.StatusOK, "invalid email")
		return
	}

	if err := s.DB.Create(&models.EmailSignup{Email: email}).Error; err != nil {
		log.Println("email insert:", err)
	}
	c.String(http.StatusOK, "valid email")
}
