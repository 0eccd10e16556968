package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"release-pulse/models"
)

// Substrings that keep a chat message out of the table. "testblacklist" is
// the sentinel the integration checks post.
var denylist = []string{
	"testblacklist",
	"bitch",
	"whore",
	"retard",
	"cunt",
	"faggot",
}

func containsDenylisted(s string) bool {
	for _, word := range denylist {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

// PostChat inserts a chat row unless the user or message trips the denylist.
func (s *Server) PostChat(c *gin.Context) {
	user := c.PostForm("user")
	chatString := c.PostForm("chat_string")

	if containsDenylisted(user) || containsDenylisted(chatString) {
		log.Println("blocked chat message")
		c.String(http.StatusOK, "you can't say that")
		return
	}

	row := models.ChatMessage{
		Timestamp:  time.Now().UTC().Format("2006-01-02 15:04:05"),
		User:       user,
		ChatString: chatString,
		EntityType: "person",
	}
	if err := s.DB.Create(&row).Error; err != nil {
		log.Println("chat insert:", err)
	}
	c.String(http.StatusOK, "chat")
}

// GetChat returns the last 20 chat rows in ascending id order.
func (s *Server) GetChat(c *gin.Context) {
	var rows []models.ChatMessage
	if err := s.DB.Order("id DESC").Limit(20).Find(&rows).Error; err != nil {
		log.Println("chat query:", err)
		c.String(http.StatusOK, "chat")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		out = append(out, gin.H{
			"timestamp":  r.Timestamp,
			"agent":      r.User,
			"chat":       r.ChatString,
			"entityType": r.EntityType,
		})
	}
	c.JSON(http.StatusOK, out)
}
