package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                   "healthy",
		"model":                    s.cfg.Gateway.Model,
		"default_token_configured": s.token != "",
	})
}

func (s *Server) IndexHandler(c *gin.Context) {
	// curl users get usage instead of a form
	if strings.Contains(strings.ToLower(c.GetHeader("User-Agent")), "curl") {
		c.JSON(http.StatusOK, gin.H{
			"message": "fluxgate image generator",
			"privacy": "tokens and full prompts are never logged or stored",
			"endpoints": gin.H{
				"generate": "POST /generate-image",
				"health":   "GET /health",
			},
			"example": `curl -X POST localhost:8000/generate-image -H "Content-Type: application/json" -d '{"prompt": "a cat"}' --output image.png`,
		})
		return
	}

	html, err := s.templator.Template(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
