package server

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/dmorgan81/fluxgate/internal/image"
	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/dmorgan81/fluxgate/internal/param"
	"github.com/dmorgan81/fluxgate/internal/request"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (s *Server) GenerateHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var raw request.Raw
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	gen, err := request.Validate(raw, s.cfg.Limits)
	if err != nil {
		var verr *request.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := lo.Ternary(gen.Token != "", gen.Token, s.token)
	logger := log.FromContextOrDiscard(ctx).WithGroup("generate").With(
		"prompt", log.Truncate(gen.Prompt, 50),
		"width", gen.Width,
		"height", gen.Height,
		"token", param.Hash(token),
	)
	logger.Info("handling generation request")

	data, contentType, err := s.generator.Generate(ctx, gen.ToImageParams())
	if err != nil {
		s.collector.ObserveGeneration("failure")
		logger.Error("generation failed", "err", err)
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	s.collector.ObserveGeneration("success")
	logger.Info("generation succeeded", "bytes", len(data))

	if gen.ReturnFormat == request.FormatBase64 {
		c.JSON(http.StatusOK, gin.H{
			"image_base64": base64.StdEncoding.EncodeToString(data),
			"width":        gen.Width,
			"height":       gen.Height,
			"format":       contentType,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=generated-image.png`)
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, contentType, data)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, image.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, image.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, image.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, image.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
