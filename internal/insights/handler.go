package insights

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /options
// --------------------------------------------------
func (h *Handler) Options(c *gin.Context) {
	options, err := h.service.Options()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, options)
}

// --------------------------------------------------
// POST /predict
// --------------------------------------------------
func (h *Handler) Predict(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Estimate(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /health
// --------------------------------------------------
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health())
}

// statusFor maps the service error taxonomy onto status codes: client
// mistakes are 400, an empty filter result is 404, everything about the
// dataset or the computation itself is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, ErrLocationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
