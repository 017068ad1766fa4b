package suggestion

import (
	"github.com/gin-gonic/gin"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/mwanjeronie/mailinglist/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", h.submit)
}

// POST /suggestions
func (h *Handler) submit(c *gin.Context) {
	var dto SuggestionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Err(c, apierr.Validation("Invalid request body"))
		return
	}
	if err := h.svc.Submit(&dto); err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Suggestion submitted successfully!"})
}
