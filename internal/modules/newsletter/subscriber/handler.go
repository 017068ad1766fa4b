package subscriber

import (
	"github.com/gin-gonic/gin"
	"github.com/mwanjeronie/mailinglist/internal/models"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/mwanjeronie/mailinglist/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter", h.subscribe)
	rg.POST("/unsubscribe", h.unsubscribe)
	rg.GET("/options", h.options)
}

// POST /newsletter
func (h *Handler) subscribe(c *gin.Context) {
	var dto SubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Err(c, apierr.Validation("Invalid request body"))
		return
	}
	sub, err := h.svc.Subscribe(&dto)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "Successfully subscribed to newsletter!",
		"data":    []*models.SubscriberModel{sub},
	})
}

// POST /unsubscribe
func (h *Handler) unsubscribe(c *gin.Context) {
	var dto UnsubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Err(c, apierr.Validation("Invalid unsubscribe token"))
		return
	}
	if err := h.svc.Unsubscribe(dto.Token); err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Successfully unsubscribed"})
}

// GET /options returns the fixed lists the forms render.
func (h *Handler) options(c *gin.Context) {
	response.OK(c, gin.H{
		"event_types": EventTypeOptions,
		"topics":      TopicOptions,
	})
}
