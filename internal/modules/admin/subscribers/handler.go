package subscribers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/mwanjeronie/mailinglist/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admin", authMW)
	g.GET("/subscribers", h.list)
	g.GET("/subscribers/export", h.export)
}

// GET /admin/subscribers
func (h *Handler) list(c *gin.Context) {
	subs, err := h.svc.ListAll()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"data": subs})
}

// GET /admin/subscribers/export?status=active&event_type=Workshops&topic=Design
func (h *Handler) export(c *gin.Context) {
	filter := ExportFilter{
		Status:     c.DefaultQuery("status", StatusAll),
		EventTypes: c.QueryArray("event_type"),
		Topics:     c.QueryArray("topic"),
	}
	switch filter.Status {
	case StatusAll, StatusActive, StatusInactive:
	default:
		response.Err(c, apierr.Validation("Invalid status filter"))
		return
	}

	subs, err := h.svc.ListAll()
	if err != nil {
		response.Err(c, err)
		return
	}
	filtered := Filter(subs, filter)

	filename := fmt.Sprintf("subscribers_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := WriteCSV(c.Writer, filtered); err != nil {
		_ = c.Error(err)
	}
}
