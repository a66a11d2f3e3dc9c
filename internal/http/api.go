package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nursery-api/internal/repository"
	"nursery-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	tokens    service.TokenService
	records   repository.RecordRepository
	dashboard service.DashboardService
	export    service.ExportService
}

func NewHandler(users service.UserService, tokens service.TokenService, records repository.RecordRepository, dashboard service.DashboardService, export service.ExportService) *Handler {
	return &Handler{
		users:     users,
		tokens:    tokens,
		records:   records,
		dashboard: dashboard,
		export:    export,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		protected := api.Group("", authMiddleware(h.tokens))
		for _, res := range recordResources() {
			protected.POST("/"+res.path, h.createRecord(res))
			protected.GET("/"+res.path, h.listRecords(res))
			protected.DELETE("/"+res.path+"/:id", h.deleteRecord(res))
		}
		protected.GET("/dashboard/stats", h.dashboardStats)
		protected.GET("/export/csv", h.exportCSV)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.issueToken(c, user.Username)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.issueToken(c, user.Username)
}

func (h *Handler) issueToken(c *gin.Context, username string) {
	token, err := h.tokens.Issue(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "issue token"})
		return
	}
	c.JSON(http.StatusOK, authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    username,
	})
}

func (h *Handler) createRecord(res recordResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := res.bind(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record.Kind = res.kind
		record.Owner = currentUser(c)

		if err := h.records.Create(c.Request.Context(), &record); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res.render(record))
	}
}

func (h *Handler) listRecords(res recordResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.records.ListByOwner(c.Request.Context(), res.kind, currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := make([]any, len(records))
		for i := range records {
			resp[i] = res.render(records[i])
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (h *Handler) deleteRecord(res recordResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := h.records.Delete(c.Request.Context(), res.kind, currentUser(c), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
	}
}

type dashboardResponse struct {
	TotalReceived  int     `json:"total_received"`
	TotalDead      int     `json:"total_dead"`
	TotalDiscarded int     `json:"total_discarded"`
	TotalProduced  int     `json:"total_produced"`
	TotalInNursery int     `json:"total_in_nursery"`
	SurvivalRate   float64 `json:"survival_rate"`
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{
		TotalReceived:  stats.TotalReceived,
		TotalDead:      stats.TotalDead,
		TotalDiscarded: stats.TotalDiscarded,
		TotalProduced:  stats.TotalProduced,
		TotalInNursery: stats.TotalInNursery,
		SurvivalRate:   stats.SurvivalRate,
	})
}

func (h *Handler) exportCSV(c *gin.Context) {
	data, filename, err := h.export.CSV(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
