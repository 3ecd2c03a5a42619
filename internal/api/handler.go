package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xGiancox/Barberiaapp/internal/common"
	"github.com/xGiancox/Barberiaapp/internal/earnings"
	"github.com/xGiancox/Barberiaapp/internal/models"
	"github.com/xGiancox/Barberiaapp/internal/service"
)

// Handler holds the service and exposes the HTTP endpoints
type Handler struct {
	svc service.Service
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers all API routes on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/login", h.Login)
	}

	protected := api.Group("", AuthMiddleware())
	{
		protected.POST("/cuts", h.CreateHairCut)
		protected.GET("/cuts/day/:date", h.GetCalendarDay)
		protected.GET("/dashboard", h.GetDashboard)
		protected.GET("/summary/weekly", h.GetWeeklySummary)

		protected.POST("/sales", h.CreateProductSale)
		protected.GET("/sales", h.ListProductSales)
		protected.DELETE("/sales/:id", h.DeleteProductSale)

		protected.POST("/expenses", h.CreateExpense)
		protected.GET("/expenses", h.ListExpenses)

		protected.GET("/barbers", h.ListBarbers)
	}
}

// Authentication handlers
func (h *Handler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.svc.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Haircut handlers
func (h *Handler) CreateHairCut(c *gin.Context) {
	var req models.CreateHairCutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.svc.CreateHairCut(c.Request.Context(), principalFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetCalendarDay(c *gin.Context) {
	kind, userID := scopeParams(c)

	resp, err := h.svc.GetCalendarDay(
		c.Request.Context(), principalFromContext(c), c.Param("date"), kind, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	kind, userID := scopeParams(c)

	resp, err := h.svc.GetDashboard(c.Request.Context(), principalFromContext(c), kind, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetWeeklySummary(c *gin.Context) {
	weeksBack, err := strconv.Atoi(c.DefaultQuery("weeks_back", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "VALIDATION_ERROR",
			Message: "weeks_back must be an integer",
		})
		return
	}

	kind, userID := scopeParams(c)

	resp, err := h.svc.GetWeeklySummary(
		c.Request.Context(), principalFromContext(c), weeksBack, kind, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Product sale handlers
func (h *Handler) CreateProductSale(c *gin.Context) {
	var req models.CreateProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.svc.CreateProductSale(c.Request.Context(), principalFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListProductSales(c *gin.Context) {
	resp, err := h.svc.ListProductSales(c.Request.Context(), principalFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteProductSale(c *gin.Context) {
	err := h.svc.DeleteProductSale(c.Request.Context(), principalFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: "Product sale deleted successfully",
	})
}

// Expense handlers
func (h *Handler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.svc.CreateExpense(c.Request.Context(), principalFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListExpenses(c *gin.Context) {
	resp, err := h.svc.ListExpenses(c.Request.Context(), principalFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// User handlers
func (h *Handler) ListBarbers(c *gin.Context) {
	resp, err := h.svc.ListBarbers(c.Request.Context(), principalFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Helpers

// scopeParams reads the requested aggregation scope from the query string.
// A user_id without an explicit scope implies the specific-user scope.
func scopeParams(c *gin.Context) (earnings.ScopeKind, string) {
	kind := earnings.ScopeKind(c.Query("scope"))
	userID := c.Query("user_id")
	if kind == "" && userID != "" {
		kind = earnings.ScopeUser
	}
	return kind, userID
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "VALIDATION_ERROR",
		Message: err.Error(),
	})
}

func respondError(c *gin.Context, err error) {
	status := common.HTTPStatusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("unexpected error", "path", c.FullPath(), "error", err)
		message = "internal server error"
	}

	c.JSON(status, models.ErrorResponse{
		Status:  "error",
		Code:    common.CodeFromError(err),
		Message: message,
	})
}
