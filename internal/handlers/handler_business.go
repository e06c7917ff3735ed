package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
	"github.com/bbroker-app/bbroker_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests for business onboarding and discovery.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

// newBusinessHandler creates a new businessHandler.
func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{
		businessService: bs,
	}
}

// registerBusinessRoutes registers all business-related routes.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("/setup", h.setupBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:id", h.getBusiness)
	}
}

// setupBusiness godoc
// @Summary Create the caller's business profile
// @Description Runs the one-time onboarding flow: validates the setup wizard input, creates the business profile, activates the business persona and grants the setup reward
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body dto.BusinessSetupRequest true "Business setup details"
// @Success 201 {object} dto.BusinessSetupResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Business profile already exists"
// @Failure 500 {object} ErrorResponse "Failed to create business profile"
// @Security BearerAuth
// @Router /businesses/setup [post]
func (h *businessHandler) setupBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.BusinessSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for business setup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, reward, err := h.businessService.CreateBusinessProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Business profile already exists"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to create business profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create business profile"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.BusinessSetupResponse{
		BusinessProfile: dto.ToBusinessResponse(business),
		RewardAmount:    reward,
	})
}

// listBusinesses godoc
// @Summary List business profiles
// @Description Lists businesses, optionally filtered to a radius in kilometers around a coordinate
// @Tags businesses
// @Produce json
// @Param lat query number false "Latitude of the search center"
// @Param lng query number false "Longitude of the search center"
// @Param radius query number false "Radius in kilometers"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list businesses"
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBusinessesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business profile by ID
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve business"
// @Security BearerAuth
// @Router /businesses/{id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	businessID := c.Param("id")
	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
			return
		}
		logger.Error("Failed to retrieve business", slog.String("business_id", businessID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve business"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
