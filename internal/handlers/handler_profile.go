package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bbroker-app/bbroker_backend/internal/apperrors"
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	portssvc "github.com/bbroker-app/bbroker_backend/internal/core/ports/services"
	"github.com/bbroker-app/bbroker_backend/internal/dto"
	"github.com/bbroker-app/bbroker_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests for persona status and switching.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// newProfileHandler creates a new profileHandler.
func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{
		profileService: ps,
	}
}

// registerProfileRoutes registers all persona-related routes.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	users := rg.Group("/users")
	{
		users.GET("/profile-status", h.getProfileStatus)
		users.POST("/switch-profile", h.switchProfile)
	}
}

// getProfileStatus godoc
// @Summary Get the caller's profile status
// @Description Returns the active persona, whether a business profile exists, and the profile payload when it does
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileStatusResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve profile status"
// @Security BearerAuth
// @Router /users/profile-status [get]
func (h *profileHandler) getProfileStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	status, err := h.profileService.GetProfileStatus(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to retrieve profile status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve profile status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// switchProfile godoc
// @Summary Switch the active persona
// @Description Activates the requested persona. Switching to business without a business profile returns 400 with needsSetup=true so the client can launch onboarding
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.SwitchProfileRequest true "Target persona"
// @Success 200 {object} dto.SwitchProfileResponse
// @Failure 400 {object} map[string]interface{} "Invalid persona, or business setup required"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to switch profile"
// @Security BearerAuth
// @Router /users/switch-profile [post]
func (h *profileHandler) switchProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SwitchProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for switch profile request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.profileService.SwitchProfile(c.Request.Context(), userID, domain.ProfileType(req.ProfileType))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to switch profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to switch profile"})
		}
		return
	}

	if result.NeedsSetup {
		// Not an error on the service side, but the client must run the
		// setup wizard before the business persona is reachable.
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Business profile setup required",
			"needsSetup":     true,
			"currentProfile": result.CurrentProfile,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SwitchProfileResponse{
		Success:        true,
		CurrentProfile: result.CurrentProfile,
		Message:        "Profile switched to " + string(result.CurrentProfile),
	})
}
