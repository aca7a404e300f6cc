package api

import (
	"errors"
	"net/http"

	reqdto "bagtrack/internal/handler/dto/request"
	resdto "bagtrack/internal/handler/dto/response"
	"bagtrack/internal/handler/middleware"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/commands"
	"bagtrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Send verification code
// @Description Send a one-time code to the given phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SendCodeRequest true "Send code request"
// @Success 200 {object} resdto.SendCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/otp/send [post]
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req reqdto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.SendCode(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		case errors.Is(err, errs.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many codes requested, try again later",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSendCodeResult(result))
}

// @Summary Verify code
// @Description Verify the one-time code and issue an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyCodeRequest true "Verify code request"
// @Success 200 {object} resdto.VerifyCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.VerifyCode(c.Request.Context(), req.SessionID, req.PhoneNumber, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		case errors.Is(err, errs.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Verification session not found",
			})
		case errors.Is(err, errs.ErrSessionExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Verification code expired",
			})
		case errors.Is(err, errs.ErrSessionConsumed):
			c.JSON(http.StatusGone, gin.H{
				"error": "Verification code already used",
			})
		case errors.Is(err, errs.ErrCodeMismatch):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Incorrect verification code",
			})
		case errors.Is(err, errs.ErrTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many failed attempts",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyCodeResult(result))
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Logout
// @Description Logout current session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless tokens: the client discards its copy, nothing to do here.
	c.Status(http.StatusNoContent)
}
