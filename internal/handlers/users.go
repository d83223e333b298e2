package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgProfileUpdated  = "Profile updated"
	msgPasswordChanged = "Password changed"

	errUserNotFound = "User not found"
)

type updateProfileRequest struct {
	Username string `json:"username" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.PublicUser
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Profile.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load users", "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get one user
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  models.PublicUser
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.services.Profile.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load user", "user_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.Identity
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *Handler) currentUser(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, ident)
}

// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  updateProfileRequest  true  "New username"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req updateProfileRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Profile.Rename(c.Request.Context(), ident.ID, req.Username); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to update profile", "profile_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgProfileUpdated})
}

// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  changePasswordRequest  true  "Old and new password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/password [post]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req changePasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	err := h.services.Profile.ChangePassword(c.Request.Context(), ident.ID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid old password"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to change password", "password_change_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPasswordChanged})
}
