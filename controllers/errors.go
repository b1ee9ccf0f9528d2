package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

// respondStoreError maps business/store failures onto HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrInsufficientStock):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrItemNotFound):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// currentUser resolves the authenticated user from the token claims set by
// the auth middleware.
func currentUser(c *gin.Context, s store.Store) (*models.User, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}
	id, ok := userID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID in context")
		return nil, false
	}
	user, err := s.Users().GetByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return nil, false
	}
	return user, true
}
