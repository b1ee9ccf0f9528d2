// controllers/user.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

// CreateUserInput defines the expected JSON structure for creating a staff account
type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"required,oneof=admin staff"`
}

type UserController struct {
	store store.Store
}

func NewUserController(s store.Store) *UserController {
	return &UserController{store: s}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.store.Users().List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := uc.store.Users().GetByUsername(input.Username); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already taken")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Username: input.Username,
		Password: hashed,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		IsActive: true,
	}

	if err := uc.store.Users().Create(&user); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ToggleUser flips the account's active flag. Accounts are deactivated, never
// hard-deleted.
func (uc *UserController) ToggleUser(c *gin.Context) {
	user, err := uc.store.Users().ToggleActive(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
