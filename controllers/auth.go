package controllers

import (
	"net/http"
	"time"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	customers *services.CustomerService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthController(customers *services.CustomerService, jwtSecret string, ttlHours int) *AuthController {
	return &AuthController{
		customers: customers,
		jwtSecret: jwtSecret,
		tokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ac.customers.Register(services.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	token, err := utils.GenerateToken(utils.TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}, ac.jwtSecret, ac.tokenTTL)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ac.customers.Authenticate(input.Email, input.Password)
	if err != nil {
		if services.KindOf(err) == services.KindValidation {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondDomainError(c, err)
		return
	}

	token, err := utils.GenerateToken(utils.TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}, ac.jwtSecret, ac.tokenTTL)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	user, err := ac.customers.Get(actor.ID, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
