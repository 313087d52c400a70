package controllers

import (
	"net/http"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type BanInput struct {
	Reason string `json:"reason" binding:"required"`
}

func (cc *CustomerController) List(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	customers, err := cc.customers.List(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customers": customers})
}

func (cc *CustomerController) Get(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	customer, err := cc.customers.Get(id, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

func (cc *CustomerController) Update(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	customer, err := cc.customers.UpdateProfile(id, services.UpdateProfileInput{
		Name:  input.Name,
		Phone: input.Phone,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

func (cc *CustomerController) Delete(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.customers.Delete(id, actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted"})
}

// UpdateProfile updates the caller's own profile.
func (cc *CustomerController) UpdateProfile(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	customer, err := cc.customers.UpdateProfile(actor.ID, services.UpdateProfileInput{
		Name:  input.Name,
		Phone: input.Phone,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": customer})
}

func (cc *CustomerController) ChangePassword(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := cc.customers.ChangePassword(actor.ID, input.OldPassword, input.NewPassword, actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed"})
}

func (cc *CustomerController) Ban(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input BanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	customer, err := cc.customers.Ban(id, input.Reason, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

func (cc *CustomerController) Unban(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	customer, err := cc.customers.Unban(id, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}
