package controllers

import (
	"net/http"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	vehicles *services.VehicleRegistry
}

func NewVehicleController(vehicles *services.VehicleRegistry) *VehicleController {
	return &VehicleController{vehicles: vehicles}
}

type CreateVehicleInput struct {
	OwnerID      uint   `json:"owner_id"` // admin only; ignored otherwise
	LicensePlate string `json:"license_plate" binding:"required"`
	Model        string `json:"model" binding:"required"`
	BrandID      uint   `json:"brand_id" binding:"required"`
	TypeID       uint   `json:"type_id" binding:"required"`
}

type UpdateVehicleInput struct {
	OwnerID      *uint   `json:"owner_id"`
	LicensePlate *string `json:"license_plate"`
	Model        *string `json:"model"`
	BrandID      *uint   `json:"brand_id"`
	TypeID       *uint   `json:"type_id"`
}

func (vc *VehicleController) Create(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var input CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	vehicle, err := vc.vehicles.Create(services.CreateVehicleInput{
		OwnerID:      input.OwnerID,
		LicensePlate: input.LicensePlate,
		Model:        input.Model,
		BrandID:      input.BrandID,
		TypeID:       input.TypeID,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "vehicle": vehicle})
}

func (vc *VehicleController) Get(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	vehicle, err := vc.vehicles.GetByID(id, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": vehicle})
}

func (vc *VehicleController) ListMine(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	vehicles, err := vc.vehicles.ListMine(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": vehicles})
}

func (vc *VehicleController) ListAll(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	vehicles, err := vc.vehicles.ListAll(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": vehicles})
}

func (vc *VehicleController) Update(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	vehicle, err := vc.vehicles.Update(id, services.UpdateVehicleInput{
		OwnerID:      input.OwnerID,
		LicensePlate: input.LicensePlate,
		Model:        input.Model,
		BrandID:      input.BrandID,
		TypeID:       input.TypeID,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": vehicle})
}

func (vc *VehicleController) Delete(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := vc.vehicles.Delete(id, actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted"})
}
