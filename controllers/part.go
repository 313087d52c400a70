package controllers

import (
	"net/http"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type PartController struct {
	catalog *services.CatalogService
}

func NewPartController(catalog *services.CatalogService) *PartController {
	return &PartController{catalog: catalog}
}

type CreatePartInput struct {
	Name      string  `json:"partname" binding:"required"`
	Marque    string  `json:"marque"`
	Quantity  int     `json:"quantity" binding:"min=0"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
}

type UpdatePartInput struct {
	Name      *string  `json:"partname"`
	Marque    *string  `json:"marque"`
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

func (pc *PartController) List(c *gin.Context) {
	parts, err := pc.catalog.ListParts()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "parts": parts})
}

func (pc *PartController) Get(c *gin.Context) {
	part, err := pc.catalog.GetPart(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "part": part})
}

func (pc *PartController) Create(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var input CreatePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part, err := pc.catalog.CreatePart(services.CreatePartInput{
		Name:      input.Name,
		Marque:    input.Marque,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "part": part})
}

func (pc *PartController) Update(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var input UpdatePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part, err := pc.catalog.UpdatePart(c.Param("id"), services.UpdatePartInput{
		Name:      input.Name,
		Marque:    input.Marque,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "part": part})
}

func (pc *PartController) Delete(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	if err := pc.catalog.DeletePart(c.Param("id"), actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Part deleted"})
}
