package controllers

import (
	"net/http"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the brand and type reference tables.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

type NameInput struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CatalogController) ListBrands(c *gin.Context) {
	brands, err := cc.catalog.ListBrands()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brands": brands})
}

func (cc *CatalogController) GetBrand(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	brand, err := cc.catalog.GetBrand(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
}

func (cc *CatalogController) CreateBrand(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	brand, err := cc.catalog.CreateBrand(input.Name, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "brand": brand})
}

func (cc *CatalogController) UpdateBrand(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	brand, err := cc.catalog.UpdateBrand(id, input.Name, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
}

func (cc *CatalogController) DeleteBrand(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.catalog.DeleteBrand(id, actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Brand deleted"})
}

func (cc *CatalogController) ListTypes(c *gin.Context) {
	types, err := cc.catalog.ListTypes()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "types": types})
}

func (cc *CatalogController) GetType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := cc.catalog.GetType(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "type": t})
}

func (cc *CatalogController) CreateType(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	t, err := cc.catalog.CreateType(input.Name, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "type": t})
}

func (cc *CatalogController) UpdateType(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	t, err := cc.catalog.UpdateType(id, input.Name, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "type": t})
}

func (cc *CatalogController) DeleteType(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.catalog.DeleteType(id, actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Type deleted"})
}
