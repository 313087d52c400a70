package controllers

import (
	"net/http"
	"strconv"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingManager
}

func NewBookingController(bookings *services.BookingManager) *BookingController {
	return &BookingController{bookings: bookings}
}

type CreateBookingInput struct {
	VehicleID         uint   `json:"vehicle_id" binding:"required"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	Description       string `json:"description"`
	TransportRequired bool   `json:"transport_required"`
}

// UpdateBookingInput carries either a status transition or a charge update.
type UpdateBookingInput struct {
	StatusID *uint    `json:"status_id"`
	Service  *float64 `json:"service"`
	Freight  *float64 `json:"freight"`
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func (bc *BookingController) Create(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.bookings.Create(services.CreateBookingInput{
		VehicleID:         input.VehicleID,
		Date:              input.Date,
		TimeSlot:          input.Time,
		Description:       input.Description,
		TransportRequired: input.TransportRequired,
	}, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

func (bc *BookingController) Get(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	booking, err := bc.bookings.Get(id, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	total, err := bc.bookings.Total(id, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking, "total": total})
}

func (bc *BookingController) ListMine(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	bookings, err := bc.bookings.ListMine(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

func (bc *BookingController) ListAll(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	bookings, err := bc.bookings.ListAll(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

func (bc *BookingController) Update(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	switch {
	case input.StatusID != nil:
		booking, err := bc.bookings.UpdateStatus(id, *input.StatusID, actor)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
	case input.Service != nil || input.Freight != nil:
		service, freight := 0.0, 0.0
		if input.Service != nil {
			service = *input.Service
		}
		if input.Freight != nil {
			freight = *input.Freight
		}
		booking, err := bc.bookings.UpdateCharges(id, service, freight, actor)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Nothing to update")
	}
}
