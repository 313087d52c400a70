package controllers

import (
	"net/http"

	"garagepro-backend/middleware"
	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type RepairItemController struct {
	ledger   *services.RepairLedger
	bookings *services.BookingManager
}

func NewRepairItemController(ledger *services.RepairLedger, bookings *services.BookingManager) *RepairItemController {
	return &RepairItemController{ledger: ledger, bookings: bookings}
}

type AddRepairItemInput struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	PartID    string  `json:"part_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
}

func (rc *RepairItemController) Add(c *gin.Context) {
	var input AddRepairItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := rc.ledger.AddItem(input.BookingID, input.PartID, input.Quantity, input.UnitPrice); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rc *RepairItemController) Delete(c *gin.Context) {
	bookingID, ok := paramID(c, "booking_id")
	if !ok {
		return
	}
	partID := c.Param("part_id")

	if err := rc.ledger.DeleteItem(bookingID, partID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListByBooking is readable by the booking's owner or an admin; the
// ownership check rides on BookingManager.Get.
func (rc *RepairItemController) ListByBooking(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	bookingID, ok := paramID(c, "booking_id")
	if !ok {
		return
	}

	if _, err := rc.bookings.Get(bookingID, actor); err != nil {
		respondDomainError(c, err)
		return
	}
	items, err := rc.ledger.ListByBooking(bookingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}
