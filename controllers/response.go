package controllers

import (
	"errors"
	"net/http"

	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

// httpStatus maps a domain error kind onto a status code. Anything
// unclassified is a server error; its detail stays out of the response.
func httpStatus(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindInsufficientStock:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError translates a service error into the failure envelope.
// Server errors keep a generic message; their cause is attached to the gin
// context so the request logger records it.
func respondDomainError(c *gin.Context, err error) {
	status := httpStatus(err)
	message := "internal server error"
	var de *services.Error
	if errors.As(err, &de) && status != http.StatusInternalServerError {
		message = de.Message
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	utils.RespondWithError(c, status, message)
}
