package handler

import (
	"errors"
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto the response envelope. Anything
// unexpected is a storage failure and surfaces as a generic 500, internal
// detail stays in the log.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErr usecase.ValidationError
	var forbiddenErr usecase.ForbiddenError

	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Error())
	case errors.As(err, &forbiddenErr):
		utils.Forbidden(c, forbiddenErr.Error())
	case errors.Is(err, usecase.ErrNoteNotFound):
		utils.NotFound(c, "note not found")
	case errors.Is(err, usecase.ErrDuplicateUser):
		utils.BadRequest(c, "user already exists, please log in instead")
	case errors.Is(err, usecase.ErrUserNotFound):
		utils.BadRequest(c, "user not found")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.BadRequest(c, "invalid password")
	default:
		log.Printf("%s: %v", fallback, err)
		utils.TrackError("storage", fallback)
		utils.InternalError(c, fallback)
	}
}
