package controllers

import (
	"errors"
	"net/http"

	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/utils"
	"github.com/gin-gonic/gin"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var ErrNoReportData = &CustomError{"No purchase data to analyze"}

// respondRepoError maps the repository error taxonomy onto HTTP codes:
// missing targets 404, constraint violations 409, bad input 400 and
// anything else 500. One failed action never ends the session.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case repositories.IsConstraint(err):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, repositories.ErrInvalidInput):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
