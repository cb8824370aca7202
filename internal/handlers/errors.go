// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

// respondError maps service and store errors onto the response envelope.
// resource names the i18n prefix used for not found messages.
func respondError(c *gin.Context, err error, resource string) {
	var verrs services.ValidationErrors
	var idxErr *store.IndexMissingError

	switch {
	case errors.As(err, &verrs):
		utils.ValidationErrorResponse(c, verrs)
	case len(utils.GetValidationErrors(err)) > 0:
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	case errors.As(err, &idxErr):
		logrus.WithError(err).Error("Query needs a missing index")
		utils.IndexMissingResponse(c, gin.H{"query": idxErr.Query, "detail": idxErr.Detail})
	case errors.Is(err, store.ErrIndexMissing):
		logrus.WithError(err).Error("Query needs a missing index")
		utils.IndexMissingResponse(c, nil)
	case errors.Is(err, store.ErrPermissionDenied):
		logrus.WithError(err).Error("Data store denied the operation")
		utils.PermissionDeniedResponse(c, nil)
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	default:
		logrus.WithError(err).Error("Request failed")
		utils.InternalErrorResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyInternalError))
	}
}
