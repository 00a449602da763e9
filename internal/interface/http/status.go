package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fgcplatform/identity/internal/application"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
	"github.com/fgcplatform/identity/pkg/response"
)

// statusFor maps use-case failures onto the HTTP error taxonomy:
// validation → 400, missing resource → 404, bad credentials → 401,
// missing admin authority → 403 (same code the role middleware uses),
// conflict → 409, anything else → 500.
func statusFor(err error) int {
	var verr valueobject.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrInactiveUser),
		errors.Is(err, application.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrAdminRequired),
		errors.Is(err, application.ErrInactiveAdmin):
		return http.StatusForbidden
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrSelfDemotion),
		errors.Is(err, application.ErrNotAnAdmin),
		errors.Is(err, application.ErrInactiveTarget),
		errors.Is(err, application.ErrAlreadyInactive),
		errors.Is(err, application.ErrAlreadyActive):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the mapped error response, hiding internals on 500s.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		response.Fail(c, status, "internal error", nil)
		return
	}
	response.Fail(c, status, err.Error(), nil)
}
