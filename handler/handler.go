package handler

import (
	"errors"
	"net/http"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/resp"
)

// Stable error codes API clients branch on.
const (
	codeNotFound       = "NOT_FOUND"
	codeExists         = "ALREADY_EXISTS"
	codeValidation     = "VALIDATION_FAILED"
	codeBadCredentials = "INVALID_CREDENTIALS"
	codeInternal       = "INTERNAL_ERROR"
)

// The UserStorer is the slice of user persistence handlers rely on.
type UserStorer interface {
	All() ([]urbanfix.User, error)
	Create(user *urbanfix.User) error
	Delete(id uint) error
	FindByEmailOrUsername(handle string) (urbanfix.User, error)
	FindByID(id uint) (urbanfix.User, error)
	UpdateRole(id uint, role urbanfix.Role) error
}

// respondErr renders err as the API error envelope,
// translating the module's sentinels into statuses and stable codes.
func respondErr(d *resp.Responder, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, urbanfix.ErrNotExist):
		d.Json(w, r, resp.Code(http.StatusNotFound), resp.ErrCode(codeNotFound, "Resource not found"))

	case errors.Is(err, urbanfix.ErrExists):
		d.Json(w, r, resp.Code(http.StatusConflict), resp.ErrCode(codeExists, "Resource already exists"))

	case errors.Is(err, urbanfix.ErrNotValid), errors.Is(err, urbanfix.ErrMissingData):
		d.Json(w, r,
			resp.Code(http.StatusUnprocessableEntity),
			resp.ErrCode(codeValidation, err.Error()),
		)

	default:
		d.Json(w, r,
			resp.Err(err),
			resp.Code(http.StatusInternalServerError),
			resp.ErrCode(codeInternal, "Something went wrong"),
		)
	}
}
