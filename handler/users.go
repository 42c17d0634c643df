package handler

import (
	"net/http"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/req"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/http/router"
)

// A UsersHandler owns the admin-only user management endpoints.
type UsersHandler struct {
	d     *resp.Responder
	p     *req.Parser
	users UserStorer
}

func NewUsersHandler(d *resp.Responder, p *req.Parser, users UserStorer) *UsersHandler {
	return &UsersHandler{d: d, p: p, users: users}
}

type updateRoleBody struct {
	Role urbanfix.Role `json:"role" validate:"required,enum"`
}

// List returns every active user.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.All()
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(users))
}

// Role returns the role held by a single user.
func (h *UsersHandler) Role(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(map[string]urbanfix.Role{"role": user.Role}))
}

// UpdateRole assigns a new role to a user.
func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	var body updateRoleBody
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := h.users.UpdateRole(id, body.Role); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(nil))
}

// Delete removes a user's account.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := h.users.Delete(id); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(nil))
}
