package handler

import (
	"net/http"
	"path/filepath"

	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/resp"
)

// A PagesHandler serves the prebuilt HTML views.
//
// Pages carry no per-user data; the frontend fetches everything over the
// API after load, so views are plain files under the static directory.
type PagesHandler struct {
	d   *resp.Responder
	dir string
}

func NewPagesHandler(d *resp.Responder, staticDir string) *PagesHandler {
	return &PagesHandler{d: d, dir: staticDir}
}

// Index serves the public landing page with the report map.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "index.html")
}

// Login serves the login page,
// skipping straight to the home page when already signed in.
func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	if user, ok := middleware.CurrentUser(r.Context()); ok {
		h.d.Redirect(w, r, resp.Url(user.HomePath()))
		return
	}

	h.serve(w, r, "login.html")
}

// Dashboard serves the signed-in user's dashboard.
func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "dashboard.html")
}

// Admin serves the user management console.
func (h *PagesHandler) Admin(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "admin.html")
}

func (h *PagesHandler) serve(w http.ResponseWriter, r *http.Request, name string) {
	http.ServeFile(w, r, filepath.Join(h.dir, "views", name))
}
