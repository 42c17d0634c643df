package handler

import (
	"net/http"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/req"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/http/router"
)

// The RecyclePointStorer is the slice of recycle point persistence handlers rely on.
type RecyclePointStorer interface {
	All() ([]urbanfix.RecyclePoint, error)
	Create(point *urbanfix.RecyclePoint) error
	Delete(id uint) error
	FindByID(id uint) (urbanfix.RecyclePoint, error)
	Update(point *urbanfix.RecyclePoint) error
}

// A RecycleHandler owns the recycle point endpoints.
// Reads are public; writes are reserved for authority staff.
type RecycleHandler struct {
	d      *resp.Responder
	p      *req.Parser
	points RecyclePointStorer
}

func NewRecycleHandler(d *resp.Responder, p *req.Parser, points RecyclePointStorer) *RecycleHandler {
	return &RecycleHandler{d: d, p: p, points: points}
}

type recyclePointBody struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng         float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	OpeningHour string  `json:"openingHour"`
	ClosingHour string  `json:"closingHour"`
	Phone       string  `json:"phone"`
	ContactMail string  `json:"contactMail" validate:"omitempty,email"`
}

// List returns every drop-off site for the public map.
func (h *RecycleHandler) List(w http.ResponseWriter, r *http.Request) {
	points, err := h.points.All()
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(points))
}

// Get returns a single drop-off site.
func (h *RecycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	point, err := h.points.FindByID(id)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(point))
}

// Create registers a new drop-off site.
func (h *RecycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	point := bodyToPoint(body)
	if err := h.points.Create(&point); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Code(http.StatusCreated), resp.Data(point))
}

// Update overwrites a drop-off site's details.
func (h *RecycleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	point := bodyToPoint(body)
	point.ID = id
	if err := h.points.Update(&point); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(point))
}

// Delete removes a drop-off site.
func (h *RecycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := h.points.Delete(id); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(nil))
}

func (h *RecycleHandler) parseBody(w http.ResponseWriter, r *http.Request) (recyclePointBody, bool) {
	var body recyclePointBody
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		respondErr(h.d, w, r, err)
		return recyclePointBody{}, false
	}

	return body, true
}

func bodyToPoint(body recyclePointBody) urbanfix.RecyclePoint {
	return urbanfix.RecyclePoint{
		Name:        body.Name,
		Address:     body.Address,
		Description: body.Description,
		Lat:         body.Lat,
		Lng:         body.Lng,
		OpeningHour: body.OpeningHour,
		ClosingHour: body.ClosingHour,
		Phone:       body.Phone,
		ContactMail: body.ContactMail,
	}
}
