package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/handler"
	"github.com/urbanfix/urbanfix/http/router"
)

// fnRecycleStore stubs handler.RecyclePointStorer.
type fnRecycleStore struct {
	all    func() ([]urbanfix.RecyclePoint, error)
	create func(*urbanfix.RecyclePoint) error
	delete func(uint) error
	findID func(uint) (urbanfix.RecyclePoint, error)
	update func(*urbanfix.RecyclePoint) error
}

func (s fnRecycleStore) All() ([]urbanfix.RecyclePoint, error) {
	if s.all == nil {
		return nil, nil
	}
	return s.all()
}

func (s fnRecycleStore) Create(p *urbanfix.RecyclePoint) error {
	if s.create == nil {
		return nil
	}
	return s.create(p)
}

func (s fnRecycleStore) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

func (s fnRecycleStore) FindByID(id uint) (urbanfix.RecyclePoint, error) {
	if s.findID == nil {
		return urbanfix.RecyclePoint{}, urbanfix.ErrNotExist
	}
	return s.findID(id)
}

func (s fnRecycleStore) Update(p *urbanfix.RecyclePoint) error {
	if s.update == nil {
		return nil
	}
	return s.update(p)
}

func TestRecycleList(t *testing.T) {
	// Arrange
	d, p := testResponder(t)
	h := handler.NewRecycleHandler(d, p, fnRecycleStore{
		all: func() ([]urbanfix.RecyclePoint, error) {
			return []urbanfix.RecyclePoint{{Name: "EcoPunct Mărăști"}, {Name: "EcoPunct Zorilor"}}, nil
		},
	})

	// Act
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/recycle-points", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)

	var points []urbanfix.RecyclePoint
	e := decodeEnvelope(t, w)
	require.True(t, e.Success)
	require.Nil(t, json.Unmarshal(e.Data, &points))
	require.Len(t, points, 2)
}

func TestRecycleCreate(t *testing.T) {
	// Arrange
	d, p := testResponder(t)

	var created urbanfix.RecyclePoint
	h := handler.NewRecycleHandler(d, p, fnRecycleStore{
		create: func(point *urbanfix.RecyclePoint) error {
			point.ID = 7
			created = *point
			return nil
		},
	})

	body := `{
		"name": "EcoPunct Mărăști",
		"address": "Str. Fabricii 2",
		"lat": 46.78,
		"lng": 23.62,
		"openingHour": "08:00",
		"closingHour": "18:00",
		"contactMail": "eco@example.com"
	}`

	// Act
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/recycle-points", strings.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "EcoPunct Mărăști", created.Name)
	require.Equal(t, uint(7), created.ID)
}

func TestRecycleCreateValidates(t *testing.T) {
	// Arrange
	d, p := testResponder(t)
	h := handler.NewRecycleHandler(d, p, fnRecycleStore{})

	tcs := []struct {
		name string
		body string
	}{
		{"Missing-Name", `{"address":"Str. Fabricii 2","lat":46.78,"lng":23.62}`},
		{"Bad-Latitude", `{"name":"EcoPunct","address":"Str. Fabricii 2","lat":123.0,"lng":23.62}`},
		{"Bad-Email", `{"name":"EcoPunct","address":"Str. Fabricii 2","lat":46.78,"lng":23.62,"contactMail":"nope"}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := httptest.NewRecorder()
			h.Create(w, httptest.NewRequest(http.MethodPost, "/api/recycle-points", strings.NewReader(tc.body)))

			// Assert
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			require.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, w).Error.Code)
		})
	}
}

func TestRecycleUpdate(t *testing.T) {
	// Arrange
	d, p := testResponder(t)

	var updated urbanfix.RecyclePoint
	h := handler.NewRecycleHandler(d, p, fnRecycleStore{
		update: func(point *urbanfix.RecyclePoint) error {
			updated = *point
			return nil
		},
	})

	body := `{"name":"EcoPunct Zorilor","address":"Str. Observatorului 3","lat":46.75,"lng":23.58}`
	r := withParams(httptest.NewRequest(http.MethodPut, "/api/recycle-points/3", strings.NewReader(body)), router.Params{"id": "3"})

	// Act
	w := httptest.NewRecorder()
	h.Update(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, uint(3), updated.ID)
	require.Equal(t, "EcoPunct Zorilor", updated.Name)
}

func TestRecycleDelete(t *testing.T) {
	// Arrange
	d, p := testResponder(t)

	t.Run("Present", func(t *testing.T) {
		var deleted uint
		h := handler.NewRecycleHandler(d, p, fnRecycleStore{
			delete: func(id uint) error {
				deleted = id
				return nil
			},
		})
		r := withParams(httptest.NewRequest(http.MethodDelete, "/api/recycle-points/9", nil), router.Params{"id": "9"})

		// Act
		w := httptest.NewRecorder()
		h.Delete(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, uint(9), deleted)
	})

	t.Run("Absent", func(t *testing.T) {
		h := handler.NewRecycleHandler(d, p, fnRecycleStore{
			delete: func(id uint) error { return urbanfix.ErrNotExist },
		})
		r := withParams(httptest.NewRequest(http.MethodDelete, "/api/recycle-points/9", nil), router.Params{"id": "9"})

		// Act
		w := httptest.NewRecorder()
		h.Delete(w, r)

		// Assert
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "NOT_FOUND", decodeEnvelope(t, w).Error.Code)
	})
}
