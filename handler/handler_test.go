package handler_test

import (
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/req"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/logger"
	"github.com/urbanfix/urbanfix/postgres"
)

func testResponder(t *testing.T) (*resp.Responder, *req.Parser) {
	t.Helper()

	l := logger.New(logger.WithLogger(log.New(os.Stderr, "", 0)), logger.WithLevel(logger.LogLevelFatal))
	return resp.NewResponder(resp.WithLogger(l), resp.WithRootUrl("https://example.com")), req.NewParser()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var e envelope
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

// fnUserStore stubs handler.UserStorer with overridable behavior per test.
type fnUserStore struct {
	all        func() ([]urbanfix.User, error)
	create     func(*urbanfix.User) error
	delete     func(uint) error
	findHandle func(string) (urbanfix.User, error)
	findID     func(uint) (urbanfix.User, error)
	updateRole func(uint, urbanfix.Role) error
}

func (s fnUserStore) All() ([]urbanfix.User, error) {
	if s.all == nil {
		return nil, nil
	}
	return s.all()
}

func (s fnUserStore) Create(u *urbanfix.User) error {
	if s.create == nil {
		return nil
	}
	return s.create(u)
}

func (s fnUserStore) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

func (s fnUserStore) FindByEmailOrUsername(handle string) (urbanfix.User, error) {
	if s.findHandle == nil {
		return urbanfix.User{}, urbanfix.ErrNotExist
	}
	return s.findHandle(handle)
}

func (s fnUserStore) FindByID(id uint) (urbanfix.User, error) {
	if s.findID == nil {
		return urbanfix.User{}, urbanfix.ErrNotExist
	}
	return s.findID(id)
}

func (s fnUserStore) UpdateRole(id uint, role urbanfix.Role) error {
	if s.updateRole == nil {
		return nil
	}
	return s.updateRole(id, role)
}

// fnReportStore stubs handler.ReportStorer.
type fnReportStore struct {
	all          func(postgres.ReportFilter) ([]urbanfix.Report, error)
	count        func(postgres.ReportFilter) (int64, error)
	counties     func() ([]postgres.CountyCount, error)
	create       func(*urbanfix.Report) error
	delete       func(uint) error
	findID       func(uint) (urbanfix.Report, error)
	updateStatus func(uint, urbanfix.ReportStatus) error
}

func (s fnReportStore) All(f postgres.ReportFilter) ([]urbanfix.Report, error) {
	if s.all == nil {
		return nil, nil
	}
	return s.all(f)
}

func (s fnReportStore) Count(f postgres.ReportFilter) (int64, error) {
	if s.count == nil {
		return 0, nil
	}
	return s.count(f)
}

func (s fnReportStore) Counties() ([]postgres.CountyCount, error) {
	if s.counties == nil {
		return nil, nil
	}
	return s.counties()
}

func (s fnReportStore) Create(r *urbanfix.Report) error {
	if s.create == nil {
		return nil
	}
	return s.create(r)
}

func (s fnReportStore) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

func (s fnReportStore) FindByID(id uint) (urbanfix.Report, error) {
	if s.findID == nil {
		return urbanfix.Report{}, urbanfix.ErrNotExist
	}
	return s.findID(id)
}

func (s fnReportStore) UpdateStatus(id uint, status urbanfix.ReportStatus) error {
	if s.updateStatus == nil {
		return nil
	}
	return s.updateStatus(id, status)
}
