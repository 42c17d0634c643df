package postgres

import (
	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
)

// A ReportFilter narrows report queries; zero-value fields are ignored.
type ReportFilter struct {
	County   string
	Status   urbanfix.ReportStatus
	Username string
}

// A CountyCount pairs a county with the number of active reports in it.
type CountyCount struct {
	County string `json:"county"`
	Count  int64  `json:"count"`
}

// A ReportStore reads and writes Report records.
type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore { return &ReportStore{db: db} }

// Create inserts the Report, filling its Model fields.
func (rs *ReportStore) Create(report *urbanfix.Report) error {
	return translateError(rs.db.Create(report).Error)
}

// FindByID fetches the active Report identified by id.
func (rs *ReportStore) FindByID(id uint) (urbanfix.Report, error) {
	var report urbanfix.Report
	err := rs.db.
		Where("id = ? AND deleted_at IS NULL", id).
		First(&report).
		Error

	return report, translateError(err)
}

// All fetches active Reports matching the filter, most recent first.
func (rs *ReportStore) All(filter ReportFilter) ([]urbanfix.Report, error) {
	var reports []urbanfix.Report
	err := rs.filtered(filter).
		Order("created_at DESC").
		Find(&reports).
		Error

	return reports, translateError(err)
}

// Count returns the number of active Reports matching the filter.
func (rs *ReportStore) Count(filter ReportFilter) (int64, error) {
	var count int64
	err := rs.filtered(filter).
		Model(new(urbanfix.Report)).
		Count(&count).
		Error

	return count, translateError(err)
}

// Counties returns per-county counts of active Reports, busiest county first.
func (rs *ReportStore) Counties() ([]CountyCount, error) {
	var counts []CountyCount
	err := rs.db.
		Model(new(urbanfix.Report)).
		Select("county, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("county").
		Order("count DESC").
		Scan(&counts).
		Error

	return counts, translateError(err)
}

// UpdateStatus moves the Report identified by id to status.
func (rs *ReportStore) UpdateStatus(id uint, status urbanfix.ReportStatus) error {
	res := rs.db.
		Model(new(urbanfix.Report)).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("status", status)
	if res.Error != nil {
		return translateError(res.Error)
	}

	if res.RowsAffected == 0 {
		return urbanfix.ErrNotExist
	}

	return nil
}

// Delete soft deletes the Report identified by id.
func (rs *ReportStore) Delete(id uint) error {
	res := rs.db.
		Model(new(urbanfix.Report)).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if res.Error != nil {
		return translateError(res.Error)
	}

	if res.RowsAffected == 0 {
		return urbanfix.ErrNotExist
	}

	return nil
}

func (rs *ReportStore) filtered(filter ReportFilter) *gorm.DB {
	q := rs.db.Where("deleted_at IS NULL")
	if filter.County != "" {
		q = q.Where("county = ?", filter.County)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.Username != "" {
		q = q.Where("username = ?", filter.Username)
	}

	return q
}
