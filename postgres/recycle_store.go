package postgres

import (
	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
)

// A RecyclePointStore reads and writes RecyclePoint records.
type RecyclePointStore struct {
	db *gorm.DB
}

func NewRecyclePointStore(db *gorm.DB) *RecyclePointStore { return &RecyclePointStore{db: db} }

// Create inserts the RecyclePoint, filling its Model fields.
func (ps *RecyclePointStore) Create(point *urbanfix.RecyclePoint) error {
	return translateError(ps.db.Create(point).Error)
}

// FindByID fetches the active RecyclePoint identified by id.
func (ps *RecyclePointStore) FindByID(id uint) (urbanfix.RecyclePoint, error) {
	var point urbanfix.RecyclePoint
	err := ps.db.
		Where("id = ? AND deleted_at IS NULL", id).
		First(&point).
		Error

	return point, translateError(err)
}

// All fetches every active RecyclePoint, alphabetized.
func (ps *RecyclePointStore) All() ([]urbanfix.RecyclePoint, error) {
	var points []urbanfix.RecyclePoint
	err := ps.db.
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&points).
		Error

	return points, translateError(err)
}

// Update overwrites the editable fields of the RecyclePoint identified by point.ID.
func (ps *RecyclePointStore) Update(point *urbanfix.RecyclePoint) error {
	res := ps.db.
		Model(point).
		Where("deleted_at IS NULL").
		Select("name", "address", "description", "lat", "lng", "opening_hour", "closing_hour", "phone", "contact_mail").
		Updates(point)
	if res.Error != nil {
		return translateError(res.Error)
	}

	if res.RowsAffected == 0 {
		return urbanfix.ErrNotExist
	}

	return nil
}

// Delete soft deletes the RecyclePoint identified by id.
func (ps *RecyclePointStore) Delete(id uint) error {
	res := ps.db.
		Model(new(urbanfix.RecyclePoint)).
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
