package postgres

import (
	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
)

// A UserStore reads and writes User records.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// FindByUsername fetches the live User record for username.
//
// FindByUsername satisfies middleware.UserStorer so guards re-check the
// record on every request instead of trusting data minted at login.
func (us *UserStore) FindByUsername(username string) (urbanfix.User, error) {
	var user urbanfix.User
	err := us.db.
		Where("username = ? AND deleted_at IS NULL", username).
		First(&user).
		Error

	return user, translateError(err)
}

// FindByID fetches the active User identified by id.
func (us *UserStore) FindByID(id uint) (urbanfix.User, error) {
	var user urbanfix.User
	err := us.db.
		Where("id = ? AND deleted_at IS NULL", id).
		First(&user).
		Error

	return user, translateError(err)
}

// FindByEmailOrUsername fetches the User whose email or username matches handle.
// Login accepts either form of identification.
func (us *UserStore) FindByEmailOrUsername(handle string) (urbanfix.User, error) {
	var user urbanfix.User
	err := us.db.
		Where("(email = ? OR username = ?) AND deleted_at IS NULL", handle, handle).
		First(&user).
		Error

	return user, translateError(err)
}

// Create inserts the User, filling its Model fields.
// A username or email collision returns ErrExists.
func (us *UserStore) Create(user *urbanfix.User) error {
	return translateError(us.db.Create(user).Error)
}

// All fetches every active User, most recent first.
func (us *UserStore) All() ([]urbanfix.User, error) {
	var users []urbanfix.User
	err := us.db.
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&users).
		Error

	return users, translateError(err)
}

// UpdateRole assigns role to the User identified by id.
func (us *UserStore) UpdateRole(id uint, role urbanfix.Role) error {
	res := us.db.
		Model(new(urbanfix.User)).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("role", role)
	if res.Error != nil {
		return translateError(res.Error)
	}

	if res.RowsAffected == 0 {
		return urbanfix.ErrNotExist
	}

	return nil
}

// Delete soft deletes the User identified by id.
func (us *UserStore) Delete(id uint) error {
	res := us.db.
		Model(new(urbanfix.User)).
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
