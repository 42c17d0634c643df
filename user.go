package urbanfix

// A User is the core entity that interacts with an urbanfix application.
//
// An agent's HTTP requests are authenticated first by a specific request
// with email & password data matching credentials stored on a DB record for a User.
// Upon a match, a signed session token is issued.
// Further requests are authenticated by presenting that token,
// with the User's live record re-checked on every guarded request.
type User struct {
	Model
	Username  string `db:"username" json:"username"`
	Email     string `db:"email" json:"email"`
	Password  []byte `db:"password" json:"-"`
	Role      Role   `db:"role" json:"role"`
	Validated bool   `db:"validated" json:"validated"`
}

// GetID retrieves the application's identifier for the User.
//
// GetID implements logger.LogUser.
func (u User) GetID() uint { return u.ID }

// GetEmail retrieves the email address of the User.
//
// GetEmail implements logger.LogUser.
func (u User) GetEmail() string { return u.Email }

// HasAccess asserts whether the User's properties give it general
// access to the urbanfix application.
func (u User) HasAccess() bool {
	return u.Validated && u.Role.Valid() == nil
}

// HomePath returns the relative URL path designated
// as the default resource in the urbanfix application
// they can access.
func (u User) HomePath() string {
	if !u.HasAccess() {
		return "/login"
	}

	return "/dashboard"
}
