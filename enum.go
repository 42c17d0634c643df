package urbanfix

import "fmt"

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to include updating the database with the same
// types and values.
type Enumerable interface {
	String() string
	Valid() error
}

// A Role is the level of privilege a User holds in an urbanfix application.
//
// Roles are strictly ordered: RoleAdmin outranks RoleAuthority outranks RoleUser.
type Role string

const (
	RoleUser      Role = "user"
	RoleAuthority Role = "authority"
	RoleAdmin     Role = "admin"
)

// String stringifies the Role.
//
// String implements fmt.Stringer and Enumerable.
func (r Role) String() string { return string(r) }

// Valid asserts the Role is one of the closed set of accepted values.
func (r Role) Valid() error {
	switch r {
	case RoleUser, RoleAuthority, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrNotValid, string(r))
	}
}

// Meets asserts whether the Role carries at least the privilege of min.
// An invalid Role never meets any minimum.
func (r Role) Meets(min Role) bool { return r.rank() >= min.rank() && r.rank() > 0 }

func (r Role) rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAuthority:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// A ReportStatus tracks where a Report sits in the triage workflow.
type ReportStatus string

const (
	ReportSubmitted  ReportStatus = "submitted"
	ReportInProgress ReportStatus = "in-progress"
	ReportResolved   ReportStatus = "resolved"
)

func (rs ReportStatus) String() string { return string(rs) }

func (rs ReportStatus) Valid() error {
	switch rs {
	case ReportSubmitted, ReportInProgress, ReportResolved:
		return nil
	default:
		return fmt.Errorf("%w: unknown report status %q", ErrNotValid, string(rs))
	}
}
