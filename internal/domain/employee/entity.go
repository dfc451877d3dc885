package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Name         string
	Phone        string
	Email        *string
	Role         Role
	Type         PayType
	FixedSalary  *decimal.Decimal
	FirstLogin   bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee   Role = "employee"   // Checks in and out, sees own records
	RoleManager    Role = "manager"    // Full dashboard access
	RoleSupervisor Role = "supervisor" // Same privileges as manager
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleSupervisor:
		return true
	}
	return false
}

// CanManage reports whether r may write to shared collections.
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleSupervisor
}

type PayType string

const (
	PayTypeFixed    PayType = "fixed"
	PayTypeVariable PayType = "variable"
)

func (p PayType) Valid() bool {
	return p == PayTypeFixed || p == PayTypeVariable
}
