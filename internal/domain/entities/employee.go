package entities

// AccessRole is one of the four database login roles. Privileges escalate
// strictly: employee < manager < hr (read scope) < sudo.
type AccessRole string

const (
	AccessRoleEmployee AccessRole = "employee"
	AccessRoleManager  AccessRole = "manager"
	AccessRoleHR       AccessRole = "hr"
	AccessRoleSudo     AccessRole = "sudo"
)

// AccessRoles lists every known role in escalation order.
var AccessRoles = []AccessRole{
	AccessRoleEmployee,
	AccessRoleManager,
	AccessRoleHR,
	AccessRoleSudo,
}

// IsValid reports whether the role is one of the four known roles.
func (r AccessRole) IsValid() bool {
	switch r {
	case AccessRoleEmployee, AccessRoleManager, AccessRoleHR, AccessRoleSudo:
		return true
	}
	return false
}

// CanSeeAllRows reports whether the role reads across everyone's rows on the
// row-restricted tables.
func (r AccessRole) CanSeeAllRows() bool {
	return r == AccessRoleManager || r == AccessRoleHR || r == AccessRoleSudo
}

// Employee is an identity record created at onboarding. Name is globally
// unique and acts as the de-facto join key for ownership checks; other
// tables reference it by string, not by id.
type Employee struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"type:text;unique;not null"`
	Email  string `json:"email,omitempty" gorm:"type:text"`
	Phone  string `json:"phone,omitempty" gorm:"type:text"`
	Status string `json:"status,omitempty" gorm:"type:text"`
	Role   string `json:"role,omitempty" gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (Employee) TableName() string {
	return "employee"
}
