package domain

import "time"

// UserRole enumerates portal roles.
type UserRole string

const (
	UserRoleGuest         UserRole = "guest"
	UserRoleMahasiswa     UserRole = "mahasiswa"
	UserRoleDosen         UserRole = "dosen"
	UserRoleTendik        UserRole = "tendik"
	UserRoleAdminHelpdesk UserRole = "admin_helpdesk"
	UserRoleAdminAsset    UserRole = "admin_asset"
	UserRoleAdminNetwork  UserRole = "admin_network"
	UserRoleSuperAdmin    UserRole = "super_admin"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User is a portal account.
type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	Unit         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
