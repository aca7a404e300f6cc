package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity, keyed by the verified phone number. A record is created on the
// first successful OTP verification.
type User struct {
	id          uuid.UUID
	phoneNumber PhoneNumber
	role        Role
	lastLogin   *time.Time
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(phoneNumber PhoneNumber, role Role) *User {
	return &User{
		id:          uuid.New(),
		phoneNumber: phoneNumber,
		role:        role,
		isActive:    true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	phoneNumber PhoneNumber,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:          id,
		phoneNumber: phoneNumber,
		role:        role,
		lastLogin:   lastLogin,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) PhoneNumber() PhoneNumber { return u.phoneNumber }
func (u *User) Role() Role              { return u.role }
func (u *User) LastLogin() *time.Time   { return u.lastLogin }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }
