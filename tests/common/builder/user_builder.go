//go:build unit || e2e

package builder

import (
	"bagtrack/internal/domain/user"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	PhoneNumber string
	Role        string
	IsActive    bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		PhoneNumber: "+966501234567",
		Role:        "customer",
		IsActive:    true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	phoneNumber, err := user.NewPhoneNumber(u.PhoneNumber)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(phoneNumber, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          uuid.New(),
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}
