//go:build unit

package user_test

import (
	"testing"

	"bagtrack/internal/domain/user"
	"bagtrack/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic construction", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		phoneNumber, _ := user.NewPhoneNumber("+966501234567")
		role, _ := user.NewRole("customer")
		expected := user.NewUser(phoneNumber, role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("phone number validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid E.164 number",
				mutate: func(b *builder.UserBuilder) { b.PhoneNumber = "+966512345678" },
			},
			{
				name:   "number with separators normalizes",
				mutate: func(b *builder.UserBuilder) { b.PhoneNumber = "+966 50-123-4567" },
			},
			{
				name:   "empty number rejected",
				mutate: func(b *builder.UserBuilder) { b.PhoneNumber = "" },
				errIs:  user.ErrInvalidPhoneNumber,
			},
			{
				name:   "missing country prefix rejected",
				mutate: func(b *builder.UserBuilder) { b.PhoneNumber = "0501234567" },
				errIs:  user.ErrInvalidPhoneNumber,
			},
			{
				name:   "letters rejected",
				mutate: func(b *builder.UserBuilder) { b.PhoneNumber = "+9665O1234567" },
				errIs:  user.ErrInvalidPhoneNumber,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer role",
				mutate: func(b *builder.UserBuilder) { b.Role = "customer" },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.Role = "admin" },
			},
			{
				name:   "unknown role rejected",
				mutate: func(b *builder.UserBuilder) { b.Role = "supervisor" },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role rejected",
				mutate: func(b *builder.UserBuilder) { b.Role = "" },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("normalization keeps one identity per phone", func(t *testing.T) {
		spaced, err := user.NewPhoneNumber("+966 50 123 4567")
		require.NoError(t, err)
		plain, err := user.NewPhoneNumber("+966501234567")
		require.NoError(t, err)

		if diff := cmp.Diff(plain.Value(), spaced.Value()); diff != "" {
			t.Errorf("PhoneNumber mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("admin flag follows role", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsAdmin().BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.IsAdmin())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
