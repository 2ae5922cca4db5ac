//go:build unit

package admin_test

import (
	"strings"
	"testing"

	"fieldbook/internal/domain/admin"
	"fieldbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AdminBuilder)
	errIs  error
}

func TestAdminUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAdminBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "front.desk", actual.Username().Value())
		assert.Equal(t, admin.RoleManager, actual.Role())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsSuperadmin())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty username",
				mutate: func(b *builder.AdminBuilder) { b.WithUsername("") },
				errIs:  admin.ErrInvalidUsername,
			},
			{
				name:   "whitespace only username",
				mutate: func(b *builder.AdminBuilder) { b.WithUsername("   ") },
				errIs:  admin.ErrInvalidUsername,
			},
			{
				name:   "username with spaces",
				mutate: func(b *builder.AdminBuilder) { b.WithUsername("front desk") },
				errIs:  admin.ErrInvalidUsername,
			},
			{
				name:   "username too long",
				mutate: func(b *builder.AdminBuilder) { b.WithUsername(strings.Repeat("a", admin.MaxUsernameLength+1)) },
				errIs:  admin.ErrInvalidUsername,
			},
			{
				name:   "maximum length username",
				mutate: func(b *builder.AdminBuilder) { b.WithUsername(strings.Repeat("a", admin.MaxUsernameLength)) },
			},
			{
				name:   "dots hyphens underscores allowed",
				mutate: func(b *builder.AdminBuilder) { b.WithUsername("ops-team_2.night") },
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "superadmin role",
				mutate: func(b *builder.AdminBuilder) { b.AsSuperadmin() },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.AdminBuilder) { b.WithRole("owner") },
				errIs:  admin.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.AdminBuilder) { b.WithRole("") },
				errIs:  admin.ErrInvalidRole,
			},
		})
	})

	t.Run("password strength", func(t *testing.T) {
		_, err := admin.NewPassword("short")
		require.ErrorIs(t, err, admin.ErrPasswordTooWeak)

		pw, err := admin.NewPassword("longenough")
		require.NoError(t, err)
		assert.Equal(t, "longenough", pw.Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAdminBuilder().With(c.mutate).BuildDomain()

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
