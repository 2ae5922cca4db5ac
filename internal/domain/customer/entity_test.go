//go:build unit

package customer_test

import (
	"testing"

	"fieldbook/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer(t *testing.T) {
	email, err := customer.NewEmail("taro@example.com")
	require.NoError(t, err)
	phone, err := customer.NewPhone("090-1234-5678")
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := customer.NewCustomer("Taro Yamada", email, phone)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Taro Yamada", actual.Name())
		assert.Equal(t, "taro@example.com", actual.Email().Value())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := customer.NewCustomer("  Taro  ", email, phone)
		require.NoError(t, err)
		assert.Equal(t, "Taro", actual.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := customer.NewCustomer("   ", email, phone)
		require.ErrorIs(t, err, customer.ErrEmptyName)
	})
}

func TestEmailValidation(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain address", input: "a@b.co", valid: true},
		{name: "plus tag", input: "user+tag@example.com", valid: true},
		{name: "subdomain", input: "user@mail.example.co.jp", valid: true},
		{name: "surrounding whitespace trimmed", input: "  a@b.co  ", valid: true},
		{name: "missing at sign", input: "userexample.com", valid: false},
		{name: "missing tld", input: "user@example", valid: false},
		{name: "single letter tld", input: "user@example.c", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "spaces inside", input: "us er@example.com", valid: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := customer.NewEmail(c.input)
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, customer.ErrInvalidEmail)
			}
		})
	}
}

func TestPhoneValidation(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "hyphenated", input: "090-1234-5678", valid: true},
		{name: "international prefix", input: "+81 90 1234 5678", valid: true},
		{name: "digits only", input: "09012345678", valid: true},
		{name: "too short", input: "12345", valid: false},
		{name: "letters", input: "call-me-maybe", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := customer.NewPhone(c.input)
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, customer.ErrInvalidPhone)
			}
		})
	}
}
