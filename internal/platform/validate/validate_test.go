package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email_shape"`
	Level    string `validate:"omitempty,oneof=debug info"`
	Size     int    `validate:"gte=0"`
}

func TestEmailShape(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"johndoe@example.com", true},
		{"newemail@example.com", true},
		{"a@b.c", true},
		{"invalidemail", false},
		{"@example.com", false},
		{"john@", false},
		{"john@localhost", false},
		{"john@@example.com", false},
		{"john@exa@mple.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, EmailShape(tc.email))
		})
	}
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(testStruct{Username: "JohnDoe", Email: "johndoe@example.com", Level: "info"})
	assert.Empty(t, errs)
	assert.NoError(t, Join(errs))
}

func TestStruct_Messages(t *testing.T) {
	errs := Struct(testStruct{Email: "invalidemail", Level: "trace", Size: -1})

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}

	assert.Contains(t, byField["username"], "required")
	assert.Contains(t, byField["email"], "local@domain.tld")
	assert.Contains(t, byField["level"], "one of")
	assert.Contains(t, byField["size"], "at least 0")

	err := Join(errs)
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: "))
}
