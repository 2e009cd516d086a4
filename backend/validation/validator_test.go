package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,min=3"`
	Role     string `json:"role" validate:"omitempty,role"`
	Items    []item `json:"items" validate:"dive"`
}

type item struct {
	Name string `json:"name" validate:"required"`
}

func TestStruct(t *testing.T) {
	assert.Nil(t, Struct(signup{Username: "coach", Role: "teacher"}))

	fields := Struct(signup{Username: "ab", Role: "admin", Items: []item{{}}})
	require.Len(t, fields, 3)
	assert.Contains(t, fields["username"], "at least 3")
	assert.Equal(t, "role must be one of student, teacher or moderator", fields["role"])
	assert.Contains(t, fields, "items[0].name")
}
