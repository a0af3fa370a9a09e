package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type numberRequest struct {
	Value string  `validate:"required,number"`
	Power float64 `validate:"gt=0"`
}

func TestStruct_NumberTag(t *testing.T) {
	v := Struct()

	assert.NoError(t, v.Struct(numberRequest{Value: "1e500", Power: 1}))
	assert.NoError(t, v.Struct(numberRequest{Value: "eee5", Power: 1}))

	err := v.Struct(numberRequest{Value: "banana", Power: 1})
	assert.Equal(t, map[string]string{"value": "Must be a number such as 1e500 or eee5"}, FieldErrors(err))

	err = v.Struct(numberRequest{Value: "NaN", Power: 1})
	assert.Contains(t, FieldErrors(err), "value")
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))

	err := Struct().Struct(numberRequest{})
	fields := FieldErrors(err)
	assert.Equal(t, "This field is required", fields["value"])
	assert.Equal(t, "Must be greater than 0", fields["power"])

	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FieldErrors(assert.AnError))
}
