package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listParams struct {
	Status  string `validate:"omitempty,oneof=pending shipped delivered returned"`
	PerPage int    `validate:"gte=1,lte=100"`
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(listParams{Status: "shipped", PerPage: 20}))
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	err := Validate(listParams{Status: "bogus", PerPage: 500})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Contains(t, fields, "Status")
	assert.Contains(t, fields, "PerPage")
	assert.Contains(t, fields["Status"], "must be one of")
	assert.Contains(t, fields["PerPage"], "less than or equal to 100")
}
