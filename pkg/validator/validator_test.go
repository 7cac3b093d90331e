package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	Paid  decimal.Decimal `validate:"money"`
	Email string          `validate:"required,email"`
	Box   int             `validate:"required,gt=0"`
}

func TestValidateStruct_OK(t *testing.T) {
	errs := ValidateStruct(payment{Paid: decimal.NewFromInt(10), Email: "a@b.com", Box: 1})
	assert.Empty(t, errs)
}

func TestValidateStruct_ReportaCampos(t *testing.T) {
	errs := ValidateStruct(payment{Paid: decimal.NewFromInt(-1), Email: "no-email"})
	require.Len(t, errs, 3)

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.FailedField] = e.Tag
	}
	assert.Equal(t, "money", tags["payment.Paid"])
	assert.Equal(t, "email", tags["payment.Email"])
	assert.Equal(t, "required", tags["payment.Box"])
}

func TestValidateStruct_NoStruct(t *testing.T) {
	errs := ValidateStruct(42)
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid", errs[0].Tag)
}
