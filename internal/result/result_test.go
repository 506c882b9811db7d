package result

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusSuccess(t *testing.T) {
	st := OK()
	assert.True(t, st.IsSuccess())
	assert.False(t, st.IsFailure())
	assert.Empty(t, st.Errors)
}

func TestNotFoundIsNotForbidden(t *testing.T) {
	st := NotFound("account", 42)
	assert.True(t, st.Is(KindNotFound))
	assert.False(t, st.Is(KindForbidden))
	assert.Contains(t, st.Message(), "account with id 42")
}

func TestInsufficientFundsCarriesBothFigures(t *testing.T) {
	st := InsufficientFunds(decimal.NewFromFloat(100.50), decimal.NewFromFloat(99.25))
	assert.True(t, st.Is(KindConflict))
	assert.Contains(t, st.Message(), "100.50")
	assert.Contains(t, st.Message(), "99.25")
}

func TestAccountInactive(t *testing.T) {
	st := AccountInactive("1012345678")
	assert.True(t, st.Is(KindConflict))
	assert.Contains(t, st.Message(), "1012345678")
}

func TestCombineAggregatesIndependentFailures(t *testing.T) {
	st := Combine(
		BadRequest("amount must be positive"),
		OK(),
		Forbidden("not your account"),
	)
	assert.True(t, st.IsFailure())
	assert.Len(t, st.Errors, 2)
	// The first failure determines the kind.
	assert.Equal(t, KindValidation, st.Kind)
}

func TestCombineAllSuccess(t *testing.T) {
	st := Combine(OK(), OK())
	assert.True(t, st.IsSuccess())
}

func TestValidateAllRunsEveryCheck(t *testing.T) {
	ran := 0
	st := ValidateAll(
		func() Status { ran++; return BadRequest("first") },
		func() Status { ran++; return BadRequest("second") },
	)
	assert.Equal(t, 2, ran)
	assert.Len(t, st.Errors, 2)
}

func TestTypedResult(t *testing.T) {
	ok := Ok("value")
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "value", ok.Value)

	failed := FailWith[string](Forbidden("no"))
	assert.True(t, failed.Is(KindForbidden))
	assert.Empty(t, failed.Value)
}
