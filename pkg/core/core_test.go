package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	sev, ok := ParseSeverity("Error")
	assert.True(t, ok)
	assert.Equal(t, SeverityError, sev)

	sev, ok = ParseSeverity("fatal")
	assert.False(t, ok)
	assert.Equal(t, SeverityWarning, sev, "invalid input falls back to warning")
}

func TestParsePhase(t *testing.T) {
	for _, name := range []string{"before-write", "before-edit", "after-write", "after-edit"} {
		phase, ok := ParsePhase(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, phase.String())
	}

	_, ok := ParsePhase("during-write")
	assert.False(t, ok)
}

func TestPhaseBefore(t *testing.T) {
	assert.True(t, PhaseBeforeWrite.Before())
	assert.True(t, PhaseBeforeEdit.Before())
	assert.False(t, PhaseAfterWrite.Before())
	assert.False(t, PhaseAfterEdit.Before())
}

func TestFunctionKindString(t *testing.T) {
	assert.Equal(t, "fn", FunctionPure.String())
	assert.Equal(t, "fx", FunctionEffectful.String())
	assert.Equal(t, "tx", FunctionTransactional.String())
}
