package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesListJSON(t *testing.T) {
	setupProject(t)
	out, _, err := execute(t, NewRulesCommand(), "--format", "json")
	require.NoError(t, err)

	var listing rulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.NotEmpty(t, listing.Rules)
	assert.Equal(t, len(listing.Rules), listing.Count)

	ids := make(map[string]bool)
	for _, rule := range listing.Rules {
		ids[rule.ID] = true
	}
	for _, want := range []string{"AP01", "CT04", "FN08", "DB03", "CM01", "GN04"} {
		assert.True(t, ids[want], "catalog should contain %s", want)
	}
}

func TestRulesCategoryFilter(t *testing.T) {
	setupProject(t)
	out, _, err := execute(t, NewRulesCommand(), "--format", "json", "--category", "controller")
	require.NoError(t, err)

	var listing rulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.NotEmpty(t, listing.Rules)
	for _, rule := range listing.Rules {
		assert.Equal(t, "controller", rule.Category)
	}
}

func TestRulesShowDetail(t *testing.T) {
	setupProject(t)
	out, _, err := execute(t, NewRulesCommand(), "--format", "markdown", "CT04")
	require.NoError(t, err)
	assert.Contains(t, out, "CT04")
	assert.Contains(t, out, "TErrTuple")
	assert.Contains(t, out, "Good Example")
}

func TestRulesUnknownID(t *testing.T) {
	setupProject(t)
	_, _, err := execute(t, NewRulesCommand(), "ZZ99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
