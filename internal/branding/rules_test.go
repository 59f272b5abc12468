// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRules_DefaultRulesAreAcyclic(t *testing.T) {
	require.NoError(t, validateRules(defaultRules))
}

func TestValidateRules_RejectsCycle(t *testing.T) {
	rules := map[Key]rule{
		"A": sameAs("ENV_A", "B"),
		"B": sameAs("ENV_B", "C"),
		"C": sameAs("ENV_C", "A"),
	}

	err := validateRules(rules)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRuleCycle))
}

func TestValidateRules_RejectsTwoKeyCycle(t *testing.T) {
	rules := map[Key]rule{
		"A": appNameFormat("ENV_A", "%s"),
	}
	rules[AppName] = sameAs("ENV_APP", "A")

	err := validateRules(rules)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRuleCycle))
}

func TestValidateRules_RejectsMissingDependency(t *testing.T) {
	rules := map[Key]rule{
		"A": sameAs("ENV_A", "GHOST"),
	}

	err := validateRules(rules)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingDependency))
}

func TestValidateRules_SharedDependencyIsNotACycle(t *testing.T) {
	rules := map[Key]rule{
		"ROOT": literal("ENV_ROOT", "x"),
		"A":    sameAs("ENV_A", "ROOT"),
		"B":    sameAs("ENV_B", "ROOT"),
		"C":    sameAs("ENV_C", "A"),
	}

	assert.NoError(t, validateRules(rules))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "abc", stringValue("abc").String())
	assert.Equal(t, "75", numberValue(75).String())
	assert.Equal(t, "2.5", numberValue(2.5).String())
	assert.Equal(t, "true", boolValue(true).String())
	assert.Equal(t, "bool", KindBool.String())
}
