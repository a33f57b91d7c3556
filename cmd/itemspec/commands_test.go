package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparecarry/itemspec/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInferCommand(t *testing.T) {
	t.Run("prints family estimate", func(t *testing.T) {
		out, err := runCLI(t, "infer", "--title", "Marine Battery 200Ah")
		require.NoError(t, err)

		var got struct {
			Estimate *domain.ItemSpecification `json:"estimate"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.NotNil(t, got.Estimate)
		assert.Equal(t, 20.0, got.Estimate.Weight)
		assert.Equal(t, domain.Dimensions{Length: 75, Width: 50, Height: 50}, got.Estimate.Dimensions)
		assert.Contains(t, got.Estimate.Source, "200Ah")
	})

	t.Run("falls back to category", func(t *testing.T) {
		out, err := runCLI(t, "infer", "-t", "Homemade jam", "-c", "food")
		require.NoError(t, err)
		assert.Contains(t, out, `"source": "Category default: food"`)
	})

	t.Run("prints null when nothing matches", func(t *testing.T) {
		out, err := runCLI(t, "infer", "--title", "handmade ceramic vase")
		require.NoError(t, err)
		assert.JSONEq(t, `{"estimate": null}`, out)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := runCLI(t, "infer", "anchor")
		assert.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	out, err := runCLI(t, "validate", "--weight", "50", "--length", "10", "--width", "10", "--height", "10")
	require.NoError(t, err)

	var got domain.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	assert.NotEmpty(t, got.Warning)
}

func TestFeelCommand(t *testing.T) {
	t.Run("estimates weight", func(t *testing.T) {
		out, err := runCLI(t, "feel", "--length", "10", "--width", "10", "--height", "10", "--feel", "heavy")
		require.NoError(t, err)
		assert.JSONEq(t, `{"weight": 2.4, "feel": "heavy"}`, out)
	})

	t.Run("rejects unknown bucket", func(t *testing.T) {
		_, err := runCLI(t, "feel", "--length", "10", "--width", "10", "--height", "10", "--feel", "feather")
		assert.ErrorIs(t, err, domain.ErrUnknownFeelBucket)
	})

	t.Run("requires feel flag", func(t *testing.T) {
		_, err := runCLI(t, "feel", "--length", "10")
		assert.Error(t, err)
	})
}
