package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfileRequestChanges(t *testing.T) {
	t.Run("empty patch produces no changes", func(t *testing.T) {
		req := UpdateProfileRequest{}
		assert.Empty(t, req.Changes())
	})

	t.Run("only set fields appear", func(t *testing.T) {
		req := UpdateProfileRequest{
			Name: strPtr("Ava Duvall"),
			Bio:  strPtr("Character actor."),
		}
		changes := req.Changes()
		assert.Equal(t, map[string]interface{}{
			"name": "Ava Duvall",
			"bio":  "Character actor.",
		}, changes)
	})

	t.Run("explicit empty string clears a field", func(t *testing.T) {
		req := UpdateProfileRequest{Location: strPtr("")}
		changes := req.Changes()
		assert.Equal(t, map[string]interface{}{"location": ""}, changes)
	})
}
