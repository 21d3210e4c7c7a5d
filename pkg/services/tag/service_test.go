package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmware/govmomi/vapi/tags"
)

func TestToTags(t *testing.T) {
	t.Run("maps vendor fields", func(t *testing.T) {
		attached := []tags.Tag{
			{ID: "urn:vmomi:InventoryServiceTag:1", Name: "prod", Description: "production", CategoryID: "urn:cat:env"},
			{ID: "urn:vmomi:InventoryServiceTag:2", Name: "backup-daily", CategoryID: "urn:cat:backup"},
		}

		result := toTags(attached)

		assert.Len(t, result, 2)
		assert.Equal(t, "prod", result[0].Name)
		assert.Equal(t, "production", result[0].Description)
		assert.Equal(t, "urn:cat:env", result[0].CategoryID)
		assert.Empty(t, result[1].Description)
	})

	t.Run("empty attachment list stays non-nil", func(t *testing.T) {
		result := toTags(nil)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
