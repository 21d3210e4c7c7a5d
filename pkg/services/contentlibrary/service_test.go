package contentlibrary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	vapilibrary "github.com/vmware/govmomi/vapi/library"
)

func TestToLibraries(t *testing.T) {
	libraries := []vapilibrary.Library{
		{ID: "lib-1", Name: "templates", Type: "LOCAL"},
		{ID: "lib-2", Name: "mirrored", Type: "SUBSCRIBED"},
	}

	result := toLibraries(libraries)

	assert.Len(t, result, 2)
	assert.Equal(t, "templates", result[0].Name)
	assert.Equal(t, "LOCAL", result[0].Type)
	assert.Equal(t, "lib-2", result[1].ID)
}

func TestToItems(t *testing.T) {
	items := []vapilibrary.Item{
		{ID: "item-1", Name: "debian-12", Type: "ovf", LibraryID: "lib-1"},
		{ID: "item-2", Name: "rescue", Type: "iso", LibraryID: "lib-1"},
	}

	result := toItems(items)

	assert.Len(t, result, 2)
	assert.Equal(t, "debian-12", result[0].Name)
	assert.Equal(t, "ovf", result[0].Type)
	assert.Equal(t, "lib-1", result[1].LibraryID)

	assert.NotNil(t, toItems(nil))
}
