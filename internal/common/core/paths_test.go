package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVMFolderPath(t *testing.T) {
	t.Run("empty folder anchors at the vm root", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm", VMFolderPath("", "DC0"))
	})

	t.Run("slash-only folder anchors at the vm root", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm", VMFolderPath("/", "DC0"))
	})

	t.Run("relative folder is anchored under the datacenter", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm/prod/web", VMFolderPath("prod/web", "DC0"))
	})

	t.Run("leading and trailing slashes are trimmed", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm/prod", VMFolderPath("/prod/", "DC0"))
	})

	t.Run("already qualified path passes through", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm/prod", VMFolderPath("/DC0/vm/prod", "DC0"))
	})

	t.Run("qualified vm root passes through", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm", VMFolderPath("DC0/vm", "DC0"))
	})

	t.Run("folder named like the datacenter still gets anchored", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm/DC0/vmware", VMFolderPath("DC0/vmware", "DC0"))
	})

	t.Run("datacenter with spaces", func(t *testing.T) {
		assert.Equal(t, "/My Lab DC/vm/test", VMFolderPath("test", "My Lab DC"))
	})
}

func TestJoinInventoryPath(t *testing.T) {
	t.Run("joins folder and leaf", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm/prod/web-01", JoinInventoryPath("/DC0/vm/prod", "web-01"))
	})

	t.Run("tolerates trailing slash on the folder", func(t *testing.T) {
		assert.Equal(t, "/DC0/vm/web-01", JoinInventoryPath("/DC0/vm/", "web-01"))
	})
}
