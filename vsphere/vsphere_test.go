package vsphere

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/pkg/config"
)

func TestNewValidatesConfig(t *testing.T) {
	t.Run("missing hostname", func(t *testing.T) {
		cfg := &config.Config{Username: "administrator@vsphere.local", Password: "secret"}

		_, err := New(context.Background(), cfg)

		assert.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "hostname")
		assert.Contains(t, err.Error(), "VMWARE_HOST")
	})

	t.Run("missing username", func(t *testing.T) {
		cfg := &config.Config{Host: "vcenter01", Password: "secret"}

		_, err := New(context.Background(), cfg)

		assert.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "username")
	})

	t.Run("missing password", func(t *testing.T) {
		cfg := &config.Config{Host: "vcenter01", Username: "administrator@vsphere.local"}

		_, err := New(context.Background(), cfg)

		assert.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "password")
	})
}
