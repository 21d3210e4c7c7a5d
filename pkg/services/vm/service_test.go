package vm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmware/govmomi/find"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

func testService(t *testing.T) *Service {
	t.Helper()

	log, err := logger.New(false)
	assert.NoError(t, err)

	// Selector validation runs before any API call, so no client is needed.
	return &Service{log: log}
}

func TestFindOneSelectorValidation(t *testing.T) {
	service := testService(t)
	ctx := context.Background()

	t.Run("empty selector", func(t *testing.T) {
		_, err := service.FindOne(ctx, &payloads.VMSelector{})

		assert.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "name, uuid or moid")
	})

	t.Run("name without folder", func(t *testing.T) {
		_, err := service.FindOne(ctx, &payloads.VMSelector{Name: "db-01"})

		assert.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "folder")
	})

	t.Run("name and uuid together", func(t *testing.T) {
		_, err := service.FindOne(ctx, &payloads.VMSelector{
			Name:   "db-01",
			Folder: "prod",
			UUID:   "421f5d01-2a2a-4a8b-9a54-57b3a69028a1",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("unknown name_match", func(t *testing.T) {
		_, err := service.FindOne(ctx, &payloads.VMSelector{
			Name:      "db-01",
			Folder:    "prod",
			NameMatch: "any",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "last")
	})

	t.Run("name_match choices pass validation", func(t *testing.T) {
		for _, match := range []string{payloads.NameMatchFirst, payloads.NameMatchLast} {
			err := validateSelector(&payloads.VMSelector{
				Name:      "db-01",
				Folder:    "prod",
				NameMatch: match,
			})
			assert.NoError(t, err)
		}
	})

	t.Run("malformed uuid", func(t *testing.T) {
		_, err := service.FindOne(ctx, &payloads.VMSelector{UUID: "not-a-uuid"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid virtual machine uuid")
	})
}

func TestIsNotFound(t *testing.T) {
	t.Run("finder not found", func(t *testing.T) {
		err := fmt.Errorf("lookup failed: %w", &find.NotFoundError{})
		assert.True(t, isNotFound(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, isNotFound(errors.New("connection reset")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, isNotFound(nil))
	})
}

func TestNameMatchOrDefault(t *testing.T) {
	assert.Equal(t, payloads.NameMatchFirst, nameMatchOrDefault(""))
	assert.Equal(t, payloads.NameMatchLast, nameMatchOrDefault(payloads.NameMatchLast))
}
