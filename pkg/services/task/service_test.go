package task

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/stretchr/testify/assert"
	vimtask "github.com/vmware/govmomi/task"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
)

func snapshotFault(message string) vimtask.Error {
	return vimtask.Error{
		LocalizedMethodFault: &types.LocalizedMethodFault{
			Fault:            &types.GenericVmConfigFault{},
			LocalizedMessage: message,
		},
	}
}

func TestIsTaskFault(t *testing.T) {
	t.Run("bare fault", func(t *testing.T) {
		assert.True(t, isTaskFault(snapshotFault("boom")))
	})

	t.Run("wrapped fault", func(t *testing.T) {
		err := fmt.Errorf("waiting: %w", snapshotFault("boom"))
		assert.True(t, isTaskFault(err))
	})

	t.Run("transport error", func(t *testing.T) {
		assert.False(t, isTaskFault(errors.New("connection reset by peer")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, isTaskFault(nil))
	})
}

func TestTerminalError(t *testing.T) {
	ref := types.ManagedObjectReference{Type: "Task", Value: "task-7"}

	t.Run("task fault keeps the localized message", func(t *testing.T) {
		fault := snapshotFault("An error occurred while taking a snapshot: msg.snapshot.error-QUIESCINGERROR")

		err := terminalError("vcenter01:443", ref, fault)

		assert.True(t, core.IsTaskError(err))
		assert.Contains(t, err.Error(), "task task-7 failed")
		assert.Contains(t, err.Error(), "msg.snapshot.error-QUIESCINGERROR")
	})

	t.Run("transport failure is an access error", func(t *testing.T) {
		err := terminalError("vcenter01:443", ref, errors.New("connection refused"))

		assert.True(t, core.IsApiAccessError(err))
		assert.False(t, core.IsTaskError(err))
		assert.Contains(t, err.Error(), "failed while waiting for task task-7")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestRetryPolicy(t *testing.T) {
	t.Run("none gives up after the first failure", func(t *testing.T) {
		policy := retryPolicy(context.Background(), core.None, time.Minute)

		assert.Equal(t, backoff.Stop, policy.NextBackOff())
	})

	t.Run("backoff schedules another attempt", func(t *testing.T) {
		policy := retryPolicy(context.Background(), core.Backoff, time.Minute)

		next := policy.NextBackOff()
		assert.NotEqual(t, backoff.Stop, next)
		assert.Greater(t, next, time.Duration(0))
	})

	t.Run("cancelled context stops the schedule", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		policy := retryPolicy(ctx, core.Backoff, time.Minute)

		assert.Equal(t, backoff.Stop, policy.NextBackOff())
	})

	t.Run("task faults are never retried", func(t *testing.T) {
		attempts := 0
		operation := func() error {
			attempts++
			return backoff.Permanent(snapshotFault("boom"))
		}

		err := backoff.Retry(operation, retryPolicy(context.Background(), core.Backoff, time.Minute))

		assert.Error(t, err)
		assert.True(t, isTaskFault(err))
		assert.Equal(t, 1, attempts)
	})
}
