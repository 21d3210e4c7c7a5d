package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/vmware/govmomi/object"
	vimtask "github.com/vmware/govmomi/task"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/client"
	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
)

type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.Task {
	return &Service{client: client, log: log}
}

// WaitForCompletion blocks until the referenced task reaches a terminal
// state. A task the server failed comes back as a TaskError carrying the
// fault message the way vCenter localized it, together with whatever
// TaskInfo the server last reported. Dropped connections while waiting
// are retried under the configured retry mode; task faults are terminal
// and never retried.
func (s *Service) WaitForCompletion(ctx context.Context, ref types.ManagedObjectReference) (*types.TaskInfo, error) {
	watched := object.NewTask(s.client.VimClient(), ref)

	var info *types.TaskInfo
	operation := func() error {
		var err error
		info, err = watched.WaitForResult(ctx, nil)
		switch {
		case err == nil:
			return nil
		case isTaskFault(err):
			return backoff.Permanent(err)
		case ctx.Err() != nil:
			return backoff.Permanent(err)
		default:
			s.log.Warn("transient failure while waiting for task",
				zap.String("task", ref.Value), zap.Error(err))
			return err
		}
	}

	if err := backoff.Retry(operation, retryPolicy(ctx, s.client.RetryMode(), s.client.RetryMaxTime())); err != nil {
		s.log.Error("waiting for task failed",
			zap.String("task", ref.Value), zap.Error(err))
		return info, terminalError(s.client.Endpoint(), ref, err)
	}

	s.log.Debug("task completed",
		zap.String("task", ref.Value), zap.String("state", string(info.State)))
	return info, nil
}

// isTaskFault reports whether err was raised by the task itself, as
// opposed to a failure reaching the server while waiting on it.
func isTaskFault(err error) bool {
	var fault vimtask.Error
	return errors.As(err, &fault)
}

// terminalError maps a wait failure to the error the caller sees. A
// server-side task fault keeps its localized message; anything else is
// an access failure against the endpoint.
func terminalError(endpoint string, ref types.ManagedObjectReference, err error) error {
	var fault vimtask.Error
	if errors.As(err, &fault) {
		return core.NewTaskError(ref.Value, fault.Error(), err)
	}
	return core.NewApiAccessError(endpoint,
		fmt.Sprintf("failed while waiting for task %s", ref.Value), err)
}

// retryPolicy translates the configured retry mode into a backoff
// schedule. Stop means the first transient failure is final.
func retryPolicy(ctx context.Context, mode core.RetryMode, maxTime time.Duration) backoff.BackOff {
	if mode == core.None {
		return &backoff.StopBackOff{}
	}
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxTime
	return backoff.WithContext(policy, ctx)
}
