package library

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/task.go . Task

type Task interface {
	// WaitForCompletion blocks until the referenced task reaches a
	// terminal state. A successful task returns its info; a failed one
	// returns the info it got alongside a task error carrying the fault
	// message verbatim.
	WaitForCompletion(ctx context.Context, ref types.ManagedObjectReference) (*types.TaskInfo, error)
}
