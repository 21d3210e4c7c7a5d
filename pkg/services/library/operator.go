package library

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/operator.go . GuestOperator

// GuestOperator is the low level seam between the snapshot service and
// the vSphere API. Mutating calls return the reference of the task the
// server spawned, or nil when the operation completes synchronously.
type GuestOperator interface {
	SnapshotView(ctx context.Context, ref types.ManagedObjectReference) (*payloads.GuestSnapshotView, error)
	CreateSnapshot(ctx context.Context, ref types.ManagedObjectReference, name, description string, memory, quiesce bool) (*types.ManagedObjectReference, error)
	RemoveSnapshot(ctx context.Context, snapshot types.ManagedObjectReference, removeChildren bool) (*types.ManagedObjectReference, error)
	RenameSnapshot(ctx context.Context, snapshot types.ManagedObjectReference, name, description *string) error
	RevertToSnapshot(ctx context.Context, snapshot types.ManagedObjectReference) (*types.ManagedObjectReference, error)
	RemoveAllSnapshots(ctx context.Context, ref types.ManagedObjectReference) (*types.ManagedObjectReference, error)
}
