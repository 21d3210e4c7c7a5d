package library

import (
	"context"

	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

// Apply is the declarative entry point: the request's State picks the
// operation, and the direct methods below are the individual arms with
// identical semantics for callers that know what they want.
//
//go:generate mockgen --build_flags=--mod=mod --destination mock/snapshot.go . Snapshot
type Snapshot interface {
	Apply(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error)

	// List projects the VM's snapshot tree without changing anything.
	List(ctx context.Context, selector *payloads.VMSelector) (*payloads.SnapshotInfo, error)

	Create(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error)
	Remove(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error)
	// Rename applies the request's new name and/or new description to the
	// snapshot. When neither is supplied the call still goes through with
	// no fields set; callers should avoid that.
	Rename(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error)
	Revert(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error)
	RemoveAll(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error)
}
