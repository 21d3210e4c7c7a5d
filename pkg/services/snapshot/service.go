package snapshot

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
)

type Service struct {
	vms   library.VM
	tasks library.Task
	ops   library.GuestOperator
	log   *logger.Logger
}

func New(
	vms library.VM,
	tasks library.Task,
	ops library.GuestOperator,
	log *logger.Logger,
) library.Snapshot {
	return &Service{
		vms:   vms,
		tasks: tasks,
		ops:   ops,
		log:   log,
	}
}

// Apply runs exactly one lifecycle transition and reports its outcome.
// Mutating arms either fully complete, task awaited and tree refreshed,
// or fail without reporting Changed.
func (s *Service) Apply(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error) {
	state, err := payloads.ParseSnapshotState(string(req.State))
	if err != nil {
		return nil, err
	}
	normalized := *req
	normalized.State = state
	req = &normalized

	if req.SnapshotName != "" && req.SnapshotIDSet {
		return nil, fmt.Errorf("snapshot_name and snapshot_id are mutually exclusive")
	}
	if req.SnapshotName == "" && !req.SnapshotIDSet && state != payloads.SnapshotRemoveAll {
		return nil, fmt.Errorf("snapshot_name param required when state is '%s'", state)
	}

	machine, err := s.vms.FindOne(ctx, req.Selector())
	if err != nil {
		return nil, err
	}

	view, err := s.ops.SnapshotView(ctx, machine.Ref)
	if err != nil {
		return nil, err
	}

	target, matches := ResolveTarget(req, view.RootList)
	if target == nil && requiresTarget(state) {
		if matches > 1 {
			return nil, core.NewAmbiguousSnapshotError(req.SnapshotSelector(), req.VMID(), matches)
		}
		return nil, core.NewSnapshotNotFoundError(req.SnapshotSelector(), req.VMID())
	}

	// present with an existing target changes nothing.
	if state == payloads.SnapshotPresent && target != nil {
		return &payloads.SnapshotResult{
			Msg:             fmt.Sprintf("Snapshot named [%s] already exists", req.SnapshotName),
			SnapshotResults: Project(view),
		}, nil
	}

	// Each arm returns the task to await, or nil when the server answered
	// synchronously.
	var task *types.ManagedObjectReference
	switch state {
	case payloads.SnapshotPresent:
		task, err = s.create(ctx, req, view)
	case payloads.SnapshotRename:
		err = s.rename(ctx, req, target)
	case payloads.SnapshotAbsent:
		task, err = s.ops.RemoveSnapshot(ctx, target.Snapshot, req.RemoveChildren)
	case payloads.SnapshotRevert:
		task, err = s.ops.RevertToSnapshot(ctx, target.Snapshot)
	case payloads.SnapshotRemoveAll:
		task, err = s.ops.RemoveAllSnapshots(ctx, machine.Ref)
	}
	if err != nil {
		return nil, err
	}

	if task != nil {
		if _, err := s.tasks.WaitForCompletion(ctx, *task); err != nil {
			return nil, err
		}
	}

	result := &payloads.SnapshotResult{
		Changed: true,
		Renamed: state == payloads.SnapshotRename,
	}

	refreshed, err := s.ops.SnapshotView(ctx, machine.Ref)
	if err != nil {
		return nil, err
	}
	result.SnapshotResults = Project(refreshed)
	return result, nil
}

// List projects the snapshot tree of the selected VM without writes.
func (s *Service) List(ctx context.Context, selector *payloads.VMSelector) (*payloads.SnapshotInfo, error) {
	machine, err := s.vms.FindOne(ctx, selector)
	if err != nil {
		return nil, err
	}

	view, err := s.ops.SnapshotView(ctx, machine.Ref)
	if err != nil {
		return nil, err
	}
	return Project(view), nil
}

func (s *Service) Create(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error) {
	return s.applyState(ctx, req, payloads.SnapshotPresent)
}

func (s *Service) Remove(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error) {
	return s.applyState(ctx, req, payloads.SnapshotAbsent)
}

func (s *Service) Rename(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error) {
	return s.applyState(ctx, req, payloads.SnapshotRename)
}

func (s *Service) Revert(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error) {
	return s.applyState(ctx, req, payloads.SnapshotRevert)
}

func (s *Service) RemoveAll(ctx context.Context, req *payloads.SnapshotRequest) (*payloads.SnapshotResult, error) {
	return s.applyState(ctx, req, payloads.SnapshotRemoveAll)
}

func (s *Service) applyState(ctx context.Context, req *payloads.SnapshotRequest, state payloads.SnapshotState) (*payloads.SnapshotResult, error) {
	forced := *req
	forced.State = state
	return s.Apply(ctx, &forced)
}

func (s *Service) create(ctx context.Context, req *payloads.SnapshotRequest, view *payloads.GuestSnapshotView) (*types.ManagedObjectReference, error) {
	// Options the VM cannot honor are downgraded, not failed.
	memoryDump := req.MemoryDump && view.VM.MemorySnapshotsSupported
	quiesce := req.Quiesce && view.VM.QuiescedSnapshotsSupported
	if memoryDump != req.MemoryDump || quiesce != req.Quiesce {
		s.log.Debug("snapshot options downgraded to VM capabilities",
			zap.String("vm", view.VM.Name),
			zap.Bool("memoryDump", memoryDump),
			zap.Bool("quiesce", quiesce))
	}

	task, err := s.ops.CreateSnapshot(ctx, view.VM.Ref, req.SnapshotName, req.Description, memoryDump, quiesce)
	if err != nil {
		if isLicenceRestricted(err) {
			return nil, core.NewApiAccessError("",
				"failed to take snapshot due to VMware licence restriction", err)
		}
		return nil, core.NewApiAccessError("",
			fmt.Sprintf("failed to create snapshot of virtual machine %s", req.VMID()), err)
	}
	return task, nil
}

// rename applies whichever of the two fields the request carries: both,
// the name alone, or the description. The last branch also covers a
// request with neither supplied, which goes out with no fields set and
// renames nothing.
func (s *Service) rename(ctx context.Context, req *payloads.SnapshotRequest, target *types.VirtualMachineSnapshotTree) error {
	var name, description *string
	switch {
	case req.NewSnapshotName != "" && req.NewDescription != "":
		name, description = &req.NewSnapshotName, &req.NewDescription
	case req.NewSnapshotName != "":
		name = &req.NewSnapshotName
	default:
		description = &req.NewDescription
	}
	return s.ops.RenameSnapshot(ctx, target.Snapshot, name, description)
}

func requiresTarget(state payloads.SnapshotState) bool {
	switch state {
	case payloads.SnapshotAbsent, payloads.SnapshotRevert, payloads.SnapshotRename:
		return true
	default:
		return false
	}
}

// isLicenceRestricted reports whether the create call was rejected for
// licensing reasons, which gets its own user-facing message.
func isLicenceRestricted(err error) bool {
	if soap.IsSoapFault(err) {
		switch soap.ToSoapFault(err).VimFault().(type) {
		case types.RestrictedVersion, *types.RestrictedVersion:
			return true
		}
	}
	return false
}
