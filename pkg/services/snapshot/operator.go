package snapshot

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/methods"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/client"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
)

// viewProperties is the property set one view fetch retrieves. The tree,
// the current pointer and the capability bits must come from the same
// read so the dispatcher never mixes generations.
var viewProperties = []string{
	"name",
	"snapshot",
	"capability",
	"runtime.powerState",
	"config.uuid",
	"config.instanceUuid",
}

// Operator issues the raw vSphere snapshot calls. Snapshot objects have
// no object wrapper in the vendor SDK, so the per-snapshot operations go
// through the generated SOAP methods directly.
type Operator struct {
	client *client.Client
	log    *logger.Logger
}

func NewOperator(client *client.Client, log *logger.Logger) library.GuestOperator {
	return &Operator{client: client, log: log}
}

func (o *Operator) SnapshotView(ctx context.Context, ref types.ManagedObjectReference) (*payloads.GuestSnapshotView, error) {
	machine := object.NewVirtualMachine(o.client.VimClient(), ref)

	var props mo.VirtualMachine
	if err := machine.Properties(ctx, ref, viewProperties, &props); err != nil {
		return nil, fmt.Errorf("failed to read snapshot state of %s: %w", ref.Value, err)
	}

	view := &payloads.GuestSnapshotView{
		VM: payloads.VirtualMachine{
			Name:       props.Name,
			MOID:       ref.Value,
			PowerState: string(props.Runtime.PowerState),
			Ref:        ref,

			MemorySnapshotsSupported:   props.Capability.MemorySnapshotsSupported,
			QuiescedSnapshotsSupported: props.Capability.QuiescedSnapshotsSupported,
		},
	}
	if props.Config != nil {
		view.VM.UUID = props.Config.Uuid
		view.VM.InstanceUUID = props.Config.InstanceUuid
	}
	if props.Snapshot != nil {
		view.RootList = props.Snapshot.RootSnapshotList
		view.Current = props.Snapshot.CurrentSnapshot
	}
	return view, nil
}

func (o *Operator) CreateSnapshot(ctx context.Context, ref types.ManagedObjectReference, name, description string, memory, quiesce bool) (*types.ManagedObjectReference, error) {
	o.log.Debug("creating snapshot",
		zap.String("vm", ref.Value),
		zap.String("name", name),
		zap.Bool("memory", memory),
		zap.Bool("quiesce", quiesce))

	machine := object.NewVirtualMachine(o.client.VimClient(), ref)
	task, err := machine.CreateSnapshot(ctx, name, description, memory, quiesce)
	if err != nil {
		return nil, err
	}
	taskRef := task.Reference()
	return &taskRef, nil
}

func (o *Operator) RemoveSnapshot(ctx context.Context, snapshot types.ManagedObjectReference, removeChildren bool) (*types.ManagedObjectReference, error) {
	req := types.RemoveSnapshot_Task{
		This:           snapshot,
		RemoveChildren: removeChildren,
	}
	res, err := methods.RemoveSnapshot_Task(ctx, o.client.VimClient(), &req)
	if err != nil {
		return nil, err
	}
	return &res.Returnval, nil
}

// RenameSnapshot changes the name, the description or both. Nil means
// leave that field alone. The server answers the call synchronously,
// there is no task to await.
func (o *Operator) RenameSnapshot(ctx context.Context, snapshot types.ManagedObjectReference, name, description *string) error {
	req := types.RenameSnapshot{This: snapshot}
	if name != nil {
		req.Name = *name
	}
	if description != nil {
		req.Description = *description
	}
	_, err := methods.RenameSnapshot(ctx, o.client.VimClient(), &req)
	return err
}

func (o *Operator) RevertToSnapshot(ctx context.Context, snapshot types.ManagedObjectReference) (*types.ManagedObjectReference, error) {
	req := types.RevertToSnapshot_Task{This: snapshot}
	res, err := methods.RevertToSnapshot_Task(ctx, o.client.VimClient(), &req)
	if err != nil {
		return nil, err
	}
	return &res.Returnval, nil
}

func (o *Operator) RemoveAllSnapshots(ctx context.Context, ref types.ManagedObjectReference) (*types.ManagedObjectReference, error) {
	machine := object.NewVirtualMachine(o.client.VimClient(), ref)
	task, err := machine.RemoveAllSnapshot(ctx, nil)
	if err != nil {
		return nil, err
	}
	taskRef := task.Reference()
	return &taskRef, nil
}
