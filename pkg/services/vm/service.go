package vm

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/client"
	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
)

// vmProperties is the property set every lookup result is described with.
var vmProperties = []string{
	"name",
	"config.uuid",
	"config.instanceUuid",
	"runtime.powerState",
	"capability",
}

type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.VM {
	return &Service{client: client, log: log}
}

// FindOne resolves the selector to exactly one virtual machine. Exactly
// one of name, uuid or moid must be set, and name lookups additionally
// need folder. A selector that matches nothing returns a VMNotFoundError.
func (s *Service) FindOne(ctx context.Context, selector *payloads.VMSelector) (*payloads.VirtualMachine, error) {
	if err := validateSelector(selector); err != nil {
		return nil, err
	}

	switch {
	case selector.MOID != "":
		return s.findByMOID(ctx, selector)
	case selector.UUID != "":
		return s.findByUUID(ctx, selector)
	default:
		return s.findByName(ctx, selector)
	}
}

// Describe fetches the payload fields for the referenced virtual machine.
func (s *Service) Describe(ctx context.Context, ref types.ManagedObjectReference) (*payloads.VirtualMachine, error) {
	machine := object.NewVirtualMachine(s.client.VimClient(), ref)

	var props mo.VirtualMachine
	if err := machine.Properties(ctx, ref, vmProperties, &props); err != nil {
		if isNotFound(err) {
			return nil, core.NewVMNotFoundError(fmt.Sprintf("moid %q", ref.Value))
		}
		s.log.Error("failed to fetch VM properties", zap.String("moid", ref.Value), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch properties of %s: %w", ref.Value, err)
	}

	result := &payloads.VirtualMachine{
		Name:       props.Name,
		MOID:       ref.Value,
		PowerState: string(props.Runtime.PowerState),
		Ref:        ref,

		MemorySnapshotsSupported:   props.Capability.MemorySnapshotsSupported,
		QuiescedSnapshotsSupported: props.Capability.QuiescedSnapshotsSupported,
	}
	if props.Config != nil {
		result.UUID = props.Config.Uuid
		result.InstanceUUID = props.Config.InstanceUuid
	}
	return result, nil
}

func (s *Service) findByMOID(ctx context.Context, selector *payloads.VMSelector) (*payloads.VirtualMachine, error) {
	// Describe verifies existence; its not-found error already names the moid.
	ref := types.ManagedObjectReference{Type: core.VirtualMachineKind, Value: selector.MOID}
	return s.Describe(ctx, ref)
}

func (s *Service) findByUUID(ctx context.Context, selector *payloads.VMSelector) (*payloads.VirtualMachine, error) {
	if _, err := uuid.FromString(selector.UUID); err != nil {
		return nil, fmt.Errorf("invalid virtual machine uuid %q: %w", selector.UUID, err)
	}

	dc, err := s.datacenter(ctx, selector)
	if err != nil {
		return nil, err
	}

	// BIOS UUID by default, instance UUID on request.
	instanceUUID := selector.UseInstanceUUID
	index := object.NewSearchIndex(s.client.VimClient())
	found, err := index.FindByUuid(ctx, dc, selector.UUID, true, &instanceUUID)
	if err != nil {
		s.log.Error("uuid lookup failed", zap.String("uuid", selector.UUID), zap.Error(err))
		return nil, fmt.Errorf("uuid lookup for %s failed: %w", selector, err)
	}
	if found == nil {
		return nil, core.NewVMNotFoundError(selector.String())
	}
	return s.Describe(ctx, found.Reference())
}

func (s *Service) findByName(ctx context.Context, selector *payloads.VMSelector) (*payloads.VirtualMachine, error) {
	dc, err := s.datacenter(ctx, selector)
	if err != nil {
		return nil, err
	}

	finder := find.NewFinder(s.client.VimClient(), true)
	finder.SetDatacenter(dc)

	folderPath := core.VMFolderPath(selector.Folder, dc.Name())
	candidates, err := finder.VirtualMachineList(ctx, core.JoinInventoryPath(folderPath, selector.Name))
	if err != nil {
		if isNotFound(err) {
			return nil, core.NewVMNotFoundError(selector.String())
		}
		s.log.Error("failed to list virtual machines",
			zap.String("folder", folderPath), zap.Error(err))
		return nil, fmt.Errorf("failed to list virtual machines under %s: %w", folderPath, err)
	}

	// The list pattern globs, so pin the exact name before picking.
	var matches []*object.VirtualMachine
	for _, candidate := range candidates {
		if candidate.Name() == selector.Name {
			matches = append(matches, candidate)
		}
	}
	if len(matches) == 0 {
		return nil, core.NewVMNotFoundError(selector.String())
	}
	if len(matches) > 1 {
		s.log.Debug("multiple virtual machines share this name",
			zap.String("name", selector.Name),
			zap.Int("matches", len(matches)),
			zap.String("nameMatch", nameMatchOrDefault(selector.NameMatch)))
	}

	picked := matches[0]
	if nameMatchOrDefault(selector.NameMatch) == payloads.NameMatchLast {
		picked = matches[len(matches)-1]
	}
	return s.Describe(ctx, picked.Reference())
}

// datacenter resolves the datacenter a lookup runs in: the selector's,
// then the configured default, then the server's default datacenter.
func (s *Service) datacenter(ctx context.Context, selector *payloads.VMSelector) (*object.Datacenter, error) {
	finder := find.NewFinder(s.client.VimClient(), true)

	name := selector.Datacenter
	if name == "" {
		name = s.client.Datacenter()
	}
	if name == "" {
		dc, err := finder.DefaultDatacenter(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get default datacenter: %w", err)
		}
		return dc, nil
	}

	dc, err := finder.Datacenter(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("datacenter %q not found", name)
		}
		return nil, fmt.Errorf("failed to find datacenter %q: %w", name, err)
	}
	return dc, nil
}

func validateSelector(selector *payloads.VMSelector) error {
	set := 0
	for _, value := range []string{selector.Name, selector.UUID, selector.MOID} {
		if value != "" {
			set++
		}
	}
	if set == 0 {
		return core.NewMissingParameterError("name, uuid or moid", "")
	}
	if set > 1 {
		return fmt.Errorf("name, uuid and moid are mutually exclusive, got %s", selector)
	}
	if selector.Name != "" && selector.Folder == "" {
		return core.NewMissingParameterError("folder", "")
	}
	if match := selector.NameMatch; match != "" && match != payloads.NameMatchFirst && match != payloads.NameMatchLast {
		return fmt.Errorf("name_match must be %q or %q, got %q",
			payloads.NameMatchFirst, payloads.NameMatchLast, match)
	}
	return nil
}

func nameMatchOrDefault(match string) string {
	if match == "" {
		return payloads.NameMatchFirst
	}
	return match
}

// isNotFound classifies the lookup errors that mean the object does not
// exist, as opposed to the call itself failing.
func isNotFound(err error) bool {
	if soap.IsSoapFault(err) {
		switch soap.ToSoapFault(err).VimFault().(type) {
		case types.ManagedObjectNotFound, *types.ManagedObjectNotFound:
			return true
		}
	}
	var notFound *find.NotFoundError
	return errors.As(err, &notFound)
}
