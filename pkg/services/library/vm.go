package library

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/vm.go . VM

type VM interface {
	// FindOne resolves a selector to exactly one VM. Name lookups need a
	// folder; name, UUID and MOID are mutually exclusive; several VMs
	// sharing a name are picked by the selector's NameMatch.
	FindOne(ctx context.Context, selector *payloads.VMSelector) (*payloads.VirtualMachine, error)

	// Describe refetches the VM's identity and capability properties.
	Describe(ctx context.Context, ref types.ManagedObjectReference) (*payloads.VirtualMachine, error)
}
