package payloads

import (
	"fmt"

	"github.com/vmware/govmomi/vim25/types"
)

// VirtualMachine is the slice of VM state the snapshot services work
// with. Ref is the managed object reference every follow-up call keys on.
type VirtualMachine struct {
	Name         string                       `json:"name"`
	MOID         string                       `json:"moid"`
	UUID         string                       `json:"uuid,omitempty"`
	InstanceUUID string                       `json:"instance_uuid,omitempty"`
	PowerState   string                       `json:"power_state,omitempty"`
	Ref          types.ManagedObjectReference `json:"-"`

	MemorySnapshotsSupported   bool `json:"-"`
	QuiescedSnapshotsSupported bool `json:"-"`
}

const (
	NameMatchFirst = "first"
	NameMatchLast  = "last"
)

// VMSelector identifies one VM. Exactly one of Name, UUID or MOID must be
// set; Name additionally requires Folder. NameMatch picks among several
// VMs sharing a name, defaulting to first.
type VMSelector struct {
	Name            string
	NameMatch       string
	UUID            string
	UseInstanceUUID bool
	MOID            string
	Folder          string
	Datacenter      string
}

// String renders the selector for error messages, naming the field the
// lookup keyed on.
func (s *VMSelector) String() string {
	switch {
	case s.Name != "":
		return fmt.Sprintf("name %q", s.Name)
	case s.UUID != "" && s.UseInstanceUUID:
		return fmt.Sprintf("instance uuid %q", s.UUID)
	case s.UUID != "":
		return fmt.Sprintf("uuid %q", s.UUID)
	case s.MOID != "":
		return fmt.Sprintf("moid %q", s.MOID)
	default:
		return "empty selector"
	}
}
