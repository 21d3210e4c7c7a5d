package payloads

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bndr/gotabulate"
	"github.com/vmware/govmomi/vim25/types"
)

// Snapshot is the flattened view of one node of a VM's snapshot tree.
// The tree itself is the API's VirtualMachineSnapshotTree; this type keeps
// only what callers report on.
type Snapshot struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreationTime time.Time `json:"creation_time"`
	State        string    `json:"state"`
	Quiesced     bool      `json:"quiesced"`
}

// SnapshotInfo is the projection of a VM's whole snapshot tree:
// every snapshot in pre-order plus the one the disk currently runs on.
type SnapshotInfo struct {
	CurrentSnapshot *Snapshot  `json:"current_snapshot,omitempty"`
	Snapshots       []Snapshot `json:"snapshots"`
}

// Tabulate renders the snapshot list as a text grid for humans.
func (s *SnapshotInfo) Tabulate() string {
	if s == nil || len(s.Snapshots) == 0 {
		return "no snapshots"
	}

	current := int32(-1)
	if s.CurrentSnapshot != nil {
		current = s.CurrentSnapshot.ID
	}

	rows := make([][]any, 0, len(s.Snapshots))
	for _, snap := range s.Snapshots {
		marker := ""
		if snap.ID == current {
			marker = "*"
		}
		rows = append(rows, []any{
			marker,
			strconv.FormatInt(int64(snap.ID), 10),
			snap.Name,
			snap.State,
			snap.CreationTime.Format(time.RFC3339),
			strconv.FormatBool(snap.Quiesced),
		})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"", "Id", "Name", "State", "Created", "Quiesced"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	return t.Render("grid")
}

// SnapshotState selects the operation the snapshot dispatcher performs.
type SnapshotState string

const (
	SnapshotPresent   SnapshotState = "present"
	SnapshotAbsent    SnapshotState = "absent"
	SnapshotRename    SnapshotState = "rename"
	SnapshotRevert    SnapshotState = "revert"
	SnapshotRemoveAll SnapshotState = "remove_all"
)

// ParseSnapshotState validates the wire spelling of a state. An empty
// string selects present, matching the module's default.
func ParseSnapshotState(s string) (SnapshotState, error) {
	switch SnapshotState(s) {
	case "":
		return SnapshotPresent, nil
	case SnapshotPresent, SnapshotAbsent, SnapshotRename, SnapshotRevert, SnapshotRemoveAll:
		return SnapshotState(s), nil
	default:
		return "", fmt.Errorf("invalid state %q, expected one of present, absent, rename, revert, remove_all", s)
	}
}

// SnapshotRequest carries one snapshot operation. The VM selector fields
// follow the lookup contract: name requires a folder, and name, UUID and
// MOID are mutually exclusive.
//
// SnapshotID is only honored for the absent and revert states.
// SnapshotIDSet distinguishes "id given as zero" from "id not given";
// entry points that decode flat parameters fill it from key presence.
type SnapshotRequest struct {
	State SnapshotState `json:"state" mapstructure:"state"`

	VMName          string `json:"name,omitempty" mapstructure:"name"`
	NameMatch       string `json:"name_match,omitempty" mapstructure:"name_match"`
	UUID            string `json:"uuid,omitempty" mapstructure:"uuid"`
	MOID            string `json:"moid,omitempty" mapstructure:"moid"`
	UseInstanceUUID bool   `json:"use_instance_uuid,omitempty" mapstructure:"use_instance_uuid"`
	Folder          string `json:"folder,omitempty" mapstructure:"folder"`
	Datacenter      string `json:"datacenter,omitempty" mapstructure:"datacenter"`

	SnapshotName  string `json:"snapshot_name,omitempty" mapstructure:"snapshot_name"`
	SnapshotID    int32  `json:"snapshot_id,omitempty" mapstructure:"snapshot_id"`
	SnapshotIDSet bool   `json:"-" mapstructure:"-"`

	Description    string `json:"description,omitempty" mapstructure:"description"`
	Quiesce        bool   `json:"quiesce,omitempty" mapstructure:"quiesce"`
	MemoryDump     bool   `json:"memory_dump,omitempty" mapstructure:"memory_dump"`
	RemoveChildren bool   `json:"remove_children,omitempty" mapstructure:"remove_children"`

	NewSnapshotName string `json:"new_snapshot_name,omitempty" mapstructure:"new_snapshot_name"`
	NewDescription  string `json:"new_description,omitempty" mapstructure:"new_description"`
}

// Selector builds the VM lookup selector from the request fields.
func (r *SnapshotRequest) Selector() *VMSelector {
	return &VMSelector{
		Name:            r.VMName,
		NameMatch:       r.NameMatch,
		UUID:            r.UUID,
		MOID:            r.MOID,
		UseInstanceUUID: r.UseInstanceUUID,
		Folder:          r.Folder,
		Datacenter:      r.Datacenter,
	}
}

// VMID is the identifier operations report in messages: whichever of
// uuid, name or moid the caller selected the VM by.
func (r *SnapshotRequest) VMID() string {
	if r.UUID != "" {
		return r.UUID
	}
	if r.VMName != "" {
		return r.VMName
	}
	return r.MOID
}

// SnapshotSelector renders the snapshot name or id used for resolution,
// for messages.
func (r *SnapshotRequest) SnapshotSelector() string {
	if r.SnapshotName != "" {
		return r.SnapshotName
	}
	return strconv.FormatInt(int64(r.SnapshotID), 10)
}

// SnapshotResult is what a snapshot operation reports back.
type SnapshotResult struct {
	Changed         bool          `json:"changed"`
	Renamed         bool          `json:"renamed"`
	Msg             string        `json:"msg,omitempty"`
	SnapshotResults *SnapshotInfo `json:"snapshot_results,omitempty"`
}

// GuestSnapshotView is everything the dispatcher needs to know about a
// VM's snapshot state in one property fetch: the raw tree, the current
// snapshot reference, and the capabilities that gate create options.
type GuestSnapshotView struct {
	VM       VirtualMachine
	RootList []types.VirtualMachineSnapshotTree
	Current  *types.ManagedObjectReference
}
