package snapshot

import (
	"github.com/vmware/govmomi/vim25/types"

	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

// FindByName walks the whole snapshot tree depth first, parents before
// children, and returns every node whose name matches exactly. A match
// does not stop the walk: duplicate names can appear anywhere, including
// below another match.
func FindByName(rootList []types.VirtualMachineSnapshotTree, name string) []types.VirtualMachineSnapshotTree {
	return collect(rootList, func(node *types.VirtualMachineSnapshotTree) bool {
		return node.Name == name
	})
}

// FindByID is FindByName over the numeric snapshot id.
func FindByID(rootList []types.VirtualMachineSnapshotTree, id int32) []types.VirtualMachineSnapshotTree {
	return collect(rootList, func(node *types.VirtualMachineSnapshotTree) bool {
		return node.Id == id
	})
}

func collect(nodes []types.VirtualMachineSnapshotTree, match func(*types.VirtualMachineSnapshotTree) bool) []types.VirtualMachineSnapshotTree {
	var found []types.VirtualMachineSnapshotTree
	for i := range nodes {
		if match(&nodes[i]) {
			found = append(found, nodes[i])
		}
		found = append(found, collect(nodes[i].ChildSnapshotList, match)...)
	}
	return found
}

// ResolveTarget picks the snapshot a request addresses. The name selector
// wins when set; the id is consulted otherwise, and only for the states
// that may address snapshots by id. The target is nil unless exactly one
// node matched: zero and several matches both come back as no target,
// with the match count for diagnostics.
func ResolveTarget(req *payloads.SnapshotRequest, rootList []types.VirtualMachineSnapshotTree) (*types.VirtualMachineSnapshotTree, int) {
	var matches []types.VirtualMachineSnapshotTree
	switch {
	case req.SnapshotName != "":
		matches = FindByName(rootList, req.SnapshotName)
	case req.SnapshotIDSet && (req.State == payloads.SnapshotAbsent || req.State == payloads.SnapshotRevert):
		matches = FindByID(rootList, req.SnapshotID)
	default:
		return nil, 0
	}

	if len(matches) == 1 {
		return &matches[0], 1
	}
	return nil, len(matches)
}

// Flatten projects the tree into the reported list, preserving the walk
// order of the search: depth first, parents before children.
func Flatten(rootList []types.VirtualMachineSnapshotTree) []payloads.Snapshot {
	var flat []payloads.Snapshot
	for i := range rootList {
		flat = append(flat, toSnapshot(&rootList[i]))
		flat = append(flat, Flatten(rootList[i].ChildSnapshotList)...)
	}
	return flat
}

// Project turns a snapshot view into the reported SnapshotInfo. The
// current snapshot entry is the flattened node whose reference equals the
// view's current pointer, absent when the VM has no current snapshot.
func Project(view *payloads.GuestSnapshotView) *payloads.SnapshotInfo {
	info := &payloads.SnapshotInfo{Snapshots: []payloads.Snapshot{}}
	if view == nil {
		return info
	}

	if flat := Flatten(view.RootList); flat != nil {
		info.Snapshots = flat
	}
	if view.Current == nil {
		return info
	}
	if node := findByRef(view.RootList, *view.Current); node != nil {
		current := toSnapshot(node)
		info.CurrentSnapshot = &current
	}
	return info
}

func findByRef(nodes []types.VirtualMachineSnapshotTree, ref types.ManagedObjectReference) *types.VirtualMachineSnapshotTree {
	for i := range nodes {
		if nodes[i].Snapshot == ref {
			return &nodes[i]
		}
		if found := findByRef(nodes[i].ChildSnapshotList, ref); found != nil {
			return found
		}
	}
	return nil
}

func toSnapshot(node *types.VirtualMachineSnapshotTree) payloads.Snapshot {
	return payloads.Snapshot{
		ID:           node.Id,
		Name:         node.Name,
		Description:  node.Description,
		CreationTime: node.CreateTime,
		State:        string(node.State),
		Quiesced:     node.Quiesced,
	}
}
