package payloads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSnapshotState(t *testing.T) {
	t.Run("empty defaults to present", func(t *testing.T) {
		state, err := ParseSnapshotState("")
		assert.NoError(t, err)
		assert.Equal(t, SnapshotPresent, state)
	})

	t.Run("all known states parse", func(t *testing.T) {
		for _, s := range []string{"present", "absent", "rename", "revert", "remove_all"} {
			state, err := ParseSnapshotState(s)
			assert.NoError(t, err)
			assert.Equal(t, SnapshotState(s), state)
		}
	})

	t.Run("unknown state is rejected with the choices listed", func(t *testing.T) {
		_, err := ParseSnapshotState("detached")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "remove_all")
	})
}

func TestSnapshotRequestVMID(t *testing.T) {
	t.Run("uuid wins over name and moid", func(t *testing.T) {
		req := &SnapshotRequest{UUID: "u-1", VMName: "vm", MOID: "vm-42"}
		assert.Equal(t, "u-1", req.VMID())
	})

	t.Run("name wins over moid", func(t *testing.T) {
		req := &SnapshotRequest{VMName: "vm", MOID: "vm-42"}
		assert.Equal(t, "vm", req.VMID())
	})

	t.Run("moid when nothing else is set", func(t *testing.T) {
		req := &SnapshotRequest{MOID: "vm-42"}
		assert.Equal(t, "vm-42", req.VMID())
	})
}

func TestSnapshotSelector(t *testing.T) {
	req := &SnapshotRequest{SnapshotName: "snap1", SnapshotID: 7}
	assert.Equal(t, "snap1", req.SnapshotSelector())

	req = &SnapshotRequest{SnapshotID: 7}
	assert.Equal(t, "7", req.SnapshotSelector())
}

func TestVMSelectorString(t *testing.T) {
	assert.Equal(t, `name "web-01"`, (&VMSelector{Name: "web-01"}).String())
	assert.Equal(t, `uuid "4237f357"`, (&VMSelector{UUID: "4237f357"}).String())
	assert.Equal(t, `instance uuid "5017c1c2"`, (&VMSelector{UUID: "5017c1c2", UseInstanceUUID: true}).String())
	assert.Equal(t, `moid "vm-42"`, (&VMSelector{MOID: "vm-42"}).String())
	assert.Equal(t, "empty selector", (&VMSelector{}).String())
}

func TestSnapshotInfoTabulate(t *testing.T) {
	t.Run("empty info renders a placeholder", func(t *testing.T) {
		assert.Equal(t, "no snapshots", (&SnapshotInfo{}).Tabulate())
	})

	t.Run("current snapshot is marked", func(t *testing.T) {
		created := time.Date(2025, 4, 9, 14, 40, 26, 0, time.UTC)
		info := &SnapshotInfo{
			CurrentSnapshot: &Snapshot{ID: 2, Name: "snap2"},
			Snapshots: []Snapshot{
				{ID: 1, Name: "snap1", State: "poweredOff", CreationTime: created},
				{ID: 2, Name: "snap2", State: "poweredOff", CreationTime: created},
			},
		}
		out := info.Tabulate()
		assert.Contains(t, out, "snap1")
		assert.Contains(t, out, "snap2")
		assert.Contains(t, out, "*")
		assert.Contains(t, out, "Created")
	})
}
