package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/pkg/config"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/vsphere"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

// options holds every flag value. Connection flags override the VMWARE_*
// environment variables; only flags the user actually set are forwarded.
type options struct {
	hostname      string
	username      string
	password      string
	port          int
	validateCerts bool
	proxyHost     string
	proxyPort     int
	proxyProtocol string

	state           string
	vmName          string
	nameMatch       string
	uuid            string
	useInstanceUUID bool
	moid            string
	folder          string
	datacenter      string
	snapshotName    string
	snapshotID      int32
	description     string
	quiesce         bool
	memoryDump      bool
	removeChildren  bool
	newSnapshotName string
	newDescription  string

	output string
}

func main() {
	if err := newRootCommand(&options{}).Execute(); err != nil {
		fail(err)
	}
}

// fail mirrors the result contract on the error path: a JSON object on
// stderr and a non-zero exit.
func fail(err error) {
	out, marshalErr := json.Marshal(map[string]any{"failed": true, "msg": err.Error()})
	if marshalErr != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		fmt.Fprintln(os.Stderr, string(out))
	}
	os.Exit(1)
}

func newRootCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vsnap",
		Short: "Manage snapshots of vSphere virtual machines",
		Long: "vsnap creates, removes, renames and reverts to snapshots of vCenter\n" +
			"and ESXi virtual machines. Connection parameters default to the\n" +
			"VMWARE_* environment variables; flags override them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&o.hostname, "hostname", "", "vCenter or ESXi hostname (VMWARE_HOST)")
	flags.StringVarP(&o.username, "username", "u", "", "API username (VMWARE_USER)")
	flags.StringVarP(&o.password, "password", "p", "", "API password (VMWARE_PASSWORD)")
	flags.IntVar(&o.port, "port", core.DefaultHTTPSPort, "API port (VMWARE_PORT)")
	flags.BoolVar(&o.validateCerts, "validate-certs", true, "verify the server's TLS certificate (VMWARE_VALIDATE_CERTS)")
	flags.StringVar(&o.proxyHost, "proxy-host", "", "HTTP proxy host (VMWARE_PROXY_HOST)")
	flags.IntVar(&o.proxyPort, "proxy-port", 0, "HTTP proxy port (VMWARE_PROXY_PORT)")
	flags.StringVar(&o.proxyProtocol, "proxy-protocol", "http", "HTTP proxy protocol (VMWARE_PROXY_PROTOCOL)")

	flags.StringVar(&o.state, "state", "present", "desired state: present, absent, rename, revert or remove_all")
	flags.StringVar(&o.vmName, "vm-name", "", "name of the virtual machine")
	flags.StringVar(&o.nameMatch, "name-match", "", "pick the first or last VM when several share the name")
	flags.StringVar(&o.uuid, "uuid", "", "BIOS UUID of the virtual machine")
	flags.BoolVar(&o.useInstanceUUID, "use-instance-uuid", false, "treat --uuid as the vCenter instance UUID")
	flags.StringVar(&o.moid, "moid", "", "managed object ID of the virtual machine")
	flags.StringVar(&o.folder, "folder", "", "folder of the VM, required with --vm-name")
	flags.StringVar(&o.datacenter, "datacenter", "", "datacenter to search in (VMWARE_DATACENTER)")
	flags.StringVar(&o.snapshotName, "snapshot-name", "", "name of the snapshot to manage")
	flags.Int32Var(&o.snapshotID, "snapshot-id", 0, "ID of the snapshot to manage, instead of --snapshot-name")
	flags.StringVar(&o.description, "description", "", "description for a new snapshot")
	flags.BoolVar(&o.quiesce, "quiesce", false, "quiesce the guest file system, needs VMware Tools")
	flags.BoolVar(&o.memoryDump, "memory-dump", false, "include the memory state in the snapshot")
	flags.BoolVar(&o.removeChildren, "remove-children", false, "also remove the snapshot's children")
	flags.StringVar(&o.newSnapshotName, "new-snapshot-name", "", "new name when renaming")
	flags.StringVar(&o.newDescription, "new-description", "", "new description when renaming")

	flags.StringVarP(&o.output, "output", "o", outputJSON, "output format: json or table")

	return cmd
}

func run(cmd *cobra.Command, o *options) error {
	cfg, err := config.FromMap(connectionParams(cmd, o))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := vsphere.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Logout(context.Background()) }()

	result, err := client.Snapshot().Apply(ctx, o.request(cmd))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), o.output, result)
}

// connectionParams collects only the connection flags the user set, so
// the environment keeps providing everything else.
func connectionParams(cmd *cobra.Command, o *options) map[string]any {
	params := map[string]any{}
	set := func(flag, key string, value any) {
		if cmd.Flags().Changed(flag) {
			params[key] = value
		}
	}
	set("hostname", "hostname", o.hostname)
	set("username", "username", o.username)
	set("password", "password", o.password)
	set("port", "port", o.port)
	set("validate-certs", "validate_certs", o.validateCerts)
	set("datacenter", "datacenter", o.datacenter)
	set("proxy-host", "proxy_host", o.proxyHost)
	set("proxy-port", "proxy_port", o.proxyPort)
	set("proxy-protocol", "proxy_protocol", o.proxyProtocol)
	return params
}

// request maps the operation flags onto a snapshot request. A snapshot ID
// of 0 is valid, so the ID only counts when its flag was really passed.
func (o *options) request(cmd *cobra.Command) *payloads.SnapshotRequest {
	req := &payloads.SnapshotRequest{
		State:           payloads.SnapshotState(o.state),
		VMName:          o.vmName,
		NameMatch:       o.nameMatch,
		UUID:            o.uuid,
		MOID:            o.moid,
		UseInstanceUUID: o.useInstanceUUID,
		Folder:          o.folder,
		Datacenter:      o.datacenter,
		SnapshotName:    o.snapshotName,
		Description:     o.description,
		Quiesce:         o.quiesce,
		MemoryDump:      o.memoryDump,
		RemoveChildren:  o.removeChildren,
		NewSnapshotName: o.newSnapshotName,
		NewDescription:  o.newDescription,
	}
	if cmd.Flags().Changed("snapshot-id") {
		req.SnapshotID = o.snapshotID
		req.SnapshotIDSet = true
	}
	return req
}

func render(w io.Writer, format string, result *payloads.SnapshotResult) error {
	switch format {
	case outputTable:
		fmt.Fprintf(w, "changed: %v\n", result.Changed)
		if result.Msg != "" {
			fmt.Fprintf(w, "msg: %s\n", result.Msg)
		}
		if result.SnapshotResults != nil {
			fmt.Fprintln(w, result.SnapshotResults.Tabulate())
		}
		return nil
	case outputJSON:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	default:
		return fmt.Errorf("invalid output format %q, expected one of json, table", format)
	}
}
