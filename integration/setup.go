package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/virtwire/vsphere-go-sdk/pkg/config"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
	"github.com/virtwire/vsphere-go-sdk/vsphere"
)

// One client is shared by every test in the package; vCenter caps the
// number of concurrent sessions per user.
var (
	globalClient      library.Library
	clientMutex       sync.Mutex
	clientInitialized bool
)

func initializeClient(ctx context.Context) (library.Library, error) {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	if clientInitialized && globalClient != nil {
		return globalClient, nil
	}

	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	client, err := vsphere.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vSphere client: %w", err)
	}

	globalClient = client
	clientInitialized = true

	return client, nil
}

type TestClient struct {
	Client       library.Library
	VMName       string
	Folder       string
	Datacenter   string
	TestPrefix   string
	SkipTeardown bool
}

func Setup(t *testing.T) *TestClient {
	if os.Getenv("VMWARE_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set VMWARE_INTEGRATION_TESTS=true to run")
	}

	client, err := initializeClient(context.Background())
	if err != nil {
		t.Fatalf("Failed to initialize client: %v", err)
	}

	testPrefix := os.Getenv("VMWARE_TEST_PREFIX")
	if testPrefix == "" {
		testPrefix = "go-sdk-test"
	}

	tc := &TestClient{
		Client:       client,
		VMName:       os.Getenv("VMWARE_TEST_VM"),
		Folder:       os.Getenv("VMWARE_TEST_FOLDER"),
		Datacenter:   os.Getenv("VMWARE_DATACENTER"),
		TestPrefix:   testPrefix,
		SkipTeardown: os.Getenv("VMWARE_SKIP_TEARDOWN") == "true",
	}

	tc.validateEnvironment(t)

	return tc
}

func (tc *TestClient) validateEnvironment(t *testing.T) {
	missingVars := []string{}

	if tc.VMName == "" {
		missingVars = append(missingVars, "VMWARE_TEST_VM")
	}
	if tc.Folder == "" {
		missingVars = append(missingVars, "VMWARE_TEST_FOLDER")
	}

	if len(missingVars) > 0 {
		t.Fatalf("Missing required environment variables: %v", missingVars)
	}
}

func (tc *TestClient) GenerateResourceName(resourceType string) string {
	return fmt.Sprintf("%s-%s-%d", tc.TestPrefix, resourceType, os.Getpid())
}

// baseRequest targets the VM the environment points the suite at.
func (tc *TestClient) baseRequest() *payloads.SnapshotRequest {
	return &payloads.SnapshotRequest{
		VMName:     tc.VMName,
		Folder:     tc.Folder,
		Datacenter: tc.Datacenter,
	}
}

// CleanupSnapshots removes whatever snapshots the suite left on the
// test VM.
func (tc *TestClient) CleanupSnapshots(t *testing.T) {
	if tc.SkipTeardown {
		t.Logf("Skipping snapshot cleanup on %s", tc.VMName)
		return
	}

	if _, err := tc.Client.Snapshot().RemoveAll(context.Background(), tc.baseRequest()); err != nil {
		t.Logf("Failed to remove snapshots of %s: %v", tc.VMName, err)
	}
}
