package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VMWARE_HOST", "VMWARE_USER", "VMWARE_PASSWORD", "VMWARE_PORT",
		"VMWARE_VALIDATE_CERTS", "VMWARE_DATACENTER", "VMWARE_PROXY_HOST",
		"VMWARE_PROXY_PORT", "VMWARE_PROXY_PROTOCOL", "VMWARE_DEVELOPMENT",
		"VMWARE_RETRY_MODE", "VMWARE_RETRY_MAX_TIME",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNew(t *testing.T) {
	t.Run("each missing required parameter has its own error", func(t *testing.T) {
		clearEnv(t)

		_, err := New()
		require.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "VMWARE_HOST")

		t.Setenv("VMWARE_HOST", "vcenter.local")
		_, err = New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VMWARE_USER")

		t.Setenv("VMWARE_USER", "administrator@vsphere.local")
		_, err = New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VMWARE_PASSWORD")
	})

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VMWARE_HOST", "vcenter.local")
		t.Setenv("VMWARE_USER", "administrator@vsphere.local")
		t.Setenv("VMWARE_PASSWORD", "secret")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, 443, cfg.Port)
		assert.True(t, cfg.ValidateCerts)
		assert.Equal(t, core.Backoff, cfg.RetryMode)
		assert.Equal(t, 5*time.Minute, cfg.RetryMaxTime)
		assert.Equal(t, "vcenter.local:443", cfg.Endpoint())
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VMWARE_HOST", "vcenter.local")
		t.Setenv("VMWARE_USER", "administrator@vsphere.local")
		t.Setenv("VMWARE_PASSWORD", "secret")
		t.Setenv("VMWARE_PORT", "8443")
		t.Setenv("VMWARE_VALIDATE_CERTS", "false")
		t.Setenv("VMWARE_RETRY_MODE", "none")
		t.Setenv("VMWARE_RETRY_MAX_TIME", "30s")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, 8443, cfg.Port)
		assert.False(t, cfg.ValidateCerts)
		assert.Equal(t, core.None, cfg.RetryMode)
		assert.Equal(t, 30*time.Second, cfg.RetryMaxTime)
		assert.Equal(t, "vcenter.local:8443", cfg.Endpoint())
	})

	t.Run("bad port is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VMWARE_HOST", "vcenter.local")
		t.Setenv("VMWARE_USER", "u")
		t.Setenv("VMWARE_PASSWORD", "p")
		t.Setenv("VMWARE_PORT", "https")

		_, err := New()
		assert.Error(t, err)
	})
}

func TestFromMap(t *testing.T) {
	t.Run("flat params decode over env defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VMWARE_PASSWORD", "from-env")

		cfg, err := FromMap(map[string]any{
			"hostname":       "vcenter.local",
			"username":       "administrator@vsphere.local",
			"port":           8443,
			"validate_certs": false,
			"datacenter":     "DC0",
			"retry_mode":     "none",
			"retry_max_time": "45s",
		})
		require.NoError(t, err)
		assert.Equal(t, "vcenter.local", cfg.Host)
		assert.Equal(t, "from-env", cfg.Password)
		assert.Equal(t, 8443, cfg.Port)
		assert.False(t, cfg.ValidateCerts)
		assert.Equal(t, "DC0", cfg.Datacenter)
		assert.Equal(t, core.None, cfg.RetryMode)
		assert.Equal(t, 45*time.Second, cfg.RetryMaxTime)
	})

	t.Run("missing username still fails validation", func(t *testing.T) {
		clearEnv(t)

		_, err := FromMap(map[string]any{
			"hostname": "vcenter.local",
			"password": "secret",
		})
		require.Error(t, err)
		assert.True(t, core.IsMissingParameterError(err))
		assert.Contains(t, err.Error(), "username")
	})
}

func TestFromFile(t *testing.T) {
	t.Run("toml file overrides the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VMWARE_HOST", "ignored.example.com")

		path := filepath.Join(t.TempDir(), "vsphere.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
hostname = "vcenter.local"
username = "administrator@vsphere.local"
password = "secret"
port = 9443
validate_certs = false
datacenter = "DC0"
retry_mode = "backoff"
retry_max_time = "2m"
`), 0o600))

		cfg, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "vcenter.local", cfg.Host)
		assert.Equal(t, 9443, cfg.Port)
		assert.False(t, cfg.ValidateCerts)
		assert.Equal(t, "DC0", cfg.Datacenter)
		assert.Equal(t, core.Backoff, cfg.RetryMode)
		assert.Equal(t, 2*time.Minute, cfg.RetryMaxTime)
	})

	t.Run("unreadable file errors", func(t *testing.T) {
		clearEnv(t)
		_, err := FromFile(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}

func TestEndpoint(t *testing.T) {
	t.Run("host with explicit port passes through", func(t *testing.T) {
		cfg := &Config{Host: "vcenter.local:18443", Port: 443}
		assert.Equal(t, "vcenter.local:18443", cfg.Endpoint())
	})

	t.Run("zero port falls back to 443", func(t *testing.T) {
		cfg := &Config{Host: "vcenter.local"}
		assert.Equal(t, "vcenter.local:443", cfg.Endpoint())
	})
}

func TestProxyURL(t *testing.T) {
	t.Run("no proxy configured", func(t *testing.T) {
		p, err := (&Config{}).ProxyURL()
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("host without port is ignored", func(t *testing.T) {
		p, err := (&Config{ProxyHost: "proxy.local"}).ProxyURL()
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("full proxy", func(t *testing.T) {
		p, err := (&Config{ProxyHost: "proxy.local", ProxyPort: 3128, ProxyProtocol: "http"}).ProxyURL()
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "http://proxy.local:3128", p.String())
	})
}
