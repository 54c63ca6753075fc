package systemdunit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodflow/start/internal/domain/config"
	"github.com/kodflow/start/internal/infrastructure/persistence/config/systemdunit"
)

func writeUnit(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoader_Load_translates_minimal_unit(t *testing.T) {
	t.Parallel()

	path := writeUnit(t, "nginx.service", `
[Unit]
Description=web server
After=network.service

[Service]
ExecStart=/usr/sbin/nginx -g daemon off;
Restart=always
User=www-data
`)

	svc, err := systemdunit.New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nginx", svc.Name)
	assert.Equal(t, "web server", svc.Description)
	assert.Equal(t, "/usr/sbin/nginx", svc.Command)
	assert.Equal(t, []string{"network"}, svc.After)
	assert.Equal(t, config.RestartAlways, svc.Restart.Policy)
	assert.Equal(t, "www-data", svc.User)
}

func TestLoader_Load_rejects_unsupported_directive(t *testing.T) {
	t.Parallel()

	path := writeUnit(t, "db.service", `
[Service]
ExecStart=/usr/bin/db
ExecStartPre=/usr/bin/db-migrate
`)

	_, err := systemdunit.New().Load(path)
	require.ErrorIs(t, err, systemdunit.ErrUnsupportedField)
}

func TestLoader_Load_rejects_non_simple_type(t *testing.T) {
	t.Parallel()

	path := writeUnit(t, "legacy.service", `
[Service]
Type=forking
ExecStart=/usr/bin/legacy-daemon
`)

	_, err := systemdunit.New().Load(path)
	require.ErrorIs(t, err, systemdunit.ErrUnsupportedField)
}

func TestLoader_Load_requires_exec_start(t *testing.T) {
	t.Parallel()

	path := writeUnit(t, "empty.service", `
[Service]
Restart=no
`)

	_, err := systemdunit.New().Load(path)
	require.ErrorIs(t, err, systemdunit.ErrExecStartRequired)
}

func TestLoader_SupportsExtension(t *testing.T) {
	t.Parallel()

	l := systemdunit.New()
	assert.True(t, l.SupportsExtension("service"))
	assert.False(t, l.SupportsExtension("toml"))
}
