package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_backend/cmd/cmsctl/commands"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := commands.Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func TestCommandsAgainstSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(dir, "cms.db"))
	t.Setenv("SECRET_KEY", "cli-secret")
	t.Setenv("UPLOAD_DIR", filepath.Join(dir, "uploads"))
	t.Setenv("SQL_LOG_LEVEL", "silent")

	assert.Contains(t, run(t, "migrate"), "migrated")

	assert.Contains(t, run(t, "create-admin", "--email", "root@example.com", "--password", "changeme123"), "created")
	assert.Contains(t, run(t, "create-admin", "--email", "root@example.com", "--password", "changeme123"), "already exists")

	assert.Contains(t, run(t, "purge-logs", "--days", "30"), "0 audit logs removed")
	assert.Contains(t, run(t, "reap-orphans", "--dry-run"), "removed=0")
}
