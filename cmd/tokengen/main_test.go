package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvpss-crew-backend/internal/security"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 8080
database:
  host: localhost
  user: tvpss
  database: tvpss
jwt:
  secret: ` + testSecret + `
  access_token_expiry_minutes: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func TestRun(t *testing.T) {
	path := writeConfig(t)

	t.Run("IssuesAdminToken", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-config", path, "-user-id", "5", "-email", "ops@tvpss.example", "-roles", "admin, viewer"}, &out)
		require.NoError(t, err)

		claims, err := security.NewTokenManager(testSecret, time.Minute).ValidateToken(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Equal(t, int32(5), claims.UserID)
		assert.Equal(t, "ops@tvpss.example", claims.Email)
		assert.Equal(t, []string{"admin", "viewer"}, claims.Roles)
		assert.True(t, claims.HasRole(security.RoleAdmin))
	})

	t.Run("MissingUserID", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-config", path}, &out)
		assert.Error(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("MissingConfig", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml"), "-user-id", "1"}, &out)
		assert.Error(t, err)
	})
}

func TestSplitRoles(t *testing.T) {
	assert.Nil(t, splitRoles(""))
	assert.Equal(t, []string{"admin"}, splitRoles(" admin ,"))
}
