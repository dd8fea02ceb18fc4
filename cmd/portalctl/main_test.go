package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitly/portal-service/internal/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token",
		"--subject", "7b0c6f1e-2a44-4c4b-9a57-3f4a1c0e9d21",
		"--email", "ana@example.com",
		"--secret", "dev-secret")
	require.NoError(t, err)

	claims, err := auth.NewTokenManager("dev-secret", "", 5).ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	identity := claims.Identity()
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.True(t, identity.EmailConfirmed())
}

func TestTokenCommandRequiresSubject(t *testing.T) {
	_, err := run(t, "token", "--secret", "dev-secret")
	assert.Error(t, err)
}

func TestMigrateDryRun(t *testing.T) {
	out, err := run(t, "migrate", "--dry-run", "--dir", "../../migrations")
	require.NoError(t, err)
	assert.Contains(t, out, "001_user_roles.sql")
}
