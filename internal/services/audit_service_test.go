package services

import (
	"path/filepath"
	"testing"

	"github.com/humbertoconstantino/auth-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordAndFetch(t *testing.T) {
	t.Parallel()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	s := NewAuditService(db)

	userID := "u1"
	require.NoError(t, s.RecordEvent("user.registered", "info", "new user registered", &userID))
	require.NoError(t, s.RecordEvent("user.login_failed", "warn", "wrong password", nil))

	events, err := s.GetRecentEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	types := []string{events[0].Type, events[1].Type}
	assert.Contains(t, types, "user.registered")
	assert.Contains(t, types, "user.login_failed")

	limited, err := s.GetRecentEvents(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
