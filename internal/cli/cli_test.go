package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"voice-notes/internal/config"
	"voice-notes/internal/domain/entities"
	"voice-notes/internal/infra/logger"
	"voice-notes/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestInitDbAndNotes(t *testing.T) {
	db := filepath.Join(t.TempDir(), "database.db")

	assert.Contains(t, execute(t, "--db", db, "init-db"), "Database initialized")

	repo := repository.NewSQLiteNoteRepository(db)
	ctx := context.Background()
	for _, c := range []string{"A", "B", "C"} {
		require.NoError(t, repo.SaveNote(ctx, "user-1", c))
	}

	var notes []entities.Note
	require.NoError(t, json.Unmarshal([]byte(execute(t, "--db", db, "notes", "--user", "user-1", "--limit", "2")), &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, "C", notes[0].Content)
	assert.Equal(t, "B", notes[1].Content)
}

func TestNewRouterServesHealthCheck(t *testing.T) {
	c := config.Default()
	c.DBPath = filepath.Join(t.TempDir(), "database.db")

	router, err := NewRouter(context.Background(), c, logger.Discard())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
