package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/irisrec/irisctl/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM session;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SaveAndCurrent(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	err := store.Save(ctx, models.Session{
		Email:       "claire@exemple.fr",
		DisplayName: "Claire",
		Role:        "admin",
		Token:       "tok-abc",
	})
	require.NoError(t, err)

	sess, err := store.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "claire@exemple.fr", sess.Email)
	require.Equal(t, "Claire", sess.DisplayName)
	require.Equal(t, "admin", sess.Role)
	require.Equal(t, "tok-abc", sess.Token)
}

func TestSQLiteStore_RoleDefaultsToUser(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Save(ctx, models.Session{Email: "a@b.co"}))

	sess, err := store.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "user", sess.Role)
	require.False(t, store.IsAdmin(ctx))
}

func TestSQLiteStore_IsAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.False(t, store.IsAuthenticated(ctx), "empty storage is unauthenticated")

	require.NoError(t, store.Save(ctx, models.Session{Email: "a@b.co"}))
	require.True(t, store.IsAuthenticated(ctx), "authenticated right after Save")

	require.NoError(t, store.Clear(ctx))
	require.False(t, store.IsAuthenticated(ctx), "unauthenticated after Clear")
}

func TestSQLiteStore_TokenOnlyWrittenWhenPresent(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Save(ctx, models.Session{Email: "a@b.co", Token: "first"}))

	// Saving a session without a token must not erase the stored one.
	require.NoError(t, store.Save(ctx, models.Session{Email: "a@b.co"}))

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "first", tok)
}

func TestSQLiteStore_ClearWipesEverything(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Save(ctx, models.Session{
		Email: "a@b.co", DisplayName: "A", Role: "admin", Token: "tok",
	}))
	require.NoError(t, store.Clear(ctx))

	sess, err := store.Current(ctx)
	require.NoError(t, err)
	require.Empty(t, sess.Email)
	require.Empty(t, sess.Token)

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestInitDatabase_RunsMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "irisctl.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Save(ctx, models.Session{Email: "a@b.co"}))
	require.True(t, store.IsAuthenticated(ctx))
}
