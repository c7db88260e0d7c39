package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/irisrec/irisctl/internal/common"
	"github.com/irisrec/irisctl/internal/dbx"
	"github.com/irisrec/irisctl/internal/migrations"
	"github.com/irisrec/irisctl/internal/models"
)

// SQLiteStore keeps the session as key/value rows in the local sqlite
// database, one row per attribute.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite database at dsn and brings the schema up to
// date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess models.Session) error {
	role := sess.Role
	if role == "" {
		role = common.RoleUser
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyEmail, sess.Email); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyName, sess.DisplayName); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyRole, role); err != nil {
			return err
		}
		if sess.Token != "" {
			if err := s.set(ctx, tx, keyToken, sess.Token); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Current(ctx context.Context) (models.Session, error) {
	var sess models.Session
	var err error

	if sess.Email, err = s.get(ctx, s.db, keyEmail); err != nil {
		return models.Session{}, err
	}
	if sess.DisplayName, err = s.get(ctx, s.db, keyName); err != nil {
		return models.Session{}, err
	}
	if sess.Role, err = s.get(ctx, s.db, keyRole); err != nil {
		return models.Session{}, err
	}
	if sess.Token, err = s.get(ctx, s.db, keyToken); err != nil {
		return models.Session{}, err
	}
	if sess.Email != "" && sess.Role == "" {
		sess.Role = common.RoleUser
	}
	return sess, nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, keyToken)
}

func (s *SQLiteStore) IsAuthenticated(ctx context.Context) bool {
	email, err := s.get(ctx, s.db, keyEmail)
	return err == nil && email != ""
}

func (s *SQLiteStore) IsAdmin(ctx context.Context) bool {
	role, err := s.get(ctx, s.db, keyRole)
	return err == nil && role == common.RoleAdmin
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
