package remote

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTokenStore хранит единственную строку с токеном текущей сессии.
type SQLiteTokenStore struct {
	db *sql.DB
}

func NewSQLiteTokenStore(path string) (*SQLiteTokenStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteTokenStore{db: db}
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}
	return storage, nil
}

func (s *SQLiteTokenStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			access_token TEXT    NOT NULL,
			expires_at   INTEGER NOT NULL,
			saved_at     INTEGER NOT NULL
		);
	`)
	return err
}

func (s *SQLiteTokenStore) Load() (StoredToken, error) {
	var (
		token   StoredToken
		expires int64
	)
	err := s.db.QueryRow(`SELECT access_token, expires_at FROM session WHERE id = 1`).
		Scan(&token.AccessToken, &expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredToken{}, ErrNoToken
		}
		return StoredToken{}, fmt.Errorf("ошибка чтения сессии: %w", err)
	}
	if expires > 0 {
		token.ExpiresAt = time.Unix(expires, 0).UTC()
	}
	return token, nil
}

func (s *SQLiteTokenStore) Save(token StoredToken) error {
	var expires int64
	if !token.ExpiresAt.IsZero() {
		expires = token.ExpiresAt.Unix()
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO session (id, access_token, expires_at, saved_at)
		VALUES (1, ?, ?, ?)
	`, token.AccessToken, expires, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Close() error {
	return s.db.Close()
}
