package portfolio

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tkremer/portfolio/contact"
)

// storeTimeLayout is fixed width so received_at sorts correctly as text.
const storeTimeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps a SQLite database holding contact messages.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the dashboard read while a submission is written; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    body TEXT NOT NULL,
    remote_ip TEXT NOT NULL DEFAULT '',
    received_at TEXT NOT NULL,
    is_read INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS messages_received_at ON messages (received_at);
`)
	return err
}

// Record stores m. It implements contact.Recorder.
func (s *Store) Record(ctx context.Context, m contact.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, name, email, body, remote_ip, received_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Body, m.RemoteIP, m.ReceivedAt.UTC().Format(storeTimeLayout))
	return err
}

// InboxMessage is a stored message as shown on the dashboard.
type InboxMessage struct {
	contact.Message
	Read bool
}

// ListMessages returns every stored message, newest first.
func (s *Store) ListMessages(ctx context.Context) ([]InboxMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, body, remote_ip, received_at, is_read FROM messages ORDER BY received_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []InboxMessage
	for rows.Next() {
		var m InboxMessage
		var receivedAt string
		var read int
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.RemoteIP, &receivedAt, &read); err != nil {
			return nil, err
		}
		m.ReceivedAt, _ = time.Parse(storeTimeLayout, receivedAt)
		m.Read = read == 1
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// GetMessage returns a single message by id, or sql.ErrNoRows.
func (s *Store) GetMessage(ctx context.Context, id string) (InboxMessage, error) {
	var m InboxMessage
	var receivedAt string
	var read int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, body, remote_ip, received_at, is_read FROM messages WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.RemoteIP, &receivedAt, &read)
	if err != nil {
		return InboxMessage{}, err
	}
	m.ReceivedAt, _ = time.Parse(storeTimeLayout, receivedAt)
	m.Read = read == 1
	return m, nil
}

// MarkRead flags a message as read.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE messages SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteMessage removes a message by id.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	return err
}

// CountUnread returns the number of unread messages.
func (s *Store) CountUnread(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE is_read = 0`).Scan(&n)
	return n, err
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
