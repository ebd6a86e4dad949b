package scene

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Sam-Bouten/compas"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS states (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot    BLOB NOT NULL,
	created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Session persists scene snapshots in a SQLite database and walks them with
// a cursor for undo and redo. Saving while the cursor sits in the middle of
// the history discards the states ahead of it, the way an editor's undo
// history branches.
//
// A session is safe for concurrent use, though the scenes it serves are
// not.
type Session struct {
	mu      sync.Mutex
	db      *sql.DB
	depth   int
	current int64
}

// OpenSession opens (or creates) a session database. depth bounds how many
// snapshots are kept; older ones are dropped on save. A non-positive depth
// defaults to 10. Use ":memory:" for a throwaway in-memory session.
func OpenSession(path string, depth int) (*Session, error) {
	if depth <= 0 {
		depth = 10
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scene: opening session: %w", err)
	}
	// One connection: SQLite is single-writer, and an in-memory database
	// exists per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sessionSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scene: creating session schema: %w", err)
	}

	s := &Session{db: db, depth: depth}
	// Resume at the newest stored state.
	err = db.QueryRow("SELECT COALESCE(MAX(id), 0) FROM states").Scan(&s.current)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scene: reading session state: %w", err)
	}
	compas.Logger().Info("scene: session opened", "path", path, "depth", depth)
	return s, nil
}

// Close releases the underlying database.
func (s *Session) Close() error {
	return s.db.Close()
}

// Len returns the number of stored snapshots.
func (s *Session) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM states").Scan(&n)
	return n, err
}

func (s *Session) save(snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("scene: saving state: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Saving from the middle of the history starts a new branch.
	if _, err := tx.Exec("DELETE FROM states WHERE id > ?", s.current); err != nil {
		return fmt.Errorf("scene: trimming redo states: %w", err)
	}
	res, err := tx.Exec("INSERT INTO states (snapshot) VALUES (?)", snapshot)
	if err != nil {
		return fmt.Errorf("scene: saving state: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("scene: saving state: %w", err)
	}
	_, err = tx.Exec(`DELETE FROM states WHERE id NOT IN
		(SELECT id FROM states ORDER BY id DESC LIMIT ?)`, s.depth)
	if err != nil {
		return fmt.Errorf("scene: trimming old states: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scene: saving state: %w", err)
	}
	s.current = id
	return nil
}

func (s *Session) undo() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	var snapshot []byte
	err := s.db.QueryRow(
		"SELECT id, snapshot FROM states WHERE id < ? ORDER BY id DESC LIMIT 1",
		s.current).Scan(&id, &snapshot)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scene: undo: %w", err)
	}
	s.current = id
	return snapshot, true, nil
}

func (s *Session) redo() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	var snapshot []byte
	err := s.db.QueryRow(
		"SELECT id, snapshot FROM states WHERE id > ? ORDER BY id ASC LIMIT 1",
		s.current).Scan(&id, &snapshot)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scene: redo: %w", err)
	}
	s.current = id
	return snapshot, true, nil
}

// objectState is the serialized form of one scene object inside a
// snapshot. The item is stored as a tagged data envelope.
type objectState struct {
	Name    string          `json:"name"`
	Visible bool            `json:"visible"`
	Item    json.RawMessage `json:"item"`
}

// snapshot serializes the scene's objects in draw order.
func (s *Scene) snapshot() ([]byte, error) {
	states := make([]objectState, 0, len(s.order))
	for _, guid := range s.order {
		obj := s.objects[guid]
		item, err := compas.ToJSON(obj.Item())
		if err != nil {
			return nil, fmt.Errorf("scene: serializing %q: %w", obj.Name, err)
		}
		states = append(states, objectState{
			Name:    obj.Name,
			Visible: obj.Visible,
			Item:    item,
		})
	}
	return json.Marshal(states)
}

// restore replaces the scene's objects with the ones in the snapshot and
// redraws. Items are rebuilt through the data decoder registry.
func (s *Scene) restore(snapshot []byte) error {
	var states []objectState
	if err := json.Unmarshal(snapshot, &states); err != nil {
		return fmt.Errorf("scene: decoding snapshot: %w", err)
	}
	s.Purge()
	for _, state := range states {
		item, err := compas.FromJSON(state.Item)
		if err != nil {
			return fmt.Errorf("scene: restoring %q: %w", state.Name, err)
		}
		obj, err := s.Add(item, state.Name)
		if err != nil {
			return fmt.Errorf("scene: restoring %q: %w", state.Name, err)
		}
		obj.Visible = state.Visible
	}
	return s.Draw()
}
