package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
)

// sessionFile is the durable identity storage, the terminal equivalent of
// the browser's localStorage. All fields live in one file so logout and 401
// teardown clear them atomically.
type sessionFile struct {
	path string
}

func (f sessionFile) save(session models.Session) error {
	if f.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f sessionFile) load() (models.Session, bool) {
	if f.path == "" {
		return models.Session{}, false
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return models.Session{}, false
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Println("Discarding unreadable session file:", err)
		return models.Session{}, false
	}
	if session.Token == "" {
		return models.Session{}, false
	}
	return session, true
}

func (f sessionFile) clear() {
	if f.path == "" {
		return
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		log.Println("Failed to clear session file:", err)
	}
}
