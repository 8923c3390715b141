package persistence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// ErrUnsupportedVersion is returned when a state file was written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported state file version")

// ClientState contains the runtime state of a client.
type ClientState struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// ClientID is the identifier the client connected with.
	ClientID string `json:"client_id"`

	// Endpoint is the "host:port" of the last broker connected to.
	Endpoint string `json:"endpoint,omitempty"`

	// SessionPresent is the flag from the last accepted CONNACK.
	SessionPresent bool `json:"session_present,omitempty"`

	// LastConnectedAt is when the last handshake completed.
	LastConnectedAt time.Time `json:"last_connected_at,omitempty"`
}

// ClientStateStore manages persistence of client state to a JSON file.
type ClientStateStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewClientStateStore creates a new client state store.
func NewClientStateStore(path string) *ClientStateStore {
	return &ClientStateStore{path: path, now: time.Now}
}

// Path returns the state file path.
func (s *ClientStateStore) Path() string {
	return s.path
}

// Save persists the client state to disk.
func (s *ClientStateStore) Save(state *ClientState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	state.SavedAt = s.now()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash never leaves a truncated file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the client state from disk.
// Returns nil, nil if the file doesn't exist.
func (s *ClientStateStore) Load() (*ClientState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &ClientState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	if state.Version > StateVersion {
		return nil, ErrUnsupportedVersion
	}

	return state, nil
}

// Clear removes the state file.
func (s *ClientStateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
