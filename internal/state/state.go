package state

import (
	"sync"
	"time"
)

type Phase int

const (
	BOOTING Phase = iota
	RENDERING
	DONE
	ERROR
)

func (phase Phase) String() string {
	switch phase {
	case BOOTING:
		return "booting"
	case RENDERING:
		return "rendering"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	}
	return "unknown"
}

// AssetInfo records one written image.
type AssetInfo struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Bytes    int64         `json:"bytes"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"`
}

type State struct {
	Phase  Phase       `json:"-"`
	Seed   int64       `json:"seed"`
	Runs   int         `json:"runs"`
	Assets []AssetInfo `json:"assets"`
	Err    string      `json:"error,omitempty"`
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

// Snapshot returns a copy that is safe to read while generation continues.
func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Assets = append([]AssetInfo(nil), store.state.Assets...)
	return snap
}

// BeginRun resets per-run data and enters RENDERING.
func (store *Store) BeginRun(seed int64) {
	store.mu.Lock()
	store.state.Phase = RENDERING
	store.state.Seed = seed
	store.state.Runs++
	store.state.Assets = nil
	store.state.Err = ""
	store.mu.Unlock()
}

// RecordAsset replaces the record with the same name or appends a new one.
func (store *Store) RecordAsset(asset AssetInfo) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for i := range store.state.Assets {
		if store.state.Assets[i].Name == asset.Name {
			store.state.Assets[i] = asset
			return
		}
	}
	store.state.Assets = append(store.state.Assets, asset)
}

// Finish ends the run in DONE, or in ERROR when err is non-nil.
func (store *Store) Finish(err error) {
	store.mu.Lock()
	if err != nil {
		store.state.Phase = ERROR
		store.state.Err = err.Error()
	} else {
		store.state.Phase = DONE
	}
	store.mu.Unlock()
}
