// Package store persists the latest forecast. Two backends: a JSON
// file (default) and a single-row sqlite table.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/forecast"
)

// FileStore keeps the forecast as a JSON file, written atomically via
// a temp file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (*forecast.Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, forecast.ErrNoForecast
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: read forecast file")
	}

	var f forecast.Forecast
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, eris.Wrap(err, "store: decode forecast file")
	}
	return &f, nil
}

func (s *FileStore) Put(f *forecast.Forecast) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: encode forecast")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "store: create cache directory")
	}

	tmp, err := os.CreateTemp(dir, "forecast-*.json")
	if err != nil {
		return eris.Wrap(err, "store: create temp file")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return eris.Wrap(err, "store: write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "store: close temp file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrap(err, "store: replace forecast file")
	}
	return nil
}
