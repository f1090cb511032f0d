// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// VoteMarker remembers which items this client profile already upvoted.
// It is advisory only: the server accepts repeat upvotes from other
// profiles, so this is a soft throttle, not a security control.
type VoteMarker interface {
	Has(id string) bool
	Add(id string) error
}

// FileVoteMarker persists the upvoted set as a JSON array of ids in a
// single file, the same shape the web frontend keeps in local storage.
type FileVoteMarker struct {
	mu   sync.Mutex
	path string
	ids  []string
}

// NewFileVoteMarker loads the marker file at path. A missing or
// corrupted file is treated as an empty set, never an error.
func NewFileVoteMarker(path string) *FileVoteMarker {
	m := &FileVoteMarker{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// Corrupted content is discarded
		return m
	}
	m.ids = ids
	return m
}

func (m *FileVoteMarker) Has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Contains(m.ids, id)
}

func (m *FileVoteMarker) Add(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slices.Contains(m.ids, id) {
		return nil
	}
	m.ids = append(m.ids, id)

	data, err := json.Marshal(m.ids)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(m.path, data, 0o644)
}

// MemoryVoteMarker is a VoteMarker with no persistence, for tests.
type MemoryVoteMarker struct {
	mu  sync.Mutex
	ids map[string]bool
}

func NewMemoryVoteMarker() *MemoryVoteMarker {
	return &MemoryVoteMarker{ids: map[string]bool{}}
}

func (m *MemoryVoteMarker) Has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[id]
}

func (m *MemoryVoteMarker) Add(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = true
	return nil
}
