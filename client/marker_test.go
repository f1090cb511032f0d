// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/feedbackboard/server/client"
)

func TestFileVoteMarker_PersistsAcrossInstances(t *testing.T) {
	// Nested path so the marker has to create its directory
	path := filepath.Join(t.TempDir(), "profile", "upvoted.json")

	m := client.NewFileVoteMarker(path)
	if m.Has("item-a") {
		t.Error("Fresh marker should not contain item-a")
	}

	if err := m.Add("item-a"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Add("item-b"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// A second instance reading the same file sees the same set
	reloaded := client.NewFileVoteMarker(path)
	if !reloaded.Has("item-a") || !reloaded.Has("item-b") {
		t.Error("Expected reloaded marker to contain both recorded ids")
	}
	if reloaded.Has("item-c") {
		t.Error("Expected reloaded marker to not contain unrecorded ids")
	}
}

func TestFileVoteMarker_AddIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upvoted.json")

	m := client.NewFileVoteMarker(path)
	for i := 0; i < 3; i++ {
		if err := m.Add("item-a"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read marker file: %v", err)
	}
	if string(data) != `["item-a"]` {
		t.Errorf("Expected a single-entry JSON array, got %s", data)
	}
}

func TestFileVoteMarker_CorruptedFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upvoted.json")
	if err := os.WriteFile(path, []byte("{definitely not json"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupted file: %v", err)
	}

	m := client.NewFileVoteMarker(path)
	if m.Has("item-a") {
		t.Error("Corrupted marker file should load as an empty set")
	}

	// Adding must recover the file to a valid state
	if err := m.Add("item-a"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !client.NewFileVoteMarker(path).Has("item-a") {
		t.Error("Expected the rewritten file to be readable again")
	}
}

func TestMemoryVoteMarker(t *testing.T) {
	m := client.NewMemoryVoteMarker()

	if m.Has("item-a") {
		t.Error("Fresh marker should be empty")
	}
	if err := m.Add("item-a"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !m.Has("item-a") {
		t.Error("Expected item-a after Add")
	}
}
