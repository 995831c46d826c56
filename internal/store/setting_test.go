package store

import (
	"encoding/json"
	"testing"
)

func TestSettingGetUnsavedSection(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)

	got, err := s.GetSection("never-saved-section")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil setting for unsaved section")
	}
	if string(got.Data) != "{}" {
		t.Errorf("unsaved section data: got %s, want {}", got.Data)
	}
}

func TestSettingSetAndGet(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)
	t.Cleanup(func() { cleanSettings(t, db, "test-site") })

	doc := json.RawMessage(`{"churchName": "Test Parish", "serviceTime": "10:00 AM"}`)
	if err := s.SetSection("test-site", doc); err != nil {
		t.Fatalf("SetSection: %v", err)
	}

	got, err := s.GetSection("test-site")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(got.Data, &decoded); err != nil {
		t.Fatalf("unmarshal stored data: %v", err)
	}
	if decoded["churchName"] != "Test Parish" {
		t.Errorf("churchName: got %q", decoded["churchName"])
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}
}

func TestSettingUpsertReplaces(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)
	t.Cleanup(func() { cleanSettings(t, db, "test-upsert") })

	if err := s.SetSection("test-upsert", json.RawMessage(`{"v": 1}`)); err != nil {
		t.Fatalf("SetSection first: %v", err)
	}
	if err := s.SetSection("test-upsert", json.RawMessage(`{"v": 2}`)); err != nil {
		t.Fatalf("SetSection second: %v", err)
	}

	got, err := s.GetSection("test-upsert")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(got.Data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["v"] != 2 {
		t.Errorf("expected second write to win, got v=%d", decoded["v"])
	}
}

func TestSettingAll(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)
	t.Cleanup(func() { cleanSettings(t, db, "test-all-a", "test-all-b") })

	s.SetSection("test-all-a", json.RawMessage(`{"a": true}`))
	s.SetSection("test-all-b", json.RawMessage(`{"b": true}`))

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if _, ok := all["test-all-a"]; !ok {
		t.Error("test-all-a missing from All")
	}
	if _, ok := all["test-all-b"]; !ok {
		t.Error("test-all-b missing from All")
	}
}
