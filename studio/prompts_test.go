package studio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSavePromptCreatesAndLoads(t *testing.T) {
	store := NewStore(t.TempDir())

	saved, err := store.SavePrompt(SavePrompt{
		Name:         "mezzotint",
		SystemPrompt: "you are an engraver",
		UserPrompt:   "draw a fox",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" || saved.DateCreated == 0 {
		t.Errorf("expected generated id and timestamp, got %+v", saved)
	}

	loaded, err := store.LoadPrompt("mezzotint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.SystemPrompt != "you are an engraver" || loaded.UserPrompt != "draw a fox" {
		t.Errorf("unexpected template: %+v", loaded)
	}
}

func TestSavePromptUpdatesByID(t *testing.T) {
	store := NewStore(t.TempDir())

	created, err := store.SavePrompt(SavePrompt{Name: "old-name", UserPrompt: "v1"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := store.SavePrompt(SavePrompt{ID: created.ID, Name: "new-name", UserPrompt: "v2"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected id to be stable, got %q", updated.ID)
	}
	if updated.Name != "new-name" || updated.UserPrompt != "v2" {
		t.Errorf("expected rename and update, got %+v", updated)
	}

	templates, err := store.ListPromptTemplates()
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) != 1 {
		t.Errorf("expected a single template, got %d", len(templates))
	}
}

func TestSavePromptUpdatesByNameWithoutID(t *testing.T) {
	store := NewStore(t.TempDir())

	created, err := store.SavePrompt(SavePrompt{Name: "shared", UserPrompt: "v1"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := store.SavePrompt(SavePrompt{Name: "shared", UserPrompt: "v2"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected name match to update in place, got new id %q", updated.ID)
	}
	if updated.UserPrompt != "v2" {
		t.Errorf("expected updated prompt, got %q", updated.UserPrompt)
	}
}

func TestRemovePrompt(t *testing.T) {
	store := NewStore(t.TempDir())

	created, err := store.SavePrompt(SavePrompt{Name: "doomed"})
	if err != nil {
		t.Fatal(err)
	}

	if err := store.RemovePrompt(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.RemovePrompt(created.ID); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestReadPromptTemplatesRepairsMalformedJSON(t *testing.T) {
	store := NewStore(t.TempDir())
	inputDir, err := store.InputDir()
	if err != nil {
		t.Fatal(err)
	}

	// Trailing comma and unquoted key: invalid JSON, but repairable.
	mangled := `[{id: "1", "name": "kept", "systemPrompt": "s", "userPrompt": "u", "dateCreated": 5,}]`
	if err := os.WriteFile(filepath.Join(inputDir, "prompts.json"), []byte(mangled), 0o644); err != nil {
		t.Fatal(err)
	}

	templates, err := store.ListPromptTemplates()
	if err != nil {
		t.Fatalf("expected repaired load, got error: %v", err)
	}
	if len(templates) != 1 || templates[0].Name != "kept" {
		t.Errorf("unexpected templates: %+v", templates)
	}
}

func TestReadPromptTemplatesEmptyFile(t *testing.T) {
	store := NewStore(t.TempDir())

	// First read creates the file.
	templates, err := store.ListPromptTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 0 {
		t.Errorf("expected no templates, got %+v", templates)
	}

	inputDir, err := store.InputDir()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(inputDir, "prompts.json")); err != nil {
		t.Errorf("expected prompts.json to be created: %v", err)
	}
}
