package studio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

const promptTemplatesFile = "prompts.json"

// PromptTemplate is one named pair of system and user prompts. The id is a
// unix-second timestamp assigned at creation and stable thereafter.
type PromptTemplate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SystemPrompt string `json:"systemPrompt"`
	UserPrompt   string `json:"userPrompt"`
	DateCreated  int64  `json:"dateCreated"`
}

// SavePrompt is the upsert payload for [Store.SavePrompt]. A non-empty ID
// targets an existing template; otherwise the name is matched, and a new
// template is created when neither hits.
type SavePrompt struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SystemPrompt string `json:"systemPrompt"`
	UserPrompt   string `json:"userPrompt"`
}

// ListPromptTemplates returns every stored template in file order.
func (s *Store) ListPromptTemplates() ([]PromptTemplate, error) {
	return s.readPromptTemplates()
}

// LoadPrompt finds a template by name.
func (s *Store) LoadPrompt(name string) (PromptTemplate, error) {
	templates, err := s.readPromptTemplates()
	if err != nil {
		return PromptTemplate{}, err
	}
	for _, template := range templates {
		if template.Name == name {
			return template, nil
		}
	}
	return PromptTemplate{}, fmt.Errorf("prompt template %q not found", name)
}

// SavePrompt creates or updates a template. Updates by id win over updates by
// name; an id-matched update may rename the template, a name-matched one only
// replaces its prompts. New templates receive a unique timestamp id.
func (s *Store) SavePrompt(payload SavePrompt) (PromptTemplate, error) {
	templates, err := s.readPromptTemplates()
	if err != nil {
		return PromptTemplate{}, err
	}

	if payload.ID != "" {
		for i := range templates {
			if templates[i].ID == payload.ID {
				templates[i].Name = payload.Name
				templates[i].SystemPrompt = payload.SystemPrompt
				templates[i].UserPrompt = payload.UserPrompt
				if err := s.writePromptTemplates(templates); err != nil {
					return PromptTemplate{}, err
				}
				return templates[i], nil
			}
		}
	}

	if payload.ID == "" {
		for i := range templates {
			if templates[i].Name == payload.Name {
				templates[i].SystemPrompt = payload.SystemPrompt
				templates[i].UserPrompt = payload.UserPrompt
				if err := s.writePromptTemplates(templates); err != nil {
					return PromptTemplate{}, err
				}
				return templates[i], nil
			}
		}
	}

	now := time.Now().Unix()
	template := PromptTemplate{
		ID:           payload.ID,
		Name:         payload.Name,
		SystemPrompt: payload.SystemPrompt,
		UserPrompt:   payload.UserPrompt,
		DateCreated:  now,
	}
	if template.ID == "" {
		template.ID = strconv.FormatInt(now, 10)
	}
	if hasTemplateID(templates, template.ID) {
		template.ID = uniqueTemplateID(templates, now)
	}

	templates = append(templates, template)
	if err := s.writePromptTemplates(templates); err != nil {
		return PromptTemplate{}, err
	}
	return template, nil
}

// RemovePrompt deletes a template by id.
func (s *Store) RemovePrompt(id string) error {
	templates, err := s.readPromptTemplates()
	if err != nil {
		return err
	}

	kept := templates[:0]
	for _, template := range templates {
		if template.ID != id {
			kept = append(kept, template)
		}
	}
	if len(kept) == len(templates) {
		return fmt.Errorf("prompt template with id %q not found", id)
	}
	return s.writePromptTemplates(kept)
}

func hasTemplateID(templates []PromptTemplate, id string) bool {
	for _, template := range templates {
		if template.ID == id {
			return true
		}
	}
	return false
}

func uniqueTemplateID(templates []PromptTemplate, base int64) string {
	for counter := int64(1); ; counter++ {
		candidate := strconv.FormatInt(base+counter, 10)
		if !hasTemplateID(templates, candidate) {
			return candidate
		}
	}
}

func (s *Store) promptTemplatesPath() (string, error) {
	dir, err := s.InputDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, promptTemplatesFile), nil
}

// readPromptTemplates loads prompts.json, creating it empty on first use.
// Malformed content is run through jsonrepair before failing, so a template
// file mangled by a hand edit still loads when salvageable.
func (s *Store) readPromptTemplates() ([]PromptTemplate, error) {
	path, err := s.promptTemplatesPath()
	if err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("unable to create prompts file %q: %w", path, err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read prompts file %q: %w", path, err)
	}

	if strings.TrimSpace(string(contents)) == "" {
		return nil, nil
	}

	var templates []PromptTemplate
	if err := json.Unmarshal(contents, &templates); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(contents))
		if repairErr != nil {
			return nil, fmt.Errorf("unable to parse prompts file %q: %w", path, err)
		}
		if err := json.Unmarshal([]byte(repaired), &templates); err != nil {
			return nil, fmt.Errorf("unable to parse prompts file %q: %w", path, err)
		}
	}
	return templates, nil
}

func (s *Store) writePromptTemplates(templates []PromptTemplate) error {
	path, err := s.promptTemplatesPath()
	if err != nil {
		return err
	}

	if templates == nil {
		templates = []PromptTemplate{}
	}
	payload, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialise prompt templates: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("unable to write prompts file %q: %w", path, err)
	}
	return nil
}
