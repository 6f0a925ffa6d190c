package ai

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "user maps to human", input: "user", want: RoleHuman},
		{name: "human maps to human", input: "human", want: RoleHuman},
		{name: "assistant maps to ai", input: "assistant", want: RoleAI},
		{name: "model maps to ai", input: "model", want: RoleAI},
		{name: "ai maps to ai", input: "ai", want: RoleAI},
		{name: "system maps to system", input: "system", want: RoleSystem},
		{name: "mixed case is accepted", input: "Assistant", want: RoleAI},
		{name: "surrounding whitespace is trimmed", input: "  user  ", want: RoleHuman},
		{name: "unknown role is an error", input: "narrator", wantErr: true},
		{name: "empty role is an error", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got role %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalRoleDefaultsToHuman(t *testing.T) {
	if got := CanonicalRole("narrator"); got != RoleHuman {
		t.Errorf("expected unknown role to default to human, got %q", got)
	}
	if got := CanonicalRole("model"); got != RoleAI {
		t.Errorf("expected model to map to ai, got %q", got)
	}
}

func TestNewMessage(t *testing.T) {
	message := NewMessage("", "assistant", []Part{Text("hello")})

	if message.Role != RoleAI {
		t.Errorf("expected canonical ai role, got %q", message.Role)
	}
	if message.ID == "" {
		t.Error("expected a generated id for empty input")
	}
	if message.CreatedAt == 0 {
		t.Error("expected a creation timestamp")
	}

	withID := NewMessage("custom-id", "user", nil)
	if withID.ID != "custom-id" {
		t.Errorf("expected supplied id to be kept, got %q", withID.ID)
	}
}

func TestJoinedText(t *testing.T) {
	tests := []struct {
		name    string
		content []Part
		want    string
	}{
		{
			name:    "text parts joined with newline",
			content: []Part{Text("first"), Text("second")},
			want:    "first\nsecond",
		},
		{
			name:    "image parts are skipped",
			content: []Part{Text("caption"), Image("aGVsbG8="), Text("tail")},
			want:    "caption\ntail",
		},
		{
			name:    "no content yields empty string",
			content: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := NewMessage("", "user", tt.content)
			if got := message.JoinedText(); got != tt.want {
				t.Errorf("JoinedText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPartConstructors(t *testing.T) {
	text := Text("hello")
	if text.Type != PartText || text.Text != "hello" {
		t.Errorf("unexpected text part: %+v", text)
	}

	image := Image("aGVsbG8=")
	if image.Type != PartImage || image.Image == nil || image.Image.Data != "aGVsbG8=" {
		t.Errorf("unexpected image part: %+v", image)
	}

	withPath := ImageWithPath("aGVsbG8=", "ref.png")
	if withPath.Image == nil || withPath.Image.SourcePath != "ref.png" {
		t.Errorf("unexpected image path part: %+v", withPath)
	}
}
