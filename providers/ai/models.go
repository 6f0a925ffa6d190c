package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/promptlab/llmbridge/internal/utils"
)

// Role is the canonical sender category for a message.
type Role string

const (
	RoleHuman  Role = "human"
	RoleAI     Role = "ai"
	RoleSystem Role = "system"
)

// roleSynonyms maps lowercased free-text role strings to canonical roles.
// Provider wire formats and UI layers use different vocabularies ("user",
// "assistant", "model", ...); this table reconciles all of them.
var roleSynonyms = map[string]Role{
	"user":      RoleHuman,
	"human":     RoleHuman,
	"model":     RoleAI,
	"ai":        RoleAI,
	"assistant": RoleAI,
	"system":    RoleSystem,
}

// ParseRole resolves a free-text role string to its canonical [Role].
// Matching is case-insensitive and ignores surrounding whitespace. An
// unrecognized role is an error so callers that care about routing
// correctness can reject it instead of silently misclassifying the sender.
func ParseRole(role string) (Role, error) {
	if canonical, ok := roleSynonyms[strings.ToLower(strings.TrimSpace(role))]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unrecognized role %q", role)
}

// CanonicalRole resolves role through the synonym table, defaulting to
// [RoleHuman] when the string is not recognized. The silent default keeps
// message construction infallible but can change prompt semantics when a
// mistyped "system" tag lands in a conversation; use [ParseRole] when that
// matters.
func CanonicalRole(role string) Role {
	canonical, err := ParseRole(role)
	if err != nil {
		return RoleHuman
	}
	return canonical
}

// PartType tags the variant carried by a [Part].
type PartType string

const (
	PartText  PartType = "text"
	PartImage PartType = "image"
)

// Part is one atomic unit of message content: plain text or an inline image.
type Part struct {
	Type  PartType
	Text  string
	Image *ImageData
}

// ImageData carries a base64-encoded image. SourcePath, when present, is used
// only to guess the MIME type for the wire payload; it carries no ownership of
// a file.
type ImageData struct {
	Data       string
	SourcePath string
}

// Text returns a text content part.
func Text(text string) Part {
	return Part{Type: PartText, Text: text}
}

// Image returns an image content part from already-encoded base64 data.
func Image(dataBase64 string) Part {
	return Part{Type: PartImage, Image: &ImageData{Data: dataBase64}}
}

// ImageWithPath returns an image content part that remembers where the bytes
// came from so adapters can guess a MIME type from the extension.
func ImageWithPath(dataBase64, sourcePath string) Part {
	return Part{Type: PartImage, Image: &ImageData{Data: dataBase64, SourcePath: sourcePath}}
}

// ImageFromFile loads an image from a local path or an http(s) URL and returns
// it as an inline base64 part. Unlike the text constructors this can fail
// (missing file, unreachable URL); the error is returned rather than swallowed
// so callers never ship an empty image to a provider by accident.
func ImageFromFile(ctx context.Context, pathOrURL string) (Part, error) {
	data, err := utils.EncodeImageToBase64(ctx, pathOrURL)
	if err != nil {
		return Part{}, fmt.Errorf("loading image %q: %w", pathOrURL, err)
	}
	return ImageWithPath(data, pathOrURL), nil
}

// Message is one conversational turn. Content order is semantically
// significant and round-trips through every adapter. Messages are immutable
// by convention: built once, handed to an adapter, then discarded.
type Message struct {
	ID        string
	Role      Role
	Content   []Part
	CreatedAt int64 // epoch milliseconds
}

// NewMessage builds a Message, generating an ID from the current epoch
// milliseconds when id is empty. The role string is resolved through the
// synonym table via [CanonicalRole].
func NewMessage(id, role string, content []Part) Message {
	now := time.Now().UnixMilli()
	if id == "" {
		id = strconv.FormatInt(now, 10)
	}
	return Message{
		ID:        id,
		Role:      CanonicalRole(role),
		Content:   content,
		CreatedAt: now,
	}
}

// JoinedText concatenates the text parts of the message with newlines,
// skipping image parts. Adapters use this where a provider wants a plain
// string instead of a part list.
func (m Message) JoinedText() string {
	var texts []string
	for _, part := range m.Content {
		if part.Type == PartText {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "\n")
}
