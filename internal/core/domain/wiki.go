package domain

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ArchitectureSectionID is the stable id of the designated architecture
// section. Every outline is guaranteed to contain it: when the model's
// outline omits it, it is injected at position 0.
const ArchitectureSectionID = "high-level-architecture"

// ArchitectureSectionTitle is the well-known title of the designated
// architecture section, matched case-insensitively during injection.
const ArchitectureSectionTitle = "High Level Architecture"

var sectionIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// WikiSection is one entry of a documentation outline.
type WikiSection struct {
	// ID is a stable, URL-safe identifier in kebab-case.
	ID string `json:"id"`

	// Title is the human-readable section title.
	Title string `json:"title"`

	// Description is a short summary of what the section covers.
	Description string `json:"description"`

	// Keywords are search terms used to build the retrieval query for
	// this section's page.
	Keywords []string `json:"keywords"`
}

// Validate checks that the section carries the fields required of an
// outline entry. Sections are validated at construction time, right
// after parsing the model's outline response.
func (s WikiSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required, validation.Match(sectionIDPattern)),
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Description, validation.Required),
	)
}

// WikiPage couples a section with its generated markdown content.
type WikiPage struct {
	Section  WikiSection `json:"section"`
	Markdown string      `json:"markdown"`
}

// Outline is an ordered list of wiki sections.
type Outline []WikiSection

// Find returns the section with the given id.
func (o Outline) Find(sectionID string) (WikiSection, bool) {
	for _, s := range o {
		if s.ID == sectionID {
			return s, true
		}
	}
	return WikiSection{}, false
}

// Validate checks every section and rejects duplicate ids.
func (o Outline) Validate() error {
	seen := make(map[string]bool, len(o))
	for _, s := range o {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.ID] {
			return ErrInvalidInput
		}
		seen[s.ID] = true
	}
	return nil
}

// HasArchitectureSection reports whether the outline already contains the
// designated architecture section, matched by stable id or by
// case-insensitive title equality.
func (o Outline) HasArchitectureSection() bool {
	for _, s := range o {
		if s.ID == ArchitectureSectionID {
			return true
		}
		if strings.EqualFold(strings.TrimSpace(s.Title), ArchitectureSectionTitle) {
			return true
		}
	}
	return false
}

// EnsureArchitectureSection returns an outline that is guaranteed to
// contain the designated architecture section in the first position.
// Outlines that already carry it are returned unchanged, so injection
// is idempotent.
func EnsureArchitectureSection(o Outline) Outline {
	if o.HasArchitectureSection() {
		return o
	}

	special := WikiSection{
		ID:    ArchitectureSectionID,
		Title: ArchitectureSectionTitle,
		Description: "High-level architecture of the repository: main components, " +
			"services, and data/control flows between them.",
		Keywords: []string{"architecture", "components", "services", "data flow", "overview"},
	}
	return append(Outline{special}, o...)
}
