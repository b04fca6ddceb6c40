package content

import (
	"time"

	"github.com/google/uuid"
)

type Section string

const (
	SectionHome     Section = "home"
	SectionAbout    Section = "about"
	SectionServices Section = "services"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
	SectionCareers  Section = "careers"
	SectionFooter   Section = "footer"

	// Careers page blocks.
	SectionWhyJoinUs          Section = "why_join_us"
	SectionApplicationProcess Section = "application_process"
)

var Sections = []Section{
	SectionHome,
	SectionAbout,
	SectionServices,
	SectionProjects,
	SectionContact,
	SectionCareers,
	SectionFooter,
	SectionWhyJoinUs,
	SectionApplicationProcess,
}

func (s Section) Valid() bool {
	for _, v := range Sections {
		if s == v {
			return true
		}
	}
	return false
}

type Type string

const (
	TypeText  Type = "text"
	TypeHTML  Type = "html"
	TypeImage Type = "image"
)

func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeHTML, TypeImage:
		return true
	}
	return false
}

// WebContent is one editable slot of a public page, addressed by Key.
type WebContent struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Key       string    `json:"key" validate:"required"`
	Value     string    `json:"value"`
	Section   Section   `json:"section"`
	Type      Type      `json:"type"`
}

type Patch struct {
	Key     *string  `json:"key,omitempty"`
	Value   *string  `json:"value,omitempty"`
	Section *Section `json:"section,omitempty"`
	Type    *Type    `json:"type,omitempty"`
}

func (p Patch) Apply(c WebContent) WebContent {
	if p.Key != nil {
		c.Key = *p.Key
	}
	if p.Value != nil {
		c.Value = *p.Value
	}
	if p.Section != nil {
		c.Section = *p.Section
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	return c
}

// Lookup maps content keys to values for one section.
type Lookup map[string]string

func NewLookup(items []WebContent) Lookup {
	l := make(Lookup, len(items))
	for _, it := range items {
		l[it.Key] = it.Value
	}
	return l
}

// Get returns the stored value for key, or def when the slot has no row or is blank.
func (l Lookup) Get(key, def string) string {
	if v, ok := l[key]; ok && v != "" {
		return v
	}
	return def
}
