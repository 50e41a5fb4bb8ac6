package document

// CustomFormat is a named, reusable matching rule composed of ordered
// conditions, used to score or filter media release names.
type CustomFormat struct {
	Name        string      `yaml:"name" validate:"required"`
	Description string      `yaml:"description"`
	Tags        []string    `yaml:"tags"`
	Conditions  []Condition `yaml:"conditions" validate:"dive"`
	Tests       []any       `yaml:"tests"`
}

// Condition is a single typed predicate within a custom format. Exactly one
// of Resolution, Source, or Pattern is populated depending on Type.
type Condition struct {
	Name       string `yaml:"name" validate:"required"`
	Negate     bool   `yaml:"negate"`
	Required   bool   `yaml:"required"`
	Type       string `yaml:"type" validate:"required"`
	Resolution string `yaml:"resolution,omitempty"`
	Source     string `yaml:"source,omitempty"`
	Pattern    string `yaml:"pattern,omitempty"`
}

// Condition types produced by the schema converter and accepted by the
// schema validator.
const (
	TypeResolution   = "resolution"
	TypeSource       = "source"
	TypeReleaseGroup = "release_group"
	TypeReleaseTitle = "release_title"
)

// PatternFile pairs a standalone regex pattern with its metadata. Pattern
// lookup is by exact pattern string; the filename is the secondary identity
// and must stay unique case-insensitively.
type PatternFile struct {
	Name        string   `yaml:"name" validate:"required"`
	Pattern     string   `yaml:"pattern" validate:"required"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Tests       []any    `yaml:"tests"`
}

// LegacyFormat is the pre-conversion custom format schema carrying
// implementation-tagged specifications instead of typed conditions.
type LegacyFormat struct {
	Name           string          `yaml:"name"`
	Description    string          `yaml:"description"`
	Tags           []string        `yaml:"tags"`
	Specifications []Specification `yaml:"specifications"`
	Tests          []any           `yaml:"tests"`
}

// Specification is one entry of a legacy format. Implementation selects the
// predicate kind; the typed value lives under Fields.
type Specification struct {
	Name           string     `yaml:"name"`
	Implementation string     `yaml:"implementation"`
	Negate         bool       `yaml:"negate"`
	Required       bool       `yaml:"required"`
	Fields         SpecFields `yaml:"fields"`
}

// SpecFields holds the loosely typed value block of a specification. A nil
// Value means the field was absent.
type SpecFields struct {
	Value any `yaml:"value"`
}

// Profile reference list keys recognized by the reference validator.
var ProfileFormatKeys = []string{
	"custom_formats",
	"custom_formats_radarr",
	"custom_formats_sonarr",
}
