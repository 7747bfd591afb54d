package vrs

// Extension carries a single arbitrary name/value annotation on an
// identifiable entity. Extensions never contribute to an object's
// digest; annotation fields are excluded from digest input.
type Extension struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

// MappingClass is the SKOS relation between a Mapping's code and the
// entity it annotates.
type MappingClass string

const (
	MappingCloseMatch   MappingClass = "closeMatch"
	MappingExactMatch   MappingClass = "exactMatch"
	MappingBroadMatch   MappingClass = "broadMatch"
	MappingNarrowMatch  MappingClass = "narrowMatch"
	MappingRelatedMatch MappingClass = "relatedMatch"
)

// Mapping cross-references an entity against an external terminology
// system (e.g. a ClinVar or dbSNP id). Like Extension, it is
// annotation-only and excluded from digest input.
type Mapping struct {
	System  string       `json:"system"`
	Version string       `json:"version,omitempty"`
	Code    string       `json:"code"`
	Class   MappingClass `json:"mapping"`
}

// Annotations bundles the fields every identifiable VRS entity carries
// but that never contribute to its digest: a display label, a
// free-text description, alternative labels, arbitrary extensions, and
// cross-references (mappings).
type Annotations struct {
	Label             string      `json:"label,omitempty"`
	Description       string      `json:"description,omitempty"`
	AlternativeLabels []string    `json:"alternativeLabels,omitempty"`
	Extensions        []Extension `json:"extensions,omitempty"`
	Mappings          []Mapping   `json:"mappings,omitempty"`
}
