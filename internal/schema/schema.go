// Package schema defines the fixed field-rule tables a spec-site manifest
// is validated against. The rules are hand-authored data, not derived from
// any external schema language.
package schema

// ValueType names a scalar type a field's value must match.
type ValueType string

// Scalar types checked by the shape pass.
const (
	TypeString  ValueType = "string"
	TypeBoolean ValueType = "boolean"
)

// ObjectRule describes a field whose value must be an object (or an array
// of objects) carrying a fixed set of required subfields.
type ObjectRule struct {
	Field     string
	Subfields []string
}

// ScalarRule describes a field whose value, when present, must match a
// declared scalar type.
type ScalarRule struct {
	Field string
	Type  ValueType
}

// Registry is the complete rule set for one manifest layout.
//
// The tier lists (Required, Recommended, Optional) are disjoint; their
// declaration order is the order findings are emitted in. Fields absent
// from every tier are untracked: the tiered passes ignore them, but a
// shape rule may still inspect them when present.
//
// A Registry is constructed once and passed explicitly into every
// validator. Callers must treat it as read-only.
type Registry struct {
	// Container is the single key expected at the manifest root.
	Container string

	// Tier lists, exact-match on top-level field names.
	Required    []string
	Recommended []string
	Optional    []string

	// Shape rules, each applied only when its field is present.
	StringArrays []string
	Objects      []ObjectRule
	ObjectArrays []ObjectRule
	Scalars      []ScalarRule
}

// Default returns the rule set for a spec-up style specs.json manifest.
// Each call constructs a fresh value so no caller can corrupt a shared
// instance.
func Default() Registry {
	return Registry{
		Container: "specs",

		Required: []string{
			"title",
			"description",
			"author",
			"spec_directory",
			"spec_terms_directory",
			"output_path",
			"markdown_paths",
			"logo",
			"logo_link",
			"source",
		},
		Recommended: []string{
			"favicon",
		},
		Optional: []string{
			"anchor_symbol",
			"katex",
		},

		StringArrays: []string{
			"markdown_paths",
		},
		Objects: []ObjectRule{
			{Field: "source", Subfields: []string{"host", "account", "repo", "branch"}},
		},
		ObjectArrays: []ObjectRule{
			{Field: "external_specs", Subfields: []string{"external_spec", "gh_page", "url", "terms_dir"}},
		},
		Scalars: []ScalarRule{
			{Field: "katex", Type: TypeBoolean},
			{Field: "version", Type: TypeString},
		},
	}
}
