package component

// Tag is a single occurrence of a documentation-comment tag. Occurrences are
// grouped by Title; the order of occurrences within a group follows the order
// they appear in the comment block and is significant (the first occurrence
// wins when merging onto a single-valued field).
type Tag struct {
	// Title is the tag name without the leading marker, e.g. "param".
	Title string `json:"title"`

	// Name is the identifier the tag documents, e.g. a parameter name.
	// Empty for tags that do not declare one.
	Name string `json:"name,omitempty"`

	// Type is the declared type expression, when the tag carried one.
	Type string `json:"type,omitempty"`

	// Description is the free-text body of the occurrence.
	Description string `json:"description,omitempty"`
}

// Param describes one method parameter as reported by introspection,
// enriched with documentation text during normalization.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Return describes a method return value. Introspection-provided data takes
// precedence over tag-derived data when both are present.
type Return struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Method is one component method. Docblock holds the raw annotation block as
// extracted by introspection; after normalization Tags holds the parsed tag
// groups with the parameter/return synonyms already folded into Params and
// Returns. Only methods whose Docblock declares them public survive
// normalization.
type Method struct {
	Name     string           `json:"name"`
	Params   []Param          `json:"params,omitempty"`
	Returns  *Return          `json:"returns,omitempty"`
	Docblock string           `json:"docblock,omitempty"`
	Tags     map[string][]Tag `json:"tags,omitempty"`
}

// Prop is one component property. Description starts as the raw
// documentation text and is replaced by the tag-free text during
// normalization. A prop marked hidden is removed from the record entirely;
// downstream consumers detect hidden props by their absence.
type Prop struct {
	Description string           `json:"description,omitempty"`
	Tags        map[string][]Tag `json:"tags,omitempty"`
}

// LoadedExample is what the default example loader produces for an external
// example reference: the resolved path plus the file contents.
type LoadedExample struct {
	Path   string `json:"path"`
	Source string `json:"source"`
}

// ExampleSettings carries the declared settings of an inline fenced example.
// Render is the only setting the pipeline itself inspects: blocks that do not
// declare render intent are dropped with a warning.
type ExampleSettings struct {
	Render bool           `json:"render,omitempty"`
	Lang   string         `json:"lang,omitempty"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// Doc is the documentation record for a single component. It is constructed
// by an introspection engine, mutated in place by every pipeline stage, and
// returned as the final output; nothing mutates it after finalization.
type Doc struct {
	// Description is the component's top-level documentation. Normalization
	// strips doclet annotations from it and replaces the remainder with
	// highlighted markup.
	Description string `json:"description,omitempty"`

	// Methods keeps its input order; non-public methods are dropped.
	Methods []Method `json:"methods,omitempty"`

	// Props maps prop name to prop; hidden props are deleted.
	Props map[string]*Prop `json:"props,omitempty"`

	// Doclets holds the meta-annotations extracted from Description. They are
	// transient: consumed markers (example, visibleName) are deleted as the
	// pipeline processes them.
	Doclets Doclets `json:"doclets,omitempty"`

	// Tags holds the tag groups parsed from Description and survives as
	// output, minus any promoted markers.
	Tags map[string][]Tag `json:"tags,omitempty"`

	// Examples accumulates inline fenced examples in declaration order.
	Examples []string `json:"examples,omitempty"`

	// Example is the single resolved external example slot. When several
	// occurrences resolve to existing files the last one wins.
	Example any `json:"example,omitempty"`

	DisplayName string `json:"displayName,omitempty"`

	// VisibleName is the user-facing label promoted from the visibleName
	// doclet, when one was declared.
	VisibleName string `json:"visibleName,omitempty"`
}
