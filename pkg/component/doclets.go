package component

// Names of the doclets the pipeline acts on. Any other doclet travels through
// untouched.
const (
	DocletPublic      = "public"
	DocletHidden      = "hidden"
	DocletExample     = "example"
	DocletVisibleName = "visibleName"
)

// Doclets maps a meta-annotation name to its raw value. Bare markers such as
// @public carry an empty value; presence is what matters for them.
type Doclets map[string]string

// Has reports whether the doclet was declared, regardless of value.
func (d Doclets) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Value returns the doclet's raw value, or "" when absent.
func (d Doclets) Value(name string) string {
	return d[name]
}

// Delete removes a consumed doclet. Safe on a nil map.
func (d Doclets) Delete(name string) {
	delete(d, name)
}

// Public reports whether the block declared an explicit public marker.
func (d Doclets) Public() bool { return d.Has(DocletPublic) }

// Hidden reports whether the block declared a hidden marker.
func (d Doclets) Hidden() bool { return d.Has(DocletHidden) }

// Example reports whether the block declared an example marker.
func (d Doclets) Example() bool { return d.Has(DocletExample) }

// VisibleName returns the declared user-facing label and whether one was set.
func (d Doclets) VisibleName() (string, bool) {
	v, ok := d[DocletVisibleName]
	return v, ok
}
