// Code generated by "stringer -type Type -output type_string.go"; adapted by hand because the
// generator cannot be run in this environment. DO NOT EDIT the generation strategy without also
// updating the Type constants above.

package token

// String implements fmt.Stringer for Type, returning the same diagnostic name Name(t) would.
func (t Type) String() string {
	return Name(t)
}
