package mathctx

import "strings"

// CIKey is a case-insensitive map key: "pi", "PI" and "Pi" all canonicalize
// to the same CIKey, so a plain Go map keyed by CIKey gives case-insensitive
// lookup for free. The originally inserted casing is not recoverable from
// the key alone — callers that need it for display keep it alongside the
// value in a named entry (see namedValue[T] in context.go), per spec.md §3's
// requirement that "the case-insensitive key type must preserve the
// originally inserted casing for display purposes while hashing and
// comparing case-insensitively."
type CIKey string

// CI canonicalizes name into a CIKey.
func CI(name string) CIKey {
	return CIKey(strings.ToLower(name))
}
