// Package jsonresolver implements the one concrete value.Resolver the
// CLI ships (spec.md §6's "resolve" callback): variables are looked up
// by name as top-level (or dotted-path) keys of a JSON document, read
// with github.com/tidwall/gjson. A companion Set function returns an
// updated copy of a JSON document using github.com/tidwall/sjson,
// backing the `exprc vars set` subcommand.
package jsonresolver

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/exprlang/exprc/internal/literal"
	"github.com/exprlang/exprc/internal/value"
)

// Resolver reads variables out of a JSON document held in memory. It is
// read-only: resolving never mutates doc, so a single Resolver can back
// many evaluations of the same compiled program.
type Resolver struct {
	doc string
}

// New wraps a JSON document (an object at the top level) for variable
// resolution. doc is not validated eagerly — gjson degrades missing or
// malformed paths to "not found" rather than erroring, matching
// spec.md's own stance that an unresolved variable is ErrReference, not
// a host-side panic.
func New(doc string) *Resolver {
	return &Resolver{doc: doc}
}

// Resolve implements value.Resolver. name is whatever the lexer
// captured after '$' (spec §4.1: `$name` or `${name}`), used verbatim as
// a gjson path, so `$user.age` resolves the nested field user.age.
func (r *Resolver) Resolve(name string) value.Value {
	result := gjson.Get(r.doc, name)
	if !result.Exists() {
		return value.NewError(value.ErrReference)
	}
	return fromGJSON(result)
}

// fromGJSON converts a gjson.Result to the value.Value kind it most
// naturally maps to. Datetime is recognized opportunistically: a JSON
// string that parses as an ISO-8601 datetime (spec §4.8's grammar)
// resolves to KindDatetime rather than KindString, since the wire
// format has no separate datetime type of its own.
func fromGJSON(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.True, gjson.False:
		return value.NewBool(r.Bool())
	case gjson.Number:
		return value.NewNumber(r.Float())
	case gjson.String:
		if dt, ok := literal.ParseDatetime(r.Str); ok {
			return dt
		}
		return value.NewString(r.Str)
	default:
		return value.NewError(value.ErrValue)
	}
}

// AsArenaResolver adapts Resolve to the signature value.Arena.Resolve
// expects.
func (r *Resolver) AsArenaResolver() value.Resolver { return r.Resolve }

// Set writes value at path into doc (an in-memory JSON document),
// returning the updated document. Used by the `vars set` subcommand to
// edit the variables file that `vars get`/`eval --vars` later reads.
func Set(doc, path, value string) (string, error) {
	return sjson.Set(doc, path, value)
}

// SetNumber writes a numeric value at path.
func SetNumber(doc, path string, value float64) (string, error) {
	return sjson.Set(doc, path, value)
}

// SetBool writes a boolean value at path.
func SetBool(doc, path string, value bool) (string, error) {
	return sjson.Set(doc, path, value)
}

// Get reads the raw JSON value at path as a display string, for the
// `vars get` subcommand. ok is false when the path does not exist.
func Get(doc, path string) (string, bool) {
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}
