// Package queryknot implements QueryKnot, a flattened key-value text format
// for structured LLM output.
//
// QueryKnot is designed to be:
//   - Cheap for a language model to produce (no braces, no indentation)
//   - Trivial to parse deterministically (one key-value pair per line)
//   - Typed (strings, numbers, booleans, flat arrays)
//   - Round-trippable (parse/serialize are exact inverses at the value level)
//
// # Syntax
//
// Each non-blank line binds a dot-separated path to a single value:
//
//	user.name "Cansu"
//	user.age 25
//	user.location "Istanbul"
//	conversation.topics ["politics" "sports" "technology"]
//
// Paths flatten nested objects into a single level. Values are one of:
//
//	String:  "quoted text"       (backslash escapes: \" \\ \n \r \t)
//	Number:  25  -10.5           (no exponent notation)
//	Boolean: true  false
//	Array:   [1 2 3]             (space-separated scalars, no nesting)
//
// Nested collections (array-of-array, array-of-object) are not supported
// and are rejected during parsing.
//
// # Usage
//
// Parsing LLM output into a nested mapping or an attribute-style view:
//
//	m, err := queryknot.ParseToMap(text)
//	obj, err := queryknot.ParseToObject(text)
//	name, ok := obj.Lookup("user.name")
//
// Producing canonical QueryKnot text from nested data:
//
//	text, err := queryknot.Serialize(map[string]any{
//		"topics": []string{"Python", "AI-enabled applications"},
//	})
//
// Embedding the grammar description into an LLM prompt:
//
//	prompt := task + "\n" + queryknot.Instructions()
//
// # Error Handling
//
// Parsing is fail-fast: the first malformed line aborts with a typed error
// carrying the offending line number and text, so a bad LLM response can be
// diagnosed (or retried by the caller) instead of silently coerced.
package queryknot
