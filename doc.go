// Package jsonptr reads and writes mutable JSON trees through JSON Pointer
// (RFC 6901) expressions, creating missing intermediate containers on write.
//
// The package uses an internal package for implementation details:
//
//   - internal: pointer token escaping, index parsing and metrics
//
// # Basic Usage
//
//	root, err := jsonptr.ReadTree(`{"user":{"name":"Alice"}}`)
//	name := jsonptr.Get(root, "/user/name")          // "Alice"
//	ok := jsonptr.Set(root, "/user/tags/0", "admin") // creates "tags":["admin"]
//
// # Pointer Rules
//
// "" and "/" address the root. The leading slash is optional and empty
// segments are ignored. "~1" decodes to "/" and "~0" to "~".
//
// Reads never fail: an unresolvable pointer yields the missing sentinel,
// which is distinct from an explicit null.
//
// Writes create what is missing. A created container is an array when the
// next segment is a non-negative index and an object otherwise; creating
// inside an array past its end pads it with nulls. The final segment of a
// write into an array must name an existing element (negative indexes count
// from the end) or equal the length, which appends.
//
// Writing the root pointer empties the root container. A failed write may
// leave containers created by its earlier steps in place.
//
// Writes are limited to Config.MaxPathDepth segments (100 by default) while
// reads are not; a negative MaxPathDepth lifts the limit. Writing a node into
// its own subtree is refused.
//
// # Configuration
//
// Use New with a Config for a dedicated mapper:
//
//	cfg := jsonptr.DefaultConfig()
//	cfg.TimeZone = "Asia/Shanghai"
//	mapper := jsonptr.New(cfg)
//	defer mapper.Close()
//
// # Concurrency
//
// A Mapper is safe for concurrent use. Trees are not synchronized: writes
// to a tree must not overlap other reads or writes of that tree.
package jsonptr
