// Package weight implements the weight resolver described in spec.md §4.1:
// it normalizes a caller-supplied weight specifier — either a callable or
// an attribute-key string — into a single uniform Func, reducing a
// multigraph's parallel-edge bundle by minimum where required.
package weight
