// File: order.go
// Role: deterministic best-effort ordering over arbitrary comparable node
// types, used only to make iteration order reproducible; never used to
// compare distances or priorities (those stay keyed by an insertion
// sequence counter per spec.md's priority-queue-entry discipline).
package graph

import "fmt"

func formatNode[N comparable](n N) string {
	return fmt.Sprintf("%v", n)
}
