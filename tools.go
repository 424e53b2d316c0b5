//go:build tools

// This file records the module's code-generation tool dependency so `go
// mod tidy` does not prune it. It is never compiled into the library.
package radix

import _ "golang.org/x/tools/cmd/stringer"
