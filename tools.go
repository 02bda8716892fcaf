//go:build tools
// +build tools

package intcoll

import (
	_ "golang.org/x/tools/cmd/stringer"
)
