// Package debug provides env-gated debug logging for jx internals.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Query bool
	CLI   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JX_DEBUG_PARSE")
	d.Query = boolEnv("JX_DEBUG_QUERY")
	d.CLI = boolEnv("JX_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Query() bool {
	return d.Query
}

func CLI() bool {
	return d.CLI
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
