package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge bool
	Chain bool
	Query bool
	Load  bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("ASSEMBLY_DEBUG_MERGE")
	d.Chain = boolEnv("ASSEMBLY_DEBUG_CHAIN")
	d.Query = boolEnv("ASSEMBLY_DEBUG_QUERY")
	d.Load = boolEnv("ASSEMBLY_DEBUG_LOAD")
	d.Eval = boolEnv("ASSEMBLY_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Chain() bool {
	return d.Chain
}
func Query() bool {
	return d.Query
}
func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
