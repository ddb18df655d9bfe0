package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Subst   bool
	Merge   bool
	Compose bool
	Load    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("K8SAGENT_DEBUG_PARSE")
	d.Subst = boolEnv("K8SAGENT_DEBUG_SUBST")
	d.Merge = boolEnv("K8SAGENT_DEBUG_MERGE")
	d.Compose = boolEnv("K8SAGENT_DEBUG_COMPOSE")
	d.Load = boolEnv("K8SAGENT_DEBUG_LOAD")
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
func Subst() bool {
	return d.Subst
}
func Merge() bool {
	return d.Merge
}
func Compose() bool {
	return d.Compose
}
func Load() bool {
	return d.Load
}
