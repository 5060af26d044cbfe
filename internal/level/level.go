package level

import (
	"github.com/ppiankov/archlevel/internal/cpuinfo"
)

// Max is the highest defined microarchitecture level.
const Max = 4

// Requirement lists the feature flags a single level adds on top of the
// previous one.
type Requirement struct {
	Level int      `json:"level"`
	Flags []string `json:"flags"`
}

// Requirements defines the x86-64 microarchitecture levels. Each entry is
// additive to the previous one; the classifier tests them in order.
// Flag order within a level is significant: the first absent flag, left to
// right, is the one reported as blocking.
var Requirements = []Requirement{
	{Level: 1, Flags: []string{"lm", "cmov", "cx8", "fpu", "fxsr", "mmx", "syscall", "sse2"}},
	{Level: 2, Flags: []string{"cx16", "lahf_lm", "popcnt", "sse4_1", "sse4_2", "ssse3"}},
	{Level: 3, Flags: []string{"avx", "avx2", "bmi1", "bmi2", "f16c", "fma", "abm", "movbe", "xsave"}},
	{Level: 4, Flags: []string{"avx512f", "avx512bw", "avx512cd", "avx512dq", "avx512vl"}},
}

// Result is the outcome of classifying a FlagSet.
type Result struct {
	// Level is the highest fully satisfied level, 0 through Max.
	Level int `json:"level"`
	// Blocking is the first missing flag at the first failing level,
	// or "" when every level is satisfied.
	Blocking string `json:"blocking_flag,omitempty"`
}

// Classify computes the highest microarchitecture level fully supported by
// the given FlagSet, using the built-in Requirements table.
func Classify(flags cpuinfo.FlagSet) Result {
	return ClassifyAgainst(Requirements, flags)
}

// ClassifyAgainst walks a requirement table in order and returns the highest
// contiguous satisfied level. Evaluation short-circuits at the first failing
// level; no level above it is tested.
//
// INVARIANT: adding flags can only increase the level, never decrease.
func ClassifyAgainst(table []Requirement, flags cpuinfo.FlagSet) Result {
	achieved := 0
	for _, req := range table {
		if missing, ok := firstMissing(flags, req.Flags); !ok {
			return Result{Level: achieved, Blocking: missing}
		}
		achieved = req.Level
	}
	return Result{Level: achieved}
}

// firstMissing returns the first required flag absent from the set, in table
// order, or ok == true when all are present.
func firstMissing(flags cpuinfo.FlagSet, required []string) (string, bool) {
	for _, tok := range required {
		if !flags.Has(tok) {
			return tok, false
		}
	}
	return "", true
}
