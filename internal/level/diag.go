package level

import "fmt"

// LevelName returns the conventional name for a microarchitecture level.
func LevelName(n int) string {
	if n == 0 {
		return "x86-64-v0 (below baseline)"
	}
	return fmt.Sprintf("x86-64-v%d", n)
}

// DescribeBlocked builds the human-readable sentence for a CPU that did not
// reach the top level: which level it supports, which level it failed to
// reach, and the flag that blocked it. cpuName, when non-empty, is appended
// in brackets.
func DescribeBlocked(r Result, cpuName string) string {
	msg := fmt.Sprintf("CPU supports %s but not %s: missing flag %s",
		LevelName(r.Level), LevelName(r.Level+1), r.Blocking)
	if cpuName != "" {
		msg += fmt.Sprintf(" [%s]", cpuName)
	}
	return msg
}

// DescribeFullSupport builds the sentence for a CPU that satisfies every
// defined level.
func DescribeFullSupport(r Result, cpuName string) string {
	msg := fmt.Sprintf("CPU supports %s, the highest defined level", LevelName(r.Level))
	if cpuName != "" {
		msg += fmt.Sprintf(" [%s]", cpuName)
	}
	return msg
}

// DescribeAssertFailure builds the sentence for a failed minimum-level
// assertion. host, when non-empty, is appended in brackets.
func DescribeAssertFailure(r Result, min int, host string) string {
	msg := fmt.Sprintf("CPU supports %s, asserted minimum is %s",
		LevelName(r.Level), LevelName(min))
	if host != "" {
		msg += fmt.Sprintf(" [host %s]", host)
	}
	return msg
}
