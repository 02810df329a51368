package offsets

// debugAssert panics with msg when cond is false in layoutdebug builds.
// In release builds the call compiles to nothing.
func debugAssert(cond bool, msg string) {
	if debugChecks && !cond {
		panic("offsets: " + msg)
	}
}
