//go:build !layoutdebug

package offsets

const debugChecks = false
