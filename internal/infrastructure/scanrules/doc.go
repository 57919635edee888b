// Package scanrules provides the built-in hardening rules the Engineer head
// evaluates against AI deployment targets.
package scanrules
