// Package eval filters assembly listings with expr-lang expressions.
//
// An expression sees the fields of Env by their expr names:
//
//	type == "standard" && hasEvent && event > 40000000
//	basis == "4.8.1" || name startsWith "4.8"
//	minor(name) == "4.9"
//
// getenv(name) reads the process environment.
package eval
