// Package fixtures holds the fixture programs the Raxol terminal test
// suite runs, plus the runner those fixtures are exercised with.
package fixtures

import "fmt"

// DefaultName is the greeting subject used when no argument is given.
const DefaultName = "World"

// Hello formats the greeting for name. The name is inserted verbatim,
// so an empty name yields "Hello, !".
func Hello(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Run maps an invocation argument list to a greeting. The first
// argument is the name and any further arguments are ignored; with no
// arguments the name is DefaultName.
func Run(args ...string) string {
	name := DefaultName
	if len(args) > 0 {
		name = args[0]
	}

	return Hello(name)
}
