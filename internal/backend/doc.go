// Package backend provides the abstract definition of an execution backend. Implementations of this package bind
// step definitions written in a particular technology, such as Go functions ("go") or YAML expression files
// ("yaml"), and run the scenario steps that match them.
package backend
