// Package registry keeps the named entities of a single simulation run.
//
// Names are case-sensitive and unique within a registry. Entities are listed
// in the order they were added, which is the order a scenario constructs
// them. A registry belongs to one run and is not safe for concurrent use.
package registry
