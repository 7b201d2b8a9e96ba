// Package assembly computes effective configuration for assemblies.
//
// An assembly is a named configuration layer in a releases document.  It may
// name another assembly as its basis and inherit from it.  The queries in this
// package walk the basis chain of an assembly (see Releases.Chain), reject
// cycles, and either fold the layers of the chain with mergeop.Merge, root
// ancestor first, or search the chain nearest first:
//
//	AssemblyType    the declared type, defaulting to standard or stream
//	GroupConfig     group overrides merged into a group configuration
//	MetadataConfig  member overrides merged into rpm or image metadata
//	RHCOSConfig     merged rhcos overrides
//	BasisEvent      nearest basis.brew_event
//	Basis           nearest basis record
//
// Queries never modify the document or the configuration passed in.  A
// document of the wrong shape gives an error wrapping ErrMalformed.
package assembly
