// Package homes extracts structured listing attributes from CalgaryHomes
// listing pages. It streams through the page markup and rebuilds the
// label/value pairs of the listing-body dataset into typed field groups,
// then flattens them into a fixed output schema.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, sqlite/, rod/).
package homes
