// Package libraries manages the optional component-library step of setup.
//
// Each supported library implements the Library interface: which packages
// to install, how to configure the project afterwards, and what to tell the
// user when it is done. Variants are looked up by key from a static
// registry; the menu order is fixed.
//
// Configuration is textual: providers are spliced into the root layout and
// Tailwind settings into its config file by anchored string insertion,
// guarded by idempotence checks so re-running setup never double-wraps.
package libraries
