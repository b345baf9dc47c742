// Package types holds the data shared between the parser, the registration
// code and the reporters.
package types
