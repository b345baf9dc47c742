// Package scanalign provides the command-line interface. It wires the
// align, show, history, rotations and config subcommands to the engine
// and report packages.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/scanalign/scanalign/cmd/scanalign"
//	func main() { scanalign.Execute() }
package scanalign
