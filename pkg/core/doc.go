// Package core provides a small, stable facade over scanalign's internal
// engine for programs that want to register scans without the CLI.
//
// Example:
//
//	scans, err := core.ParseScans("scans.txt", data)
//	if err != nil { /* handle */ }
//	res, err := core.AlignScans(ctx, scans, core.Config{})
//	if err != nil { /* handle */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
