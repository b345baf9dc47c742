// Package parse turns scanner reports into scans. Two formats are accepted:
// the plain text format with "--- scanner N ---" headers followed by one
// "x,y,z" beacon per line, and JSON, either {"scanners":[{"name":..,
// "beacons":[[x,y,z],...]}]} or a bare array of beacon arrays.
package parse
