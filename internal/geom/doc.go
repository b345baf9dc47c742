// Package geom holds the integer geometry shared by the registration code:
// points, 3x3 integer matrices, rigid transforms and exact point sets.
// Everything here is a value type; equality is exact coordinate match.
package geom
