// Package report renders registration results as terminal tables or JSON.
package report
