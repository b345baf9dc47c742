// Package files manages the .gitignore entries for scanalign's state files.
package files
