// Package config loads scanalign settings from local and global YAML files.
// The CLI applies the precedence flags > local > global when mapping them
// into engine configuration.
package config
