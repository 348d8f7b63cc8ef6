// Package app holds the runtime options shared by CLI commands and builds
// the logger they use.
package app
