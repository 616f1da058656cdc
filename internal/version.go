// Package internal holds values shared across chronicle's packages
// that have no other natural home.
package internal

// Version is chronicle's release version, bumped on every tagged
// release.
const Version = "0.1.0"
