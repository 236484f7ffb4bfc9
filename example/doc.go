// Package example holds a committed declaration file together with its
// generated output, and exercises the generated contract end to end.
//
// Regenerate with:
//
//	changeset generate --package example .
package example

//go:generate go run changeset/cmd/changeset generate --package example .
