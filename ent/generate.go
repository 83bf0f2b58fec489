// Package ent holds the generated entity client. The generated code is not
// committed; run `go generate ./ent` after changing a schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
