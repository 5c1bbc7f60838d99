// Package cli provides the line-oriented backoffice console.
//
// The console keeps one current resource kind and reads commands from
// standard input: list and page through the collection, prefix search,
// create and edit records through prompted forms, delete with confirmation
// and fetch single records by id or name. Every command goes through the
// kind's resource.Controller, so the list is re-fetched after each change.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command set.
package cli
