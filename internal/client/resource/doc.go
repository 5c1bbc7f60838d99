// Package resource implements the list controller shared by every resource
// kind of the console.
//
// A Controller owns one kind's state: the collection last fetched from the
// API, the search text, the page window, the form mode and the form values.
// What the user sees (the visible slice) is never stored; Visible derives it
// from the state on every read:
//
//   - form open (create or edit) ⇒ nothing is listed;
//   - search display ⇒ the first SearchLimit records whose search field
//     starts with the search text, case-insensitively (no text ⇒ nothing);
//   - page display ⇒ Page(collection, index, size).
//
// Mutations follow one protocol: validate, call the API, and on success
// close the form and re-fetch the whole collection. On failure the form
// stays as it was and the error is kept in the state's last-error slot.
// Only one mutation may be in flight per controller; a second one fails
// with common.ErrBusy.
//
// Controllers are safe for concurrent use. Remote calls run outside the
// state lock, so Snapshot never waits on the network.
package resource
