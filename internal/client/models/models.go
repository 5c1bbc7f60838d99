// Package models defines the records exchanged with the resource API.
//
// Field names follow the API's JSON encoding. ID is nil until the server
// has assigned one.
package models

// Task is a unit of work (API base path "Tache").
type Task struct {
	ID      *int64 `json:"id,omitempty"`
	Name    string `json:"name"`
	Contenu string `json:"contenu"`
}

// Employee is a staff member (API base path "Employee").
type Employee struct {
	ID        *int64 `json:"id,omitempty"`
	Name      string `json:"name"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
}

// Message is a free-text message (API base path "Message").
type Message struct {
	ID      *int64 `json:"id,omitempty"`
	Contenu string `json:"contenu"`
}

// Forum is a discussion forum (API base path "Forum").
type Forum struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// File is a named document with inline content (API base path "Fichier").
type File struct {
	ID      *int64 `json:"id,omitempty"`
	Name    string `json:"name"`
	Contenu string `json:"contenu"`
}

// ChatRoom is a chat channel (API base path "ChatRoom").
type ChatRoom struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// Project groups work under a name and description (API base path "Project").
type Project struct {
	ID      *int64 `json:"id,omitempty"`
	Name    string `json:"name"`
	Contenu string `json:"contenu"`
}

// IDOf dereferences an optional identifier.
func IDOf(id *int64) (int64, bool) {
	if id == nil {
		return 0, false
	}
	return *id, true
}

// NewID returns a pointer to v, for building records with a known identifier.
func NewID(v int64) *int64 {
	return &v
}
