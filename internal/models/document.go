// Package models defines core data structures for documents, queries, and retrieval results.
package models

// Document represents a corpus document. ID is the document's position in
// the corpus and doubles as its label in the vector index.
type Document struct {
	ID     int    `json:"id" db:"id"`
	Title  string `json:"title,omitempty" db:"title"`
	Text   string `json:"text" db:"text"`
	Source string `json:"source,omitempty" db:"source"`
}
