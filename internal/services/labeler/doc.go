// Package labeler declares an account as a labeler by writing its
// app.bsky.labeler.service record: the label values it emits and how
// clients should present them.
package labeler
