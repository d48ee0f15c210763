package models

// MediaRecord remembers the last uploaded banner/yes media file.
type MediaRecord struct {
	URL  string `json:"url"`
	Type string `json:"type"` // MIME type as declared by the upload
}

type ImageRecord struct {
	ImageURL *string `json:"imageUrl"`
}

type NoteRecord struct {
	Text string `json:"text"`
}

// NotesRecord carries whatever the client sent; entries stay opaque JSON.
type NotesRecord struct {
	Notes []any `json:"notes"`
}

type SoundRecord struct {
	SoundURL *string `json:"soundUrl"`
}
