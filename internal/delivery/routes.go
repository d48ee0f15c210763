package delivery

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// jsonBodyLimit caps plain JSON bodies; multipart uploads carry their own
// per-policy ceilings inside the upload middleware.
const jsonBodyLimit = 10 << 20

func RegisterRoutes(r chi.Router, up *Uploader, hMedia *MediaHandler, hNote *NoteHandler, hSound *SoundHandler, hFiles *FilesHandler) {

	// uploads
	r.With(up.Accept("photo", MediaPolicy)).Post("/upload", hMedia.UploadImage)
	r.With(up.Accept("media", MediaPolicy)).Post("/upload-top-media", hMedia.UploadTopMedia)
	r.With(up.Accept("media", MediaPolicy)).Post("/upload-yes-media", hMedia.UploadYesMedia)
	r.With(up.Accept("sound", SoundPolicy)).Post("/upload-sound", hSound.UploadSound)

	// record state
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(jsonBodyLimit))

		r.Post("/set-top-note", hNote.SetTopNote)
		r.Post("/set-notes", hNote.SetNotes)
	})

	r.Get("/get-top-media", hMedia.GetTopMedia)
	r.Get("/get-yes-media", hMedia.GetYesMedia)
	r.Get("/get-top-note", hNote.GetTopNote)
	r.Get("/get-notes", hNote.GetNotes)
	r.Get("/get-sound", hSound.GetSound)

	// stored uploads
	r.Get("/uploads/{name}", hFiles.Serve)
}
