package main

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/memoboard/internal/cfg"
	"github.com/Vovarama1992/memoboard/internal/delivery"
	"github.com/Vovarama1992/memoboard/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	conf := cfg.LoadConfig()

	// STORAGE
	store := infra.NewFileRecordStore(conf.DataDir)

	files, err := infra.NewDiskFileSaver(conf.UploadDir)
	if err != nil {
		panic("cannot prepare upload dir: " + err.Error())
	}

	// HANDLERS
	up := delivery.NewUploader(files, zl)
	hMedia := delivery.NewMediaHandler(store, conf.BaseURL, zl)
	hNote := delivery.NewNoteHandler(store, zl)
	hSound := delivery.NewSoundHandler(store, conf.BaseURL, zl)
	hFiles := delivery.NewFilesHandler(conf.UploadDir)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, up, hMedia, hNote, hSound, hFiles)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": conf.Port},
	})

	if err := http.ListenAndServe(":"+conf.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
