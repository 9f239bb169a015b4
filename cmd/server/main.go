package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-website/internal/auth"
	"portfolio-website/internal/config"
	"portfolio-website/internal/email"
	"portfolio-website/internal/handlers"
	"portfolio-website/internal/middleware"
	"portfolio-website/internal/storage"
	"portfolio-website/internal/store"
)

func main() {
	cfg := config.Load()

	gate, err := auth.New(cfg.SessionSecret)
	if err != nil {
		log.Fatalf("Failed to initialise auth: %v (set SESSION_SECRET)", err)
	}

	st := store.New(cfg.DataDir)
	mail := email.NewClient(cfg.ResendAPIKey)
	uploads := storage.NewUploader(cfg.UploadDir, cfg.BlobAPIURL, cfg.BlobToken)
	templates := template.Must(template.ParseGlob("templates/*.html"))

	h := handlers.New(st, gate, mail, uploads, cfg.ContactEmail, templates)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequireAuth(gate))

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Get("/admin/login", h.LoginPage)
	r.Get("/admin", h.Dashboard)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Post("/projects", h.CreateProject)
		r.Get("/projects/{id}", h.GetProject)
		r.Put("/projects/{id}", h.UpdateProject)
		r.Delete("/projects/{id}", h.DeleteProject)

		r.Get("/case-studies", h.ListCaseStudies)
		r.Post("/case-studies", h.CreateCaseStudy)
		r.Get("/case-studies/{id}", h.GetCaseStudy)
		r.Put("/case-studies/{id}", h.UpdateCaseStudy)
		r.Delete("/case-studies/{id}", h.DeleteCaseStudy)

		r.Get("/leadership", h.ListLeadership)
		r.Post("/leadership", h.CreateLeadership)
		r.Get("/leadership/{id}", h.GetLeadership)
		r.Put("/leadership/{id}", h.UpdateLeadership)
		r.Delete("/leadership/{id}", h.DeleteLeadership)

		r.Post("/contact", h.SubmitContact)
		r.Get("/contacts", h.ListContacts)
		r.Put("/contacts/{id}", h.UpdateContactStatus)
		r.Delete("/contacts/{id}", h.DeleteContact)

		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		r.Post("/upload", h.Upload)
	})

	log.Printf("Server starting on http://0.0.0.0:%s", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
