package config

import "os"

// Config is loaded once in main and passed down explicitly. Only
// SessionSecret is mandatory; the auth gate refuses to start without
// it. ResendAPIKey unset means contact emails are logged instead of
// sent, and BlobToken unset means uploads go to local disk.
type Config struct {
	Port          string
	DataDir       string
	UploadDir     string
	SessionSecret string
	ContactEmail  string
	ResendAPIKey  string
	BlobAPIURL    string
	BlobToken     string
}

func Load() Config {
	return Config{
		Port:          envOr("PORT", "5000"),
		DataDir:       envOr("DATA_DIR", "data"),
		UploadDir:     envOr("UPLOAD_DIR", "public/uploads"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ContactEmail:  envOr("CONTACT_EMAIL", "varunsingla608@gmail.com"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		BlobAPIURL:    envOr("BLOB_API_URL", "https://blob.vercel-storage.com"),
		BlobToken:     os.Getenv("BLOB_READ_WRITE_TOKEN"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
