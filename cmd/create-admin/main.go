package main

import (
	"flag"
	"fmt"
	"log"

	"portfolio-website/internal/auth"
	"portfolio-website/internal/config"
	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "Admin", "admin display name")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	cfg := config.Load()
	st := store.New(cfg.DataDir)

	admin := models.AdminUser{
		Email:        *email,
		PasswordHash: hash,
		Name:         *name,
	}
	if err := store.WriteSingleton(st, "admin.json", admin); err != nil {
		log.Fatalf("Failed to write admin record: %v", err)
	}

	fmt.Println("Admin credential written to", cfg.DataDir+"/admin.json")
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
}
