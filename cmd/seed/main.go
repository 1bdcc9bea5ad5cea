package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/beyondborder/backend/internal/config"
	"github.com/beyondborder/backend/internal/db"
	"github.com/beyondborder/backend/internal/model"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the initial admin account and starter content. Safe to re-run:
// existing rows are left alone.

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := seedAdmin(ctx, gdb); err != nil {
		return err
	}
	return seedContent(ctx, gdb)
}

func seedAdmin(ctx context.Context, gdb *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	var existing model.Admin
	err := gdb.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("admin %s already exists; skipping", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := model.Admin{Email: email, PasswordHash: string(hash), Name: "Administrator"}
	if err := gdb.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("created admin %s (id=%d)", email, admin.ID)
	return nil
}

func seedContent(ctx context.Context, gdb *gorm.DB) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&model.Page{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("pages already exist; skipping content seed")
		return nil
	}

	pages := []model.Page{
		{Slug: "home", Title: "Beyond Border", Content: "Cross-border business consulting.", IsPublished: true},
		{Slug: "services", Title: "Our Services", Content: "Market entry, compliance, partner search.", IsPublished: true},
		{Slug: "contact", Title: "Contact Us", Content: "We would love to hear from you.", IsPublished: true},
	}
	if err := gdb.WithContext(ctx).Create(&pages).Error; err != nil {
		return fmt.Errorf("seed pages: %w", err)
	}

	items := []model.WhyChooseUsItem{
		{Title: "Local expertise", Description: "Consultants on the ground in every target market.", Icon: "globe", SortOrder: 1},
		{Title: "End-to-end support", Description: "From first inquiry to signed contracts.", Icon: "handshake", SortOrder: 2},
	}
	if err := gdb.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("seed why-choose-us: %w", err)
	}

	log.Printf("seeded %d pages and %d why-choose-us items", len(pages), len(items))
	return nil
}
