package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/model"
	"devfolio/internal/repository"
	"devfolio/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Skill{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedDemoContent(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed demo content: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the admin user unless one already exists for the
// configured email.
func seedAdmin(ctx context.Context, repo repository.UserRepository, email, password string) error {
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("Admin user created: %s", email)
	log.Println("Make sure to change the password after first login!")
	return nil
}

// seedDemoContent inserts a handful of content rows so a fresh install has
// something to render. Rows are matched by title/name so reruns are
// idempotent.
func seedDemoContent(ctx context.Context, gormDB *gorm.DB) error {
	projectRepo := repository.NewProjectRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)

	projects := []model.Project{
		{
			Title:        "Portfolio Website",
			Description:  "This site: a content API with an admin panel.",
			Technologies: []string{"Go", "MySQL", "Redis"},
			Category:     "web",
			Featured:     true,
			Order:        1,
		},
		{
			Title:        "Realtime Dashboard",
			Description:  "Live metrics dashboard with websocket updates.",
			Technologies: []string{"Go", "TypeScript"},
			Category:     "web",
			Order:        2,
		},
	}

	existing, err := projectRepo.List(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Title] = true
	}
	for i := range projects {
		if have[projects[i].Title] {
			continue
		}
		if err := projectRepo.Create(ctx, &projects[i]); err != nil {
			return err
		}
		log.Printf("Seeded project: %s", projects[i].Title)
	}

	skills := []model.Skill{
		{Name: "Go", Category: "backend", Level: 90, Order: 1},
		{Name: "MySQL", Category: "backend", Level: 80, Order: 2},
		{Name: "TypeScript", Category: "frontend", Level: 75, Order: 3},
	}

	existingSkills, err := skillRepo.List(ctx)
	if err != nil {
		return err
	}
	haveSkill := make(map[string]bool, len(existingSkills))
	for _, s := range existingSkills {
		haveSkill[s.Name] = true
	}
	for i := range skills {
		if haveSkill[skills[i].Name] {
			continue
		}
		if err := skillRepo.Create(ctx, &skills[i]); err != nil {
			return err
		}
		log.Printf("Seeded skill: %s", skills[i].Name)
	}

	return nil
}
