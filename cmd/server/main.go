package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"devfolio/internal/auth"
	"devfolio/internal/cache"
	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/handler"
	"devfolio/internal/mail"
	"devfolio/internal/model"
	"devfolio/internal/repository"
	"devfolio/internal/router"
	"devfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Portfolio website backend with content endpoints, contact form, newsletter and JWT-gated admin panel.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ContactMessage{},
			&model.Subscriber{},
			&model.Project{},
			&model.Skill{},
			&model.Experience{},
			&model.Testimonial{},
			&model.BlogPost{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ContactMessage{},
		&model.Subscriber{},
		&model.Project{},
		&model.Skill{},
		&model.Experience{},
		&model.Testimonial{},
		&model.BlogPost{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Mailer is optional: without SMTP credentials it logs and skips sends.
	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	subscriberRepo := repository.NewSubscriberRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	experienceRepo := repository.NewExperienceRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	blogRepo := repository.NewBlogRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	authService := service.NewAuthService(userRepo, jwtService)
	contactService := service.NewContactService(contactRepo, mailer, cfg.AdminEmail)
	newsletterService := service.NewNewsletterService(subscriberRepo, mailer)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	skillService := service.NewSkillService(skillRepo, cacheClient)
	experienceService := service.NewExperienceService(experienceRepo, cacheClient)
	testimonialService := service.NewTestimonialService(testimonialRepo, cacheClient)
	blogService := service.NewBlogService(blogRepo, cacheClient)
	statsService := service.NewStatsService(projectRepo, blogRepo, contactRepo, subscriberRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	projectHandler := handler.NewProjectHandler(projectService)
	skillHandler := handler.NewSkillHandler(skillService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	blogHandler := handler.NewBlogHandler(blogService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		contactHandler,
		newsletterHandler,
		projectHandler,
		skillHandler,
		experienceHandler,
		testimonialHandler,
		blogHandler,
		statsHandler,
	)

	log.Printf("Frontend origin: %s", cfg.FrontendURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
