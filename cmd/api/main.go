package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jcarter-pt/traincrm/internal/infra/cache"
	"github.com/jcarter-pt/traincrm/internal/infra/database"
	"github.com/jcarter-pt/traincrm/internal/infra/http/handlers"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/infra/mail"
	"github.com/jcarter-pt/traincrm/internal/infra/queue"
	"github.com/jcarter-pt/traincrm/internal/infra/worker"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: envOr("REDIS_ADDR", "localhost:6379"),
	})
	defer redisClient.Close()

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)
	taskRepo := database.NewTaskRepository(db)
	contactRepo := database.NewContactPointRepository(db)
	consultationRepo := database.NewConsultationRepository(db)
	templateRepo := database.NewTemplateRepository(db)

	// 2. Gateways and adapters
	statsCache := cache.NewStatsCache(redisClient)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@traincrm.app"),
	)

	// 3. Workers: consume reminders, scan for due follow-ups
	reminderWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go reminderWorker.Start(queue.QueueName)

	scanner := worker.NewReminderScanner(db, producer)
	go scanner.Start(context.Background())

	// 4. UseCases
	importUC := usecase.NewImportLeadsUseCase(leadRepo, statsCache)
	dashboardUC := usecase.NewDashboardUseCase(leadRepo, taskRepo, consultationRepo, statsCache)
	scheduleUC := usecase.NewScheduleConsultationUseCase(leadRepo, consultationRepo, mailSender, statsCache)

	// 5. Handlers
	importHandler := handlers.NewImportHandler(importUC)
	leadHandler := handlers.NewLeadHandler(leadRepo, statsCache)
	taskHandler := handlers.NewTaskHandler(taskRepo, leadRepo)
	contactHandler := handlers.NewContactPointHandler(contactRepo, leadRepo)
	consultationHandler := handlers.NewConsultationHandler(scheduleUC, consultationRepo)
	templateHandler := handlers.NewTemplateHandler(templateRepo, leadRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, redisClient)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(userRepo))

		r.Post("/leads/upload", importHandler.HandleUpload)

		r.Get("/leads", leadHandler.HandleList)
		r.Post("/leads", leadHandler.HandleCreate)
		r.Get("/leads/{id}", leadHandler.HandleGet)
		r.Patch("/leads/{id}", leadHandler.HandleUpdate)
		r.Delete("/leads/{id}", leadHandler.HandleDelete)

		r.Post("/leads/{id}/contact-points", contactHandler.HandleCreate)
		r.Get("/leads/{id}/contact-points", contactHandler.HandleListByLead)
		r.Delete("/contact-points/{contactPointId}", contactHandler.HandleDelete)

		r.Get("/tasks", taskHandler.HandleList)
		r.Get("/tasks/buckets", taskHandler.HandleBuckets)
		r.Post("/tasks", taskHandler.HandleCreate)
		r.Patch("/tasks/{id}", taskHandler.HandleUpdate)
		r.Post("/tasks/{id}/complete", taskHandler.HandleComplete)
		r.Delete("/tasks/{id}", taskHandler.HandleDelete)

		r.Get("/consultations", consultationHandler.HandleList)
		r.Post("/consultations", consultationHandler.HandleSchedule)
		r.Get("/consultations/{id}", consultationHandler.HandleGet)
		r.Patch("/consultations/{id}", consultationHandler.HandleUpdateStatus)
		r.Delete("/consultations/{id}", consultationHandler.HandleDelete)

		r.Get("/templates", templateHandler.HandleList)
		r.Post("/templates", templateHandler.HandleCreate)
		r.Get("/templates/{id}", templateHandler.HandleGet)
		r.Get("/templates/{id}/render", templateHandler.HandleRender)
		r.Patch("/templates/{id}", templateHandler.HandleUpdate)
		r.Delete("/templates/{id}", templateHandler.HandleDelete)

		r.Get("/dashboard", dashboardHandler.Handle)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 TrainCRM API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
