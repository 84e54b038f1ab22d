package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/casemark/lead-intake/internal/auth"
	"github.com/casemark/lead-intake/internal/entity"
	"github.com/casemark/lead-intake/internal/infra/database"
	"github.com/casemark/lead-intake/internal/infra/http/handlers"
	"github.com/casemark/lead-intake/internal/infra/http/middleware"
	"github.com/casemark/lead-intake/internal/infra/mail"
	"github.com/casemark/lead-intake/internal/infra/queue"
	"github.com/casemark/lead-intake/internal/infra/upload"
	"github.com/casemark/lead-intake/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Record store: Postgres when configured, seeded in-memory otherwise.
	var db *sql.DB
	var repo entity.LeadRepositoryInterface

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer db.Close()
		repo = database.NewLeadRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using seeded in-memory store")
		repo = database.NewMemoryLeadRepository(database.SeedLeads())
	}

	// 2. Notification pipeline: optional, submissions work without it.
	var amqpConn *amqp.Connection
	var producer usecase.QueueProducerInterface

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			getenv("RABBITMQ_USER", "guest"),
			getenv("RABBITMQ_PASS", "guest"),
			host,
			getenv("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatalf("rabbitmq connection failed: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		amqpConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			getenv("MAIL_FROM", "no-reply@casemark.io"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("RABBITMQ_HOST not set, confirmation emails disabled")
	}

	// 3. Resume storage
	uploadStore, err := upload.NewStore(getenv("UPLOAD_DIR", "uploads"), "/uploads")
	if err != nil {
		log.Fatalf("upload store init failed: %v", err)
	}

	// 4. Auth gate
	authenticator := auth.NewAuthenticator()

	// 5. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(repo, producer)
	listLeadsUC := usecase.NewListLeadsUseCase(repo)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(repo)
	bulkUpdateUC := usecase.NewBulkUpdateStatusUseCase(repo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(repo)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC)
	adminHandler := handlers.NewAdminHandler(listLeadsUC, updateStatusUC, bulkUpdateUC, deleteLeadUC, repo)
	authHandler := handlers.NewAuthHandler(authenticator)
	uploadHandler := handlers.NewUploadHandler(uploadStore)
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{getenv("FRONTEND_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Post("/leads", leadHandler.Capture)
	r.Post("/leads/resume", uploadHandler.HandleResume)

	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)
	r.Get("/auth/session", authHandler.Session)

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("Sign in via POST /auth/login\n"))
	})

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth(authenticator))
		r.Get("/leads", adminHandler.ListLeads)
		r.Get("/leads/{id}", adminHandler.GetLead)
		r.Patch("/leads/status", adminHandler.BulkUpdateStatus)
		r.Patch("/leads/{id}/status", adminHandler.UpdateStatus)
		r.Delete("/leads/{id}", adminHandler.DeleteLead)
	})

	port := ":" + getenv("PORT", "8080")
	log.Printf("lead-intake API listening on %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
