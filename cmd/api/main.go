package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/alexandria-crm/internal/config"
	"github.com/xavierca1/alexandria-crm/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/alexandria-crm/internal/infra/http/middleware"
	"github.com/xavierca1/alexandria-crm/internal/infra/integration/gsheets"
	"github.com/xavierca1/alexandria-crm/internal/infra/mail"
	"github.com/xavierca1/alexandria-crm/internal/infra/sheetstore"
	"github.com/xavierca1/alexandria-crm/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	credentials, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		log.Fatal("lendo credenciais da service account: ", err)
	}

	// 1. Backend de planilha
	sheet, err := gsheets.NewClient(ctx, cfg.SpreadsheetID, credentials)
	if err != nil {
		log.Fatal(err)
	}
	if err := sheet.EnsureWorksheets(ctx); err != nil {
		log.Fatal(err)
	}

	// 2. Repositórios
	contactRepo := sheetstore.NewContactRepository(sheet)
	noteRepo := sheetstore.NewNoteRepository(sheet)
	emailLogRepo := sheetstore.NewEmailLogRepository(sheet)

	// 3. Transporte de email
	accounts := make(map[string]mail.SenderAccount, len(cfg.Senders))
	for name, acc := range cfg.Senders {
		accounts[name] = mail.SenderAccount{Address: acc.Address, Password: acc.Password}
	}
	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, accounts)

	// 4. UseCases
	listUC := usecase.NewListContactsUseCase(contactRepo, noteRepo, emailLogRepo)
	createUC := usecase.NewCreateContactUseCase(contactRepo)
	updateUC := usecase.NewUpdateContactUseCase(contactRepo)
	addNoteUC := usecase.NewAddNoteUseCase(contactRepo, noteRepo)
	listNotesUC := usecase.NewListNotesUseCase(noteRepo)
	sendEmailUC := usecase.NewSendEmailUseCase(contactRepo, emailLogRepo, mailSender)
	emailLogUC := usecase.NewListEmailLogUseCase(emailLogRepo)
	pipelineUC := usecase.NewPipelineUseCase(contactRepo)
	exportUC := usecase.NewExportContactsUseCase(contactRepo)

	// 5. Handlers
	contactHandler := handlers.NewContactHandler(listUC, createUC, updateUC)
	noteHandler := handlers.NewNoteHandler(addNoteUC, listNotesUC)
	emailHandler := handlers.NewEmailHandler(sendEmailUC, emailLogUC)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	healthHandler := handlers.NewHealthHandler(cfg)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/contacts", contactHandler.HandleList)
	r.Post("/contacts", contactHandler.HandleCreate)
	r.Get("/contacts/export", exportHandler.Handle)
	r.Put("/contacts/{contactId}", contactHandler.HandleUpdate)
	r.Get("/contacts/{contactId}/notes", noteHandler.HandleList)
	r.Post("/contacts/{contactId}/notes", noteHandler.HandleCreate)
	r.Post("/contacts/{contactId}/email", emailHandler.HandleSend)
	r.Get("/contacts/{contactId}/emails", emailHandler.HandleHistory)
	r.Get("/emails", emailHandler.HandleLog)
	r.Get("/pipeline", pipelineHandler.Handle)

	addr := ":" + cfg.ServerPort
	log.Printf("🔥 Alexandria CRM rodando na porta %s", addr)
	http.ListenAndServe(addr, r)
}
