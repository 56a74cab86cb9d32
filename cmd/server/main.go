// cmd/server/main.go
package main

import (
    "log"
    "net/http"
    "os"

    "github.com/go-chi/chi/v5"
    "github.com/joho/godotenv"

    "github.com/tunewave/campaigns-backend/internal/auth"
    "github.com/tunewave/campaigns-backend/internal/controller"
    "github.com/tunewave/campaigns-backend/internal/db"
    "github.com/tunewave/campaigns-backend/internal/handler"
    "github.com/tunewave/campaigns-backend/internal/repository"
    "github.com/tunewave/campaigns-backend/internal/service"
    "github.com/tunewave/campaigns-backend/internal/storage"
)

func main() {
    // Load .env
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    secret := os.Getenv("JWT_SECRET")
    if secret == "" {
        log.Fatal("JWT_SECRET is not set in the environment")
    }
    verifier := &auth.TokenVerifier{Secret: []byte(secret)}

    // Init DB
    db.Init()

    store, err := storage.NewMinioStore()
    if err != nil {
        log.Fatalf("failed to init object store: %v", err)
    }

    campaignRepo := &repository.CampaignRepository{DB: db.DB}

    campaignService := &service.CampaignService{
        CampaignRepo: campaignRepo,
        Store:        store,
    }

    campaignController := &controller.CampaignController{
        CampaignService: campaignService,
    }

    campaignHandler := &handler.CampaignHandler{
        Service: campaignService,
    }

    r := chi.NewRouter()

    r.Get("/healthz", controller.HealthCheck)

    // Everything below requires a resolved identity.
    r.Group(func(r chi.Router) {
        r.Use(auth.Middleware(verifier))

        r.Get("/me", controller.GetCurrentUser)

        r.Get("/campaigns", campaignController.ListCampaigns)
        r.Get("/campaigns/total", campaignController.GetTotalItems)
        r.Get("/campaigns/{id}", campaignController.GetCampaignByID)
        r.Post("/campaigns", campaignController.CreateCampaign)
        r.Put("/campaigns/{id}", campaignController.UpdateCampaignByID)
        r.Delete("/campaigns/{id}", campaignController.DeleteCampaignByID)

        // Multipart variants: banner upload and row write in one call.
        r.Post("/campaigns/upload", campaignHandler.CreateCampaignWithImage)
        r.Put("/campaigns/{id}/upload", campaignHandler.UpdateCampaignWithImage)
    })

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    log.Println("🚀 Server running on :" + port)
    log.Fatal(http.ListenAndServe(":"+port, r))
}
