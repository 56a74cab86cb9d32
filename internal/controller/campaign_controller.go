// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    "github.com/tunewave/campaigns-backend/internal/auth"
    appErrors "github.com/tunewave/campaigns-backend/internal/errors"
    "github.com/tunewave/campaigns-backend/internal/service"
    "github.com/tunewave/campaigns-backend/internal/validation"
)

type CampaignController struct {
    CampaignService *service.CampaignService
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
    var input validation.CampaignInput
    if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    if err := c.CampaignService.CreateCampaign(r.Context(), input); err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, map[string]any{"success": true})
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
    // page is zero-based; anything unparsable falls back to the first page.
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))

    campaigns, pagination, err := c.CampaignService.ListCampaigns(r.Context(), page)
    if err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{
        "data":       campaigns,
        "pagination": pagination,
    })
}

func (c *CampaignController) GetCampaignByID(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.GetCampaignByID(r.Context(), id)
    if err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) GetTotalItems(w http.ResponseWriter, r *http.Request) {
    total, err := c.CampaignService.GetTotalItems(r.Context())
    if err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]int{"total_items": total})
}

func (c *CampaignController) UpdateCampaignByID(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    var input validation.CampaignUpdateInput
    if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    input.ID = id

    if err := c.CampaignService.UpdateCampaignByID(r.Context(), input); err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (c *CampaignController) DeleteCampaignByID(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    if err := c.CampaignService.DeleteCampaignByID(r.Context(), id); err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GetCurrentUser returns the identity the auth middleware resolved.
func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
    user, ok := auth.FromContext(r.Context())
    if !ok {
        WriteError(w, appErrors.ErrUnauthorized)
        return
    }
    writeJSON(w, http.StatusOK, user)
}

// HealthCheck is the only public endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WriteError maps the error taxonomy onto HTTP statuses with structured
// JSON bodies.
func WriteError(w http.ResponseWriter, err error) {
    var validationErrs *validation.Errors
    if errors.As(err, &validationErrs) {
        writeJSON(w, http.StatusBadRequest, map[string]any{
            "error":  appErrors.CodeValidationFailed,
            "fields": validationErrs.Fields,
        })
        return
    }

    var notFound *appErrors.ErrCampaignNotFound
    if errors.As(err, &notFound) {
        writeJSON(w, http.StatusNotFound, map[string]any{
            "error":   appErrors.CodeNotFound,
            "message": notFound.Error(),
        })
        return
    }

    if errors.Is(err, appErrors.ErrUnauthorized) {
        writeJSON(w, http.StatusUnauthorized, map[string]any{
            "error": appErrors.CodeUnauthorized,
        })
        return
    }

    var upstream *appErrors.ErrUpstream
    if errors.As(err, &upstream) {
        writeJSON(w, http.StatusBadGateway, map[string]any{
            "error":   appErrors.CodeUpstreamFailure,
            "message": upstream.Op,
        })
        return
    }

    http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(body)
}
