// internal/handler/campaign_handler.go
package handler

import (
    "errors"
    "mime/multipart"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/shopspring/decimal"

    "github.com/tunewave/campaigns-backend/internal/controller"
    "github.com/tunewave/campaigns-backend/internal/service"
    "github.com/tunewave/campaigns-backend/internal/validation"
)

// Banner upload limits, matching the browser form.
const MaxImageSize = 5 << 20 // 5MB

var allowedMimeTypes = map[string]bool{
    "image/png":  true,
    "image/jpeg": true,
    "image/jpg":  true,
    "image/webp": true,
}

// CampaignHandler carries the image-bearing variants of create and
// update: the banner is stored and the row persisted in one request, so
// a failure between the two steps never strands an uploaded object on
// the client's behalf.
type CampaignHandler struct {
    Service *service.CampaignService
}

// CreateCampaignWithImage handles a multipart form holding the campaign
// fields plus the banner file.
func (h *CampaignHandler) CreateCampaignWithImage(w http.ResponseWriter, r *http.Request) {
    input, file, header, ok := parseCampaignForm(w, r, true)
    if !ok {
        return
    }
    defer file.Close()

    err := h.Service.CreateCampaignWithImage(
        r.Context(), input, file, header.Size, header.Filename, header.Header.Get("Content-Type"),
    )
    if err != nil {
        controller.WriteError(w, err)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    w.Write([]byte(`{"success":true}`))
}

// UpdateCampaignWithImage handles the update form. The banner file is
// optional: without one the existing image URL from the form is kept.
func (h *CampaignHandler) UpdateCampaignWithImage(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    input, file, header, ok := parseCampaignForm(w, r, false)
    if !ok {
        return
    }

    update := validation.CampaignUpdateInput{ID: id, CampaignInput: input}

    if file != nil {
        defer file.Close()
        err = h.Service.UpdateCampaignWithImage(
            r.Context(), update, file, header.Size, header.Filename, header.Header.Get("Content-Type"),
        )
    } else {
        // No new banner: the form's image field is the existing URL.
        update.Image = r.FormValue("image")
        err = h.Service.UpdateCampaignByID(r.Context(), update)
    }
    if err != nil {
        controller.WriteError(w, err)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"success":true}`))
}

// parseCampaignForm reads the multipart fields and, when required (or
// present), the banner file. It writes the HTTP error itself and returns
// ok=false when the request is malformed.
func parseCampaignForm(w http.ResponseWriter, r *http.Request, fileRequired bool) (validation.CampaignInput, multipart.File, *multipart.FileHeader, bool) {
    var input validation.CampaignInput

    if err := r.ParseMultipartForm(MaxImageSize + 1<<20); err != nil {
        http.Error(w, "invalid multipart body: "+err.Error(), http.StatusBadRequest)
        return input, nil, nil, false
    }

    input.Brand = r.FormValue("brand")
    input.Title = r.FormValue("title")
    input.Description = r.FormValue("description")

    if v := r.FormValue("budget"); v != "" {
        budget, err := decimal.NewFromString(v)
        if err != nil {
            http.Error(w, "invalid budget", http.StatusBadRequest)
            return input, nil, nil, false
        }
        input.Budget = budget
    }

    var err error
    if input.StartDate, err = parseDate(r.FormValue("start_date")); err != nil {
        http.Error(w, "invalid start_date", http.StatusBadRequest)
        return input, nil, nil, false
    }
    if input.EndDate, err = parseDate(r.FormValue("end_date")); err != nil {
        http.Error(w, "invalid end_date", http.StatusBadRequest)
        return input, nil, nil, false
    }

    file, header, err := r.FormFile("image")
    if err != nil {
        if errors.Is(err, http.ErrMissingFile) && !fileRequired {
            return input, nil, nil, true
        }
        http.Error(w, "image file is required", http.StatusBadRequest)
        return input, nil, nil, false
    }

    if header.Size > MaxImageSize {
        file.Close()
        http.Error(w, "image must be less than 5MB", http.StatusBadRequest)
        return input, nil, nil, false
    }
    if !allowedMimeTypes[header.Header.Get("Content-Type")] {
        file.Close()
        http.Error(w, "image must be a valid image", http.StatusBadRequest)
        return input, nil, nil, false
    }

    return input, file, header, true
}

func parseDate(v string) (time.Time, error) {
    if v == "" {
        return time.Time{}, nil
    }
    if t, err := time.Parse(time.RFC3339, v); err == nil {
        return t, nil
    }
    return time.Parse("2006-01-02", v)
}
