// internal/service/campaign_service.go
package service

import (
    "context"
    "errors"
    "io"

    "github.com/tunewave/campaigns-backend/internal/auth"
    appErrors "github.com/tunewave/campaigns-backend/internal/errors"
    "github.com/tunewave/campaigns-backend/internal/model"
    "github.com/tunewave/campaigns-backend/internal/repository"
    "github.com/tunewave/campaigns-backend/internal/storage"
    "github.com/tunewave/campaigns-backend/internal/validation"
)

// PageSize is the fixed number of rows per listed page.
const PageSize = 10

type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    Store        storage.ObjectStore
}

// Pagination describes the listed page for a pager control.
type Pagination struct {
    Page       int   `json:"page"`
    PageSize   int   `json:"page_size"`
    TotalCount int   `json:"total_count"`
    TotalPages int   `json:"total_pages"`
    Items      []int `json:"items"`
}

func callerIdentity(ctx context.Context) (model.User, error) {
    user, ok := auth.FromContext(ctx)
    if !ok {
        return model.User{}, appErrors.ErrUnauthorized
    }
    return user, nil
}

// GetCampaignByID fetches a campaign regardless of owner. The missing
// ownership check mirrors the list/update/delete asymmetry the product
// ships with today.
func (s *CampaignService) GetCampaignByID(ctx context.Context, id int) (*model.Campaign, error) {
    if _, err := callerIdentity(ctx); err != nil {
        return nil, err
    }

    campaign, err := s.CampaignRepo.GetByID(id)
    if err != nil {
        var notFound *appErrors.ErrCampaignNotFound
        if errors.As(err, &notFound) {
            return nil, err
        }
        return nil, appErrors.NewUpstream("get campaign", err)
    }
    return campaign, nil
}

// GetTotalItems counts every row in the store, not just the caller's.
func (s *CampaignService) GetTotalItems(ctx context.Context) (int, error) {
    if _, err := callerIdentity(ctx); err != nil {
        return 0, err
    }

    total, err := s.CampaignRepo.CountAll()
    if err != nil {
        return 0, appErrors.NewUpstream("count campaigns", err)
    }
    return total, nil
}

// ListCampaigns returns the caller's page of campaigns, newest first.
// page is zero-based; pages past the end come back empty, never as an
// error.
func (s *CampaignService) ListCampaigns(ctx context.Context, page int) ([]model.Campaign, *Pagination, error) {
    user, err := callerIdentity(ctx)
    if err != nil {
        return nil, nil, err
    }

    if page < 0 {
        page = 0
    }

    ptrs, err := s.CampaignRepo.ListByOwner(user.ID, page*PageSize, PageSize)
    if err != nil {
        return nil, nil, appErrors.NewUpstream("list campaigns", err)
    }

    total, err := s.CampaignRepo.CountAll()
    if err != nil {
        return nil, nil, appErrors.NewUpstream("count campaigns", err)
    }

    campaigns := make([]model.Campaign, len(ptrs))
    for i, c := range ptrs {
        campaigns[i] = *c
    }

    totalPages := TotalPages(total, PageSize)
    pagination := &Pagination{
        Page:       page,
        PageSize:   PageSize,
        TotalCount: total,
        TotalPages: totalPages,
        Items:      PageItems(page+1, totalPages),
    }

    return campaigns, pagination, nil
}

// CreateCampaign validates the input and inserts a row owned by the
// caller. Any client-supplied owner is ignored.
func (s *CampaignService) CreateCampaign(ctx context.Context, input validation.CampaignInput) error {
    user, err := callerIdentity(ctx)
    if err != nil {
        return err
    }

    if err := input.Validate(); err != nil {
        return err
    }

    c := &model.Campaign{
        Title:       input.Title,
        Brand:       input.Brand,
        Description: input.Description,
        Budget:      model.NewMoney(input.Budget),
        StartDate:   input.StartDate,
        EndDate:     input.EndDate,
        ImageURL:    input.Image,
        UserID:      user.ID,
    }

    if err := s.CampaignRepo.Create(c); err != nil {
        return appErrors.NewUpstream("create campaign", err)
    }
    return nil
}

// UpdateCampaignByID validates the input and conditionally updates the
// row matching both id and caller. Zero affected rows is a silent no-op:
// callers cannot tell an absent row from one they don't own.
func (s *CampaignService) UpdateCampaignByID(ctx context.Context, input validation.CampaignUpdateInput) error {
    user, err := callerIdentity(ctx)
    if err != nil {
        return err
    }

    if err := input.Validate(); err != nil {
        return err
    }

    c := &model.Campaign{
        ID:          input.ID,
        Title:       input.Title,
        Brand:       input.Brand,
        Description: input.Description,
        Budget:      model.NewMoney(input.Budget),
        StartDate:   input.StartDate,
        EndDate:     input.EndDate,
        ImageURL:    input.Image,
        UserID:      user.ID,
    }

    if _, err := s.CampaignRepo.UpdateOwned(c); err != nil {
        return appErrors.NewUpstream("update campaign", err)
    }
    return nil
}

// DeleteCampaignByID conditionally deletes the row matching both id and
// caller, with the same no-op semantics as update.
func (s *CampaignService) DeleteCampaignByID(ctx context.Context, id int) error {
    user, err := callerIdentity(ctx)
    if err != nil {
        return err
    }

    if _, err := s.CampaignRepo.DeleteOwned(id, user.ID); err != nil {
        return appErrors.NewUpstream("delete campaign", err)
    }
    return nil
}

// CreateCampaignWithImage stores the banner and inserts the row in one
// server-side call, closing the orphaned-upload gap of the split
// upload-then-submit flow. Field validation runs before the upload so a
// bad form never leaves an object behind.
func (s *CampaignService) CreateCampaignWithImage(ctx context.Context, input validation.CampaignInput, file io.Reader, size int64, filename, contentType string) error {
    if _, err := callerIdentity(ctx); err != nil {
        return err
    }

    if err := input.ValidateWithoutImage(); err != nil {
        return err
    }

    url, err := s.Store.Upload(ctx, storage.ObjectKey(filename), file, size, contentType)
    if err != nil {
        return appErrors.NewUpstream("upload banner", err)
    }

    input.Image = url
    return s.CreateCampaign(ctx, input)
}

// UpdateCampaignWithImage is the update counterpart: a replacement
// banner is stored first, then the conditional update runs.
func (s *CampaignService) UpdateCampaignWithImage(ctx context.Context, input validation.CampaignUpdateInput, file io.Reader, size int64, filename, contentType string) error {
    if _, err := callerIdentity(ctx); err != nil {
        return err
    }

    if err := input.ValidateWithoutImage(); err != nil {
        return err
    }

    url, err := s.Store.Upload(ctx, storage.ObjectKey(filename), file, size, contentType)
    if err != nil {
        return appErrors.NewUpstream("upload banner", err)
    }

    input.Image = url
    return s.UpdateCampaignByID(ctx, input)
}
