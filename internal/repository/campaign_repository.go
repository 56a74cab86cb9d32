package repository

import (
    "database/sql"
    "time"

    appErrors "github.com/tunewave/campaigns-backend/internal/errors"
    "github.com/tunewave/campaigns-backend/internal/model"
)

type CampaignRepositoryInterface interface {
    GetByID(id int) (*model.Campaign, error)
    CountAll() (int, error)
    ListByOwner(userID string, offset, limit int) ([]*model.Campaign, error)
    Create(c *model.Campaign) error
    UpdateOwned(c *model.Campaign) (int64, error)
    DeleteOwned(id int, userID string) (int64, error)
}

type CampaignRepository struct {
    DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
    now := time.Now()
    c.CreatedAt = now
    c.UpdatedAt = now
    query := `
        INSERT INTO campaigns (title, brand, description, budget, start_date, end_date, image_url, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
    return r.DB.QueryRow(query,
        c.Title, c.Brand, c.Description, c.Budget.StringFixed(2),
        c.StartDate, c.EndDate, c.ImageURL, c.UserID, c.CreatedAt, c.UpdatedAt,
    ).Scan(&c.ID)
}

// UpdateOwned updates the row only when both the id and the owner match.
// Returns the affected-row count: zero means absent or not owned, and the
// two cases are indistinguishable on purpose.
func (r *CampaignRepository) UpdateOwned(c *model.Campaign) (int64, error) {
    query := `
        UPDATE campaigns
        SET title=$1, brand=$2, description=$3, budget=$4, start_date=$5, end_date=$6, image_url=$7, updated_at=NOW()
        WHERE id=$8 AND user_id=$9
    `
    res, err := r.DB.Exec(query,
        c.Title, c.Brand, c.Description, c.Budget.StringFixed(2),
        c.StartDate, c.EndDate, c.ImageURL, c.ID, c.UserID,
    )
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}

// DeleteOwned deletes the row only when both the id and the owner match.
func (r *CampaignRepository) DeleteOwned(id int, userID string) (int64, error) {
    res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1 AND user_id=$2`, id, userID)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
    query := `
        SELECT id, title, brand, description, budget, start_date, end_date, image_url, user_id, created_at, updated_at
        FROM campaigns WHERE id=$1
    `
    var c model.Campaign
    err := r.DB.QueryRow(query, id).Scan(
        &c.ID, &c.Title, &c.Brand, &c.Description, &c.Budget,
        &c.StartDate, &c.EndDate, &c.ImageURL, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }
    return &c, nil
}

func (r *CampaignRepository) CountAll() (int, error) {
    var total int
    if err := r.DB.QueryRow(`SELECT COUNT(*) FROM campaigns`).Scan(&total); err != nil {
        return 0, err
    }
    return total, nil
}

func (r *CampaignRepository) ListByOwner(userID string, offset, limit int) ([]*model.Campaign, error) {
    campaigns := []*model.Campaign{}
    query := `
        SELECT id, title, brand, description, budget, start_date, end_date, image_url, user_id, created_at, updated_at
        FROM campaigns
        WHERE user_id=$1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
    rows, err := r.DB.Query(query, userID, limit, offset)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    for rows.Next() {
        c := &model.Campaign{}
        if err := rows.Scan(
            &c.ID, &c.Title, &c.Brand, &c.Description, &c.Budget,
            &c.StartDate, &c.EndDate, &c.ImageURL, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
        ); err != nil {
            return nil, err
        }
        campaigns = append(campaigns, c)
    }

    return campaigns, rows.Err()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
