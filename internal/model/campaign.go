// internal/model/campaign.go
package model

import (
    "strconv"
    "time"

    "github.com/shopspring/decimal"
)

// Money is an exact-precision amount rendered with two decimal places,
// matching the NUMERIC(12,2) column. It inherits scanning, arithmetic
// and JSON decoding from the embedded decimal.
type Money struct {
    decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
    return Money{d.Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
    return []byte(strconv.Quote(m.StringFixed(2))), nil
}

type Campaign struct {
    ID          int             `db:"id" json:"id"`
    Title       string          `db:"title" json:"title"`
    Brand       string          `db:"brand" json:"brand"`
    Description string          `db:"description" json:"description"`
    Budget      Money           `db:"budget" json:"budget"`
    StartDate   time.Time       `db:"start_date" json:"start_date"`
    EndDate     time.Time       `db:"end_date" json:"end_date"`
    ImageURL    string          `db:"image_url" json:"image_url"`
    UserID      string          `db:"user_id" json:"user_id"`
    CreatedAt   time.Time       `db:"created_at" json:"created_at"`
    UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
