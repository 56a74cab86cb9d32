// internal/validation/campaign.go
package validation

import (
    "fmt"
    "net/url"
    "strings"
    "time"

    "github.com/shopspring/decimal"
)

// FieldError is one violated constraint. Field is empty for cross-field
// violations, which are reported against the whole input.
type FieldError struct {
    Field   string `json:"field,omitempty"`
    Message string `json:"message"`
}

// Errors collects every violated constraint of one input. Validation is
// all-or-nothing: a non-nil Errors blocks the operation before it touches
// the store.
type Errors struct {
    Fields []FieldError `json:"fields"`
}

func (e *Errors) Error() string {
    msgs := make([]string, len(e.Fields))
    for i, f := range e.Fields {
        if f.Field == "" {
            msgs[i] = f.Message
            continue
        }
        msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
    }
    return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Errors) add(field, message string) {
    e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Errors) orNil() error {
    if len(e.Fields) == 0 {
        return nil
    }
    return e
}

var minBudget = decimal.NewFromInt(1)

// CampaignInput is the creation shape. Image is an already-resolved
// absolute URL; the binary upload happens before (or around) this input.
type CampaignInput struct {
    Brand       string          `json:"brand"`
    Title       string          `json:"title"`
    Description string          `json:"description"`
    Budget      decimal.Decimal `json:"budget"`
    StartDate   time.Time       `json:"start_date"`
    EndDate     time.Time       `json:"end_date"`
    Image       string          `json:"image"`
}

// CampaignUpdateInput is the update shape: the row id plus the same
// fields. Image may be the existing URL or a freshly uploaded one, the
// service does not care which.
type CampaignUpdateInput struct {
    ID int `json:"id"`
    CampaignInput
}

// Validate checks every constraint and reports all violations at once.
func (in *CampaignInput) Validate() error {
    var errs Errors
    in.check(&errs, true)
    return errs.orNil()
}

// ValidateWithoutImage checks everything but the image URL. Used by the
// multipart path, where the URL only exists after the server-side upload.
func (in *CampaignInput) ValidateWithoutImage() error {
    var errs Errors
    in.check(&errs, false)
    return errs.orNil()
}

// Validate additionally requires a positive row id.
func (in *CampaignUpdateInput) Validate() error {
    var errs Errors
    if in.ID < 1 {
        errs.add("id", "must be at least 1")
    }
    in.check(&errs, true)
    return errs.orNil()
}

// ValidateWithoutImage mirrors the create variant for the update shape.
func (in *CampaignUpdateInput) ValidateWithoutImage() error {
    var errs Errors
    if in.ID < 1 {
        errs.add("id", "must be at least 1")
    }
    in.check(&errs, false)
    return errs.orNil()
}

func (in *CampaignInput) check(errs *Errors, withImage bool) {
    if strings.TrimSpace(in.Brand) == "" {
        errs.add("brand", "must not be empty")
    }
    if strings.TrimSpace(in.Title) == "" {
        errs.add("title", "must not be empty")
    }
    if strings.TrimSpace(in.Description) == "" {
        errs.add("description", "must not be empty")
    }
    if in.Budget.LessThan(minBudget) {
        errs.add("budget", "must be at least 1")
    }
    if in.StartDate.IsZero() {
        errs.add("start_date", "is required")
    }
    if in.EndDate.IsZero() {
        errs.add("end_date", "is required")
    }
    if withImage && !isAbsoluteURL(in.Image) {
        errs.add("image", "must be a valid URL")
    }
    // Cross-field check, reported against the whole input.
    if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.StartDate.After(in.EndDate) {
        errs.add("", "start date cannot be after end date")
    }
}

func isAbsoluteURL(s string) bool {
    if s == "" {
        return false
    }
    u, err := url.Parse(s)
    if err != nil {
        return false
    }
    return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
