// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// Error codes surfaced to API callers.
const (
    CodeUnauthorized     = "UNAUTHORIZED"
    CodeNotFound         = "NOT_FOUND"
    CodeValidationFailed = "VALIDATION_FAILED"
    CodeUpstreamFailure  = "UPSTREAM_FAILURE"
)

// ErrUnauthorized means no identity could be resolved for the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
    CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id int) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

// ErrUpstream wraps a failed store or object-store call.
type ErrUpstream struct {
    Op  string
    Err error
}

func (e *ErrUpstream) Error() string {
    return fmt.Sprintf("%s: upstream failure: %v", e.Op, e.Err)
}

func (e *ErrUpstream) Unwrap() error {
    return e.Err
}

func NewUpstream(op string, err error) error {
    return &ErrUpstream{Op: op, Err: err}
}
