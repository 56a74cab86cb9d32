// internal/validation/diff.go
package validation

import "sort"

// ChangedFields compares two form snapshots and returns the keys whose
// values differ, sorted. A pure value diff: no subscriptions, no shared
// form state.
func ChangedFields(original, current CampaignInput) []string {
    changed := []string{}

    if original.Brand != current.Brand {
        changed = append(changed, "brand")
    }
    if original.Title != current.Title {
        changed = append(changed, "title")
    }
    if original.Description != current.Description {
        changed = append(changed, "description")
    }
    if !original.Budget.Equal(current.Budget) {
        changed = append(changed, "budget")
    }
    if !original.StartDate.Equal(current.StartDate) {
        changed = append(changed, "start_date")
    }
    if !original.EndDate.Equal(current.EndDate) {
        changed = append(changed, "end_date")
    }
    if original.Image != current.Image {
        changed = append(changed, "image")
    }

    sort.Strings(changed)
    return changed
}
