// internal/service/pagination.go
package service

import "sort"

// Ellipsis marks a gap in a pager item list.
const Ellipsis = -1

// TotalPages returns ceil(totalItems / pageSize).
func TotalPages(totalItems, pageSize int) int {
    if totalItems <= 0 || pageSize <= 0 {
        return 0
    }
    return (totalItems + pageSize - 1) / pageSize
}

// PageItems builds the page numbers a pager control shows around
// currentPage, with Ellipsis markers for the collapsed ranges.
// currentPage is one-based.
func PageItems(currentPage, totalPages int) []int {
    if totalPages <= 0 {
        return []int{}
    }

    // Small page counts show every page.
    if totalPages <= 5 {
        items := make([]int, 0, totalPages)
        for i := 1; i <= totalPages; i++ {
            items = append(items, i)
        }
        return items
    }

    include := map[int]bool{1: true}

    if currentPage <= 3 {
        include[2] = true
        include[3] = true
    } else {
        include[currentPage-1] = true
    }

    if currentPage > 3 && currentPage < totalPages-1 {
        include[currentPage] = true
    }

    if currentPage >= totalPages-2 {
        // At one of the last 3 pages: show the final three.
        for p := totalPages - 2; p <= totalPages; p++ {
            if p > 1 {
                include[p] = true
            }
        }
    } else {
        include[currentPage+1] = true
        include[totalPages] = true
    }

    pages := make([]int, 0, len(include))
    for p := range include {
        pages = append(pages, p)
    }
    sort.Ints(pages)

    // A gap wider than 1 between neighbours collapses to one ellipsis.
    items := make([]int, 0, len(pages)*2)
    for i, p := range pages {
        if i > 0 && p-pages[i-1] > 1 {
            items = append(items, Ellipsis)
        }
        items = append(items, p)
    }
    return items
}
