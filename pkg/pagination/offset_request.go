package pagination

import (
	"errors"
	"fmt"
)

var ErrPageOutOfRange = errors.New("page out of range")

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate normalizes offset pagination parameters. A page above
// PageMaxNumber is rejected.
func (r *OffsetRequest) Validate() error {
	if r.Page > PageMaxNumber {
		return fmt.Errorf("%w: %d exceeds %d", ErrPageOutOfRange, r.Page, PageMaxNumber)
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	return nil
}

// Offset returns the index of the first item of the page, or total when the
// page starts past the end.
func (r OffsetRequest) Offset(total int) int {
	if r.Page <= 1 || r.Size <= 0 {
		return 0
	}
	if r.Page-1 > total/r.Size {
		return total
	}
	return min((r.Page-1)*r.Size, total)
}
