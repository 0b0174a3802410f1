package pagination

// Info describes one page of an in-memory collection.
type Info struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasMore bool `json:"has_more"`
}

// Paginate returns the items of the requested page. A page past the end is
// empty, never nil, however large its number.
func Paginate[T any](items []T, req OffsetRequest) ([]T, Info) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Size <= 0 {
		req.Size = PageDefaultSize
	}
	req.Size = min(req.Size, PageMaxSize)

	total := len(items)
	start := req.Offset(total)
	end := start + min(req.Size, total-start)

	out := make([]T, end-start)
	copy(out, items[start:end])

	return out, Info{
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
		HasMore: end < total,
	}
}
