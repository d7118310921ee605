package trivia

// Paginate slices the half-open window [(page-1)*pageSize, page*pageSize)
// out of items. Pages are 1-indexed; a window starting beyond the end of
// items yields an empty slice rather than an error.
func Paginate(items []Question, page, pageSize int) []Question {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
