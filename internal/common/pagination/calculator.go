package pagination

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages using ceiling
// division. A total of 0 still reports 1 page so clients always have a
// valid current page.
//
// Examples:
//   - Total 0, Limit 10 -> 1 page
//   - Total 25, Limit 10 -> 3 pages
//   - Total 30, Limit 10 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
