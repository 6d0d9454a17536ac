package usecase

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// NormalizePage converts 1-based page/limit into an offset/limit pair with
// sane bounds.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return (page - 1) * limit, limit
}
