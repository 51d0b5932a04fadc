package usecase

import "portfolio-backend/pkg/apperror"

const (
	defaultBlogLimit    = 20
	defaultTagLimit     = 10
	defaultContactLimit = 50
)

// normalizePage applies the default limit and the optional cap (maxLimit 0 = uncapped).
func normalizePage(limit, skip, defaultLimit, maxLimit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, apperror.Validation("skip must not be negative")
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, skip, nil
}
