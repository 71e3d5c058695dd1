package review

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")

	ErrFailedCreateReview = errors.New("failed to create review")
	ErrFailedListReviews  = errors.New("failed to list reviews")
)
