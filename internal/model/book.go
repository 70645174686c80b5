package model

type ReadingStatus string

const (
	StatusRead     ReadingStatus = "read"
	StatusReading  ReadingStatus = "reading"
	StatusWishlist ReadingStatus = "wishlist"
)

type Book struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	Status        ReadingStatus `json:"status"`
	OpenLibraryID string        `json:"open_library_id,omitempty"`
	PageProgress  int           `json:"page_progress"`
	TotalPages    int           `json:"total_pages"`
	// Rating is only meaningful when Status is read.
	Rating *int `json:"rating,omitempty"`
}

// ProgressValid reports whether 0 <= page_progress <= total_pages holds.
func (b *Book) ProgressValid() bool {
	return b.PageProgress >= 0 && b.PageProgress <= b.TotalPages
}

type CreateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PageProgress  int    `json:"page_progress"`
	TotalPages    int    `json:"total_pages"`
	OpenLibraryID string `json:"open_library_id"`
}

type UpdateRatingRequest struct {
	Rating int `json:"rating"`
}

type UpdateProgressRequest struct {
	PageProgress int `json:"page_progress"`
}
