package models

// Post is a published entry. Author is a username snapshot taken at
// creation time; post updates never touch it.
type Post struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// PostPage is one pagination window plus the total count of the full
// filtered set (ignoring the window).
type PostPage struct {
	Items []Post `json:"items"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total int    `json:"total"`
}
