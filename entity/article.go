package entity

// Article is a help-center article with markup stripped from its body.
type Article struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	Body    string `json:"body"`
}
