package content

// CreateBlogDTO is the payload for saving a generated article. Optional
// metadata fields are pointers so absent and empty are distinguishable.
type CreateBlogDTO struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Content         string  `json:"content"`
	MetaDescription *string `json:"meta_description"`
	Topic           *string `json:"topic"`
	PrimaryKeyword  *string `json:"primary_keyword"`
	Tone            *string `json:"tone"`
	ArticleType     *string `json:"article_type"`
	WordCount       *int    `json:"word_count"`
}
