package models

// BlogModel is a saved generated article with its SEO metadata.
// Records are immutable after creation; the only mutation is deletion.
type BlogModel struct {
	Base
	// UserID stays null until per-user filtering is wired up.
	UserID          *string `json:"user_id"          gorm:"index"`
	Title           string  `json:"title"            gorm:"not null"`
	Slug            string  `json:"slug"             gorm:"index;not null"`
	Content         string  `json:"content"          gorm:"type:longtext;not null"`
	MetaDescription *string `json:"meta_description"`
	Topic           *string `json:"topic"`
	PrimaryKeyword  *string `json:"primary_keyword"`
	Tone            *string `json:"tone"`
	ArticleType     *string `json:"article_type"`
	WordCount       *int    `json:"word_count"`
}

func (BlogModel) TableName() string { return "blogs" }
