package models

// UserProgress is the completion state of one user for one chapter.
type UserProgress struct {
	Base
	UserID      string `gorm:"uniqueIndex:idx_user_chapter;not null" json:"userId"`
	ChapterID   string `gorm:"type:uuid;uniqueIndex:idx_user_chapter;not null" json:"chapterId"`
	IsCompleted bool   `gorm:"default:false" json:"isCompleted"`
}
