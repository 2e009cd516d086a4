package models

type Category struct {
	Base
	Name string `gorm:"unique;not null" json:"name"`
}

type Course struct {
	Base
	UserID      string       `gorm:"index;not null" json:"userId"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	Price       *float64     `json:"price"`
	IsPublished bool         `gorm:"default:false" json:"isPublished"`
	CategoryID  *string      `gorm:"type:uuid" json:"categoryId"`
	Category    *Category    `json:"category,omitempty"`
	Chapters    []Chapter    `gorm:"constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

type Chapter struct {
	Base
	CourseID     string         `gorm:"type:uuid;index;not null" json:"courseId"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description"`
	VideoURL     string         `json:"videoUrl"`
	Position     int            `json:"position"`
	IsPublished  bool           `gorm:"default:false" json:"isPublished"`
	IsFree       bool           `gorm:"default:false" json:"isFree"`
	Video        *Video         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserProgress []UserProgress `gorm:"constraint:OnDelete:CASCADE" json:"userProgress,omitempty"`
}

// Video holds the uploaded blob of a chapter, one per chapter.
type Video struct {
	Base
	ChapterID string `gorm:"type:uuid;uniqueIndex;not null" json:"chapterId"`
	Filename  string `json:"filename"`
	MimeType  string `json:"mimeType"`
	Data      []byte `json:"-"`
}

type Attachment struct {
	Base
	CourseID string `gorm:"type:uuid;index;not null" json:"courseId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     []byte `json:"-"`
}
