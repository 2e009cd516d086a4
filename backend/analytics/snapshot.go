package analytics

import "courtside/backend/models"

// FromCourses converts ORM rows with preloaded chapters and progress into
// snapshots. Progress rows without a user are dropped.
func FromCourses(courses []models.Course) []CourseSnapshot {
	out := make([]CourseSnapshot, 0, len(courses))
	for _, c := range courses {
		cs := CourseSnapshot{ID: c.ID, Title: c.Title, Chapters: make([]ChapterSnapshot, 0, len(c.Chapters))}
		for _, ch := range c.Chapters {
			chs := ChapterSnapshot{ID: ch.ID, UserProgress: make([]ProgressRecord, 0, len(ch.UserProgress))}
			for _, p := range ch.UserProgress {
				if p.UserID == "" {
					continue
				}
				chs.UserProgress = append(chs.UserProgress, ProgressRecord{UserID: p.UserID, IsCompleted: p.IsCompleted})
			}
			cs.Chapters = append(cs.Chapters, chs)
		}
		out = append(out, cs)
	}
	return out
}
