// Package analytics derives per-course engagement and completion counts
// from a teacher's course snapshot.
package analytics

// GroupBy selects the key courses are merged under.
type GroupBy string

const (
	// GroupByTitle merges courses that share a display title. Later courses
	// overwrite earlier ones under the same title.
	GroupByTitle GroupBy = "title"
	// GroupByID keeps every course separate.
	GroupByID GroupBy = "id"
)

// ParseGroupBy maps a config value to a GroupBy, defaulting to GroupByTitle.
func ParseGroupBy(s string) GroupBy {
	if GroupBy(s) == GroupByID {
		return GroupByID
	}
	return GroupByTitle
}

type ProgressRecord struct {
	UserID      string
	IsCompleted bool
}

type ChapterSnapshot struct {
	ID           string
	UserProgress []ProgressRecord
}

type CourseSnapshot struct {
	ID       string
	Title    string
	Chapters []ChapterSnapshot
}

// CourseStat is one bar of the teacher analytics chart.
type CourseStat struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type Result struct {
	Data           []CourseStat `json:"data"`
	TotalUsers     int          `json:"totalUsers"`
	TotalCompleted int          `json:"totalCompleted"`
}

// Empty is the zero result, also served when the datastore is unavailable.
func Empty() Result {
	return Result{Data: []CourseStat{}}
}

// Aggregate groups courses by title.
func Aggregate(courses []CourseSnapshot) Result {
	return AggregateBy(courses, GroupByTitle)
}

// AggregateBy counts, per course, the distinct users with any progress record
// and the distinct users with at least one completed chapter, then sums both
// across the emitted stats. A user enrolled in two courses counts twice in the
// totals. Stats keep the order in which their key was first seen.
func AggregateBy(courses []CourseSnapshot, groupBy GroupBy) Result {
	res := Empty()
	index := make(map[string]int, len(courses))

	for _, course := range courses {
		engaged := make(map[string]struct{})
		completed := make(map[string]struct{})

		for _, chapter := range course.Chapters {
			for _, p := range chapter.UserProgress {
				engaged[p.UserID] = struct{}{}
				if p.IsCompleted {
					completed[p.UserID] = struct{}{}
				}
			}
		}

		key := course.Title
		if groupBy == GroupByID {
			key = course.ID
		}

		stat := CourseStat{Name: course.Title, Total: len(engaged), Completed: len(completed)}
		if i, ok := index[key]; ok {
			res.Data[i] = stat
			continue
		}
		index[key] = len(res.Data)
		res.Data = append(res.Data, stat)
	}

	for _, s := range res.Data {
		res.TotalUsers += s.Total
		res.TotalCompleted += s.Completed
	}
	return res
}
