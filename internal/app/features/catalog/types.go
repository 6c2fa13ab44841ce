// internal/app/features/catalog/types.go
package catalog

// coursesResponse is the body of GET /courses.
type coursesResponse struct {
	Courses []courseView `json:"courses"`
}

// modulesResponse is the body of GET /courses/{courseID}/modules.
type modulesResponse struct {
	CourseID string       `json:"courseId"`
	Modules  []moduleView `json:"modules"`
}

// neighborsResponse is the body of GET /lessons/{lessonID}/neighbors.
type neighborsResponse struct {
	LessonID string      `json:"lessonId"`
	Prev     *lessonView `json:"prev"`
	Next     *lessonView `json:"next"`
}

type courseView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Free        bool         `json:"free"`
	Modules     []moduleView `json:"modules"`
}

type moduleView struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Lessons []lessonView `json:"lessons"`
}

type lessonView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Unlocked  bool   `json:"unlocked"`
	Lock      string `json:"lock,omitempty"`
	ReleaseAt string `json:"releaseAt,omitempty"`
}
