// internal/app/features/play/types.go
package play

import "github.com/dalemusser/lessonhub/internal/domain/player"

// viewResponse is the body of GET /lessons/{lessonID}/view.
type viewResponse struct {
	LessonID string          `json:"lessonId"`
	View     player.ViewTree `json:"view"`
}

// eventResponse is the body of POST /lessons/{lessonID}/events.
type eventResponse struct {
	LessonID string          `json:"lessonId"`
	Effects  player.Effects  `json:"effects"`
	View     player.ViewTree `json:"view"`
}
