package types

import "time"

// Option is one answer choice of a question.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is a prompt with its ordered options.
type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// SpecializationRef is the populated specialization embedded in a question set.
type SpecializationRef struct {
	ID     string               `json:"_id"`
	Name   string               `json:"name"`
	Status SpecializationStatus `json:"status,omitempty"`
	Skills []string             `json:"skills,omitempty"`
}

// QuestionSet groups questions for one or more specializations.
type QuestionSet struct {
	ID                string              `json:"_id"`
	Name              string              `json:"name"`
	SpecializationIDs []SpecializationRef `json:"specializationIds"`
	Questions         []Question          `json:"questions"`
	TotalQuestions    int                 `json:"totalQuestions"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// QuestionCount prefers the server's denormalised count and falls back to
// the length of the embedded question list.
func (q QuestionSet) QuestionCount() int {
	if q.TotalQuestions > 0 {
		return q.TotalQuestions
	}
	return len(q.Questions)
}

// QuestionSetPayload is the body of create and update calls. Specializations
// are referenced by id only.
type QuestionSetPayload struct {
	Name              string     `json:"name,omitempty"`
	SpecializationIDs []string   `json:"specializationIds"`
	Questions         []Question `json:"questions"`
}
