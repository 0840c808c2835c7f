package model

import "time"

// Form is a persistent template created by an author. Question order is the
// presentation order shown to fillers.
type Form struct {
	ID             string     `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string     `json:"title" bson:"title"`
	HeaderImageURL string     `json:"headerImageUrl,omitempty" bson:"headerImageUrl,omitempty"`
	Questions      []Question `json:"questions" bson:"questions"`
	CreatedBy      string     `json:"createdBy" bson:"createdBy"`
	Published      bool       `json:"published" bson:"published"`
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// QuestionByID returns the question with the given id and its index, or
// (-1, false) when no question carries that id.
func (f *Form) QuestionByID(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
