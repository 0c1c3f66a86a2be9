package domain

// RoadmapStep is a single entry in a roadmap level. Steps are an ordered
// presentation sequence; edits must preserve ordering.
type RoadmapStep struct {
	Title       string `json:"title"`
	ArticleLink string `json:"articleLink"`
}

// RoadmapLevels groups the ordered step lists by difficulty.
type RoadmapLevels struct {
	Beginner     []RoadmapStep `json:"beginner"`
	Intermediate []RoadmapStep `json:"intermediate"`
	Advanced     []RoadmapStep `json:"advanced"`
}

// Roadmap is an admin-curated learning path.
type Roadmap struct {
	RoadmapID   string        `json:"roadmapID"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Levels      RoadmapLevels `json:"levels"`
	CreatedBy   string        `json:"createdBy"`
	AuditFields
}
