package dto

import "github.com/finlearnhq/finlearn_backend/internal/core/domain"

// RoadmapStepRequest is a single ordered step inside a level list.
type RoadmapStepRequest struct {
	Title       string `json:"title" binding:"required"`
	ArticleLink string `json:"articleLink" binding:"required"`
}

// SaveRoadmapRequest carries the fields an admin may set on a roadmap.
// Level lists replace the stored ones wholesale so ordering is preserved
// exactly as submitted.
type SaveRoadmapRequest struct {
	Title        string               `json:"title" binding:"required"`
	Category     string               `json:"category" binding:"required"`
	Description  string               `json:"description"`
	Beginner     []RoadmapStepRequest `json:"beginner"`
	Intermediate []RoadmapStepRequest `json:"intermediate"`
	Advanced     []RoadmapStepRequest `json:"advanced"`
}

// Levels assembles the ordered domain level lists from the request.
func (r SaveRoadmapRequest) Levels() domain.RoadmapLevels {
	return domain.RoadmapLevels{
		Beginner:     toSteps(r.Beginner),
		Intermediate: toSteps(r.Intermediate),
		Advanced:     toSteps(r.Advanced),
	}
}

func toSteps(reqs []RoadmapStepRequest) []domain.RoadmapStep {
	steps := make([]domain.RoadmapStep, len(reqs))
	for i, s := range reqs {
		steps[i] = domain.RoadmapStep{Title: s.Title, ArticleLink: s.ArticleLink}
	}
	return steps
}

// RoadmapResponse is the outward roadmap shape.
type RoadmapResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
	Levels      domain.RoadmapLevels `json:"levels"`
}

// ToRoadmapResponse converts a domain roadmap.
func ToRoadmapResponse(roadmap *domain.Roadmap) RoadmapResponse {
	return RoadmapResponse{
		ID:          roadmap.RoadmapID,
		Title:       roadmap.Title,
		Category:    roadmap.Category,
		Description: roadmap.Description,
		Levels:      roadmap.Levels,
	}
}
