package services

import "github.com/goodudetheboy/Floowy-backend/internal/core/domain"

// Recommend returns the names of the best candidates. Candidates are expected
// to have been validated by domain.ParseCandidates.
func (o *Orchestrator) Recommend(cands []domain.SongCandidate) []string {
	return domain.Rank(cands)
}
