package contentsync

import "podcastsite/internal/models"

func Updated(file models.CandidateFile, episode *models.Episode) models.FileResult {
	return models.FileResult{
		File:      file,
		Outcome:   models.SyncUpdated,
		EpisodeID: episode.ID,
		Slug:      episode.Slug,
	}
}

func Skipped(file models.CandidateFile, reason string) models.FileResult {
	return models.FileResult{
		File:    file,
		Outcome: models.SyncSkipped,
		Reason:  reason,
	}
}

func Failed(file models.CandidateFile, err error) models.FileResult {
	return models.FileResult{
		File:    file,
		Outcome: models.SyncFailed,
		Error:   err.Error(),
	}
}
