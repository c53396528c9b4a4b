package events

import (
	"strconv"

	"podcastsite/internal/models"
)

// SyncFileProcessed records the outcome of one candidate file as
// sync.file_updated, sync.file_skipped or sync.file_failed.
func (e *Emitter) SyncFileProcessed(deliveryID string, res models.FileResult) {
	if e == nil {
		return
	}

	props := map[string]any{
		"path":   res.File.Path,
		"status": res.File.Status,
	}

	switch res.Outcome {
	case models.SyncUpdated:
		props["episodeId"] = res.EpisodeID
		props["slug"] = res.Slug
	case models.SyncSkipped:
		props["reason"] = res.Reason
	case models.SyncFailed:
		props["error"] = res.Error
	}

	evt := models.Event{
		Action: "sync.file_" + string(res.Outcome),

		ActorRole: ActorSystem,
		ActorID:   deliveryID,

		TargetType: TargetFile,
		TargetID:   res.File.Filename,

		Props: props,
	}

	e.Emit(evt)
}

// SyncFinished records the summary of a processed push.
func (e *Emitter) SyncFinished(report models.SyncReport) {
	if e == nil {
		return
	}

	evt := models.Event{
		Action: "sync.finished",

		ActorRole: ActorSystem,
		ActorID:   report.DeliveryID,

		TargetType: TargetPush,
		TargetID:   report.After,

		Props: map[string]any{
			"ref":     report.Ref,
			"files":   len(report.Results),
			"updated": report.Count(models.SyncUpdated),
			"skipped": report.Count(models.SyncSkipped),
			"failed":  report.Count(models.SyncFailed),
		},
	}

	e.Emit(evt)
}

// EpisodeID formats an episode id for Event.TargetID.
func EpisodeID(id int64) string {
	return strconv.FormatInt(id, 10)
}
