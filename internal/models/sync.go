package models

type ChangeStatus string

const (
	ChangeAdded    ChangeStatus = "added"
	ChangeModified ChangeStatus = "modified"
)

// CandidateFile is a changed episode file picked out of a push.
type CandidateFile struct {
	// Filename is the base name, matched against Episode.ContentName.
	Filename string       `json:"filename"`
	Path     string       `json:"path"`
	Status   ChangeStatus `json:"status"`
}

type SyncOutcome string

const (
	SyncUpdated SyncOutcome = "updated"
	SyncSkipped SyncOutcome = "skipped"
	SyncFailed  SyncOutcome = "failed"
)

// FileResult is what happened to a single candidate file. EpisodeID and Slug
// are set for updated files, Reason for skipped ones and Error for failures.
type FileResult struct {
	File    CandidateFile `json:"file"`
	Outcome SyncOutcome   `json:"outcome"`

	EpisodeID int64  `json:"episodeId,omitempty"`
	Slug      string `json:"slug,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SyncReport collects the per-file results of one webhook delivery.
type SyncReport struct {
	DeliveryID string       `json:"deliveryId"`
	Ref        string       `json:"ref"`
	After      string       `json:"after"`
	Results    []FileResult `json:"results"`
}

// Count returns how many results ended with the given outcome.
func (r SyncReport) Count(outcome SyncOutcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}
