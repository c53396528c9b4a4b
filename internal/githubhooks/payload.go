package githubhooks

import (
	"path"
	"strings"

	"podcastsite/internal/models"
)

const (
	PushEvent     = "push"
	DefaultBranch = "main"

	episodesPrefix = "episodes/"
	markdownSuffix = ".md"
)

// PushPayload models just the fields we rely on from a GitHub push hook.
type PushPayload struct {
	Ref     string       `json:"ref"`
	After   string       `json:"after"`
	Commits []PushCommit `json:"commits"`
}

type PushCommit struct {
	ID       string   `json:"id"`
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
}

// SkipReason explains why a delivery was accepted without processing.
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipNonPushEvent  SkipReason = "non_push_event"
	SkipNonMainBranch SkipReason = "non_main_branch"
)

type FilterResult struct {
	Skip  SkipReason
	Files []models.CandidateFile
}

func (r FilterResult) Skipped() bool {
	return r.Skip != SkipNone
}

// FilterPush picks the episode Markdown files touched by a push to branch.
// Files are deduplicated by base name; the last occurrence decides status and
// path while the output keeps first-seen order.
func FilterPush(eventType string, payload PushPayload, branch string) FilterResult {
	if eventType != PushEvent {
		return FilterResult{Skip: SkipNonPushEvent}
	}

	if branch == "" {
		branch = DefaultBranch
	}
	if !strings.HasSuffix(payload.Ref, "/"+branch) {
		return FilterResult{Skip: SkipNonMainBranch}
	}

	files := []models.CandidateFile{}
	index := map[string]int{}

	collect := func(paths []string, status models.ChangeStatus) {
		for _, p := range paths {
			if !isEpisodeFile(p) {
				continue
			}

			file := models.CandidateFile{
				Filename: path.Base(p),
				Path:     p,
				Status:   status,
			}

			if i, seen := index[file.Filename]; seen {
				files[i] = file
				continue
			}

			index[file.Filename] = len(files)
			files = append(files, file)
		}
	}

	for _, commit := range payload.Commits {
		collect(commit.Added, models.ChangeAdded)
		collect(commit.Modified, models.ChangeModified)
	}

	return FilterResult{Files: files}
}

func isEpisodeFile(p string) bool {
	return strings.HasPrefix(p, episodesPrefix) && strings.HasSuffix(p, markdownSuffix)
}
