package githubhooks

import (
	"testing"

	"podcastsite/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFilterPushSkips(t *testing.T) {
	payload := PushPayload{
		Ref:     "refs/heads/main",
		Commits: []PushCommit{{Added: []string{"episodes/ep1.md"}}},
	}

	res := FilterPush("ping", payload, "main")
	require.True(t, res.Skipped())
	require.Equal(t, SkipNonPushEvent, res.Skip)
	require.Empty(t, res.Files)

	payload.Ref = "refs/heads/develop"
	res = FilterPush(PushEvent, payload, "main")
	require.Equal(t, SkipNonMainBranch, res.Skip)
	require.Empty(t, res.Files)

	payload.Ref = "refs/heads/not-main"
	res = FilterPush(PushEvent, payload, "main")
	require.Equal(t, SkipNonMainBranch, res.Skip)
}

func TestFilterPushDefaultBranch(t *testing.T) {
	payload := PushPayload{
		Ref:     "refs/heads/main",
		Commits: []PushCommit{{Added: []string{"episodes/ep1.md"}}},
	}

	res := FilterPush(PushEvent, payload, "")
	require.False(t, res.Skipped())
	require.Len(t, res.Files, 1)

	payload.Ref = "refs/heads/release"
	res = FilterPush(PushEvent, payload, "release")
	require.False(t, res.Skipped())
}

func TestFilterPushKeepsEpisodeMarkdown(t *testing.T) {
	payload := PushPayload{
		Ref: "refs/heads/main",
		Commits: []PushCommit{
			{
				Added:    []string{"episodes/ep1.md", "README.md", "episodes/cover.png", "drafts/episodes/ep9.md"},
				Modified: []string{"episodes/ep2.md", "episodes/notes.txt"},
			},
		},
	}

	res := FilterPush(PushEvent, payload, "main")

	require.Equal(t, []models.CandidateFile{
		{Filename: "ep1.md", Path: "episodes/ep1.md", Status: models.ChangeAdded},
		{Filename: "ep2.md", Path: "episodes/ep2.md", Status: models.ChangeModified},
	}, res.Files)
}

func TestFilterPushNoMatchesIsEmpty(t *testing.T) {
	payload := PushPayload{
		Ref: "refs/heads/main",
		Commits: []PushCommit{
			{Added: []string{"README.md"}, Modified: []string{"site/index.md"}},
			{},
		},
	}

	res := FilterPush(PushEvent, payload, "main")
	require.False(t, res.Skipped())
	require.Empty(t, res.Files)
}

func TestFilterPushDedupLastOccurrenceWins(t *testing.T) {
	payload := PushPayload{
		Ref: "refs/heads/main",
		Commits: []PushCommit{
			{Added: []string{"episodes/ep1.md", "episodes/ep2.md"}},
			{Modified: []string{"episodes/ep1.md"}},
			{Added: []string{"episodes/2024/ep2.md"}},
		},
	}

	res := FilterPush(PushEvent, payload, "main")

	require.Equal(t, []models.CandidateFile{
		{Filename: "ep1.md", Path: "episodes/ep1.md", Status: models.ChangeModified},
		{Filename: "ep2.md", Path: "episodes/2024/ep2.md", Status: models.ChangeAdded},
	}, res.Files)
}

func TestFilterPushAddedBeforeModifiedWithinCommit(t *testing.T) {
	payload := PushPayload{
		Ref: "refs/heads/main",
		Commits: []PushCommit{
			{Added: []string{"episodes/ep1.md"}, Modified: []string{"episodes/ep1.md"}},
		},
	}

	res := FilterPush(PushEvent, payload, "main")

	require.Len(t, res.Files, 1)
	require.Equal(t, models.ChangeModified, res.Files[0].Status)
}
