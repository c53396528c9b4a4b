// Package contentsync applies pushed episode files from the content
// repository onto scheduled episodes.
package contentsync

import (
	"context"
	"errors"
	"fmt"

	"podcastsite/internal/content"
	"podcastsite/internal/events"
	"podcastsite/internal/models"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/store"

	log "github.com/go-pkgz/lgr"
)

const ReasonNoEpisode = "no matching episode"

// ReportPublisher receives every finished report, e.g. the admin sync stream.
type ReportPublisher interface {
	Publish(report models.SyncReport)
}

type Deps struct {
	Fetcher  content.Fetcher
	Episodes store.EpisodeStore
	Renderer *content.Renderer
	Cache    pagecache.Invalidator
	Events   *events.Emitter
	Reports  ReportPublisher

	// Owner and Repo name the content repository.
	Owner string
	Repo  string
}

type Service struct {
	fetcher  content.Fetcher
	episodes store.EpisodeStore
	renderer *content.Renderer
	cache    pagecache.Invalidator
	events   *events.Emitter
	reports  ReportPublisher

	owner string
	repo  string
}

func New(d Deps) *Service {
	renderer := d.Renderer
	if renderer == nil {
		renderer = content.NewRenderer()
	}

	return &Service{
		fetcher:  d.Fetcher,
		episodes: d.Episodes,
		renderer: renderer,
		cache:    d.Cache,
		events:   d.Events,
		reports:  d.Reports,
		owner:    d.Owner,
		repo:     d.Repo,
	}
}

// Batch is one accepted push, already filtered down to candidate files.
type Batch struct {
	DeliveryID string
	Ref        string
	After      string
	Files      []models.CandidateFile
}

// Process handles the files of a batch one at a time, in order. A file that
// cannot be synced never stops the rest of the batch.
func (s *Service) Process(ctx context.Context, batch Batch) models.SyncReport {
	report := models.SyncReport{
		DeliveryID: batch.DeliveryID,
		Ref:        batch.Ref,
		After:      batch.After,
		Results:    make([]models.FileResult, 0, len(batch.Files)),
	}

	revision := batch.After
	if revision == "" {
		revision = batch.Ref
	}

	for _, file := range batch.Files {
		res := s.processFile(ctx, file, revision)
		logResult(batch.DeliveryID, res)
		s.events.SyncFileProcessed(batch.DeliveryID, res)
		report.Results = append(report.Results, res)
	}

	log.Printf("[INFO] sync %s at %s: %d updated, %d skipped, %d failed",
		batch.DeliveryID, revision,
		report.Count(models.SyncUpdated),
		report.Count(models.SyncSkipped),
		report.Count(models.SyncFailed),
	)

	s.events.SyncFinished(report)
	if s.reports != nil {
		s.reports.Publish(report)
	}

	return report
}

func (s *Service) processFile(ctx context.Context, file models.CandidateFile, revision string) models.FileResult {
	raw, err := s.fetcher.Fetch(ctx, s.owner, s.repo, file.Path, revision)
	if err != nil {
		return Failed(file, fmt.Errorf("fetch: %w", err))
	}

	fm, body, err := content.ParseDocument(raw)
	if err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			return Skipped(file, verr.Error())
		}
		return Failed(file, err)
	}

	rendered, err := s.renderer.RenderBilingual(body)
	if err != nil {
		return Failed(file, err)
	}

	episode, err := s.episodes.FindByContentName(ctx, file.Filename)
	if errors.Is(err, store.ErrEpisodeNotFound) {
		return Skipped(file, ReasonNoEpisode)
	}
	if err != nil {
		return Failed(file, fmt.Errorf("find episode: %w", err))
	}

	pub := models.Publication{
		TitleEn:       fm.TitleEn,
		TitleFa:       fm.TitleFa,
		DescriptionEn: rendered.DescriptionHTMLEn,
		DescriptionFa: rendered.DescriptionHTMLFa,
		AudioURL:      fm.AudioURL,
		PublishedAt:   fm.PublishedAt.UTC(),
	}

	if err := s.episodes.Publish(ctx, episode.ID, pub); err != nil {
		return Failed(file, fmt.Errorf("publish episode %d: %w", episode.ID, err))
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, pagecache.EpisodePaths(episode.Slug)...); err != nil {
			log.Printf("[WARN] cache invalidation for episode %s failed: %v", episode.Slug, err)
		}
	}

	return Updated(file, episode)
}

func logResult(deliveryID string, res models.FileResult) {
	switch res.Outcome {
	case models.SyncUpdated:
		log.Printf("[INFO] sync %s: %s published episode %d (%s)", deliveryID, res.File.Path, res.EpisodeID, res.Slug)
	case models.SyncSkipped:
		log.Printf("[INFO] sync %s: skipped %s: %s", deliveryID, res.File.Path, res.Reason)
	case models.SyncFailed:
		log.Printf("[WARN] sync %s: failed %s: %s", deliveryID, res.File.Path, res.Error)
	}
}
