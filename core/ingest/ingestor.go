// Package ingest pulls upcoming shows for known artists from the external
// event search and stores them as events.
package ingest

import (
	"context"
	"fmt"
	"time"

	"soundcheck/core/serp"
	"soundcheck/logger"
	"soundcheck/model"
	"soundcheck/repository"
)

// artistDelay spaces out search calls to stay under the API rate limit.
const artistDelay = 2 * time.Second

// Ingestor 活动抓取器
type Ingestor struct {
	client      *serp.Client
	profileRepo repository.ProfileRepository
	eventRepo   repository.EventRepository
	location    string
	owner       string // owns stored events; empty means per-artist ownership
	now         func() time.Time
}

// NewIngestor 创建活动抓取器
func NewIngestor(client *serp.Client, profileRepo repository.ProfileRepository, eventRepo repository.EventRepository, location, owner string) *Ingestor {
	return &Ingestor{
		client:      client,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		location:    location,
		owner:       owner,
		now:         time.Now,
	}
}

// IngestArtistEvents searches shows for one artist and stores the results.
// Returns the number of events stored. Individual malformed results degrade
// inside the mapper and still produce an event; only search or storage
// failures surface as errors.
func (ing *Ingestor) IngestArtistEvents(ctx context.Context, artist model.Profile) (int, error) {
	query := fmt.Sprintf("%s events %s", artist.Name, ing.location)

	results, err := ing.client.SearchEvents(ctx, query, ing.location)
	if err != nil {
		return 0, fmt.Errorf("search failed for artist %s: %w", artist.Name, err)
	}

	createdBy := ing.owner
	if createdBy == "" {
		createdBy = artist.ID
	}

	stored := 0
	for _, res := range results {
		event := serp.ToEvent(res, createdBy, ing.now())
		if _, err := ing.eventRepo.CreateEvent(&event); err != nil {
			logger.Warn("跳过无法入库的活动",
				logger.String("artist", artist.Name),
				logger.String("title", event.Title),
				logger.ErrorField(err))
			continue
		}
		stored++
	}

	logger.Info("艺人活动抓取完成",
		logger.String("artist", artist.Name),
		logger.Int("found", len(results)),
		logger.Int("stored", stored))
	return stored, nil
}

// IngestAllArtists runs the search for every artist profile. A failure for
// one artist is logged and the batch continues.
func (ing *Ingestor) IngestAllArtists(ctx context.Context) error {
	artists, err := ing.profileRepo.ListArtists()
	if err != nil {
		return fmt.Errorf("failed to list artists: %w", err)
	}

	for i, artist := range artists {
		if _, err := ing.IngestArtistEvents(ctx, artist); err != nil {
			logger.Error("艺人抓取失败，继续下一个",
				logger.String("artist", artist.Name),
				logger.ErrorField(err))
		}

		if i < len(artists)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(artistDelay):
			}
		}
	}

	logger.Info("全部艺人抓取完成", logger.Int("artists", len(artists)))
	return nil
}
