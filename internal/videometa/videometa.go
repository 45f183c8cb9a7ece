package videometa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tuanvm/bepxu/internal/config"
	"github.com/tuanvm/bepxu/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tuanvm/bepxu/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var probingVideos sync.Map

// Response is the media provider's metadata payload for one video.
type Response struct {
	ID              int    `json:"id"`
	Status          string `json:"status"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

type VideoRepo interface {
	FindForProbing(ctx context.Context, limit uint32) ([]domain.Video, error)
	UpdateMeta(ctx context.Context, video *domain.Video) error
}

// Service polls the media provider for the duration and state of newly
// registered videos. A video becomes reward-eligible only once its metadata
// is known, so the watch threshold can be checked against a real duration.
type Service struct {
	url            string
	videoRepo      VideoRepo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, videoRepo VideoRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.MediaAddress,
		videoRepo:      videoRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Video metadata service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping video metadata service")
			return
		case <-ticker.C:
			s.processVideos(ctx)
		}
	}
}

func (s *Service) processVideos(ctx context.Context) {
	videos, err := s.videoRepo.FindForProbing(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch videos for probing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, video := range videos {
		video := video

		if _, loaded := probingVideos.LoadOrStore(video.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer probingVideos.Delete(video.ID)
				return s.handleVideo(ctx, video)
			})
			if err != nil {
				probingVideos.Delete(video.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error probing videos", zap.Error(err))
	}
}

func (s *Service) handleVideo(ctx context.Context, video domain.Video) error {
	url := s.url + "/api/videos/" + strconv.Itoa(video.ID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to probe video %d after %d retries: %w", video.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(video, respHeaders, attempt)
			case http.StatusNotFound:
				zap.L().Warn("Video unknown to media provider, marking invalid", zap.Int("videoID", video.ID))
				video.Status = domain.InvalidVideoStatus
				return s.videoRepo.UpdateMeta(ctx, &video)

			case http.StatusOK:
				return s.processMetadata(ctx, video, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("videoID", video.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processMetadata(ctx context.Context, video domain.Video, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.ID != video.ID {
		return fmt.Errorf("video id mismatch: expected %d, got %d", video.ID, response.ID)
	}

	switch response.Status {
	case "READY":
		if response.DurationSeconds <= 0 {
			zap.L().Warn("Provider reported ready video without duration", zap.Int("videoID", video.ID))
			return nil
		}
		video.DurationSeconds = response.DurationSeconds
		video.Status = domain.ReadyVideoStatus
	case "PROCESSING":
		zap.L().Info("Video still processing, will probe again", zap.Int("videoID", video.ID))
		return nil
	case "INVALID":
		zap.L().Info("Video rejected by media provider", zap.Int("videoID", video.ID))
		video.Status = domain.InvalidVideoStatus
	default:
		zap.L().Warn("Unrecognized status received", zap.Int("videoID", video.ID), zap.String("status", response.Status))
		return nil
	}

	if err := s.videoRepo.UpdateMeta(ctx, &video); err != nil {
		return fmt.Errorf("failed to update video in repo: %w", err)
	}
	return nil
}

func (s *Service) handleRateLimit(video domain.Video, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("videoID", video.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
