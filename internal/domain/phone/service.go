package phone

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// Service exposes phone number read paths. These reads take no row
// locks and may observe slightly stale data; only charge sales mutate
// current_charge, under an exclusive lock they acquire themselves.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService creates phone service
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create registers a new phone number. The cached active list expires
// on its own TTL, so a new number may take up to that long to appear.
func (s *Service) Create(ctx context.Context, p *PhoneNumber) error {
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	log.Info().Int64("phone_id", p.ID).Str("number", p.Number).Msg("phone number registered")
	return nil
}

func (s *Service) ListActive(ctx context.Context) ([]PhoneNumber, error) {
	phones, err := s.cache.GetActiveList(ctx)
	if err == nil {
		return phones, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Msg("phone cache read failed, falling back to Postgres")
	}

	phones, err = s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.cache.SetActiveList(cacheCtx, phones); err != nil {
			log.Warn().Err(err).Msg("phone cache write failed")
		}
	}()

	return phones, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*PhoneNumber, error) {
	p, err := s.cache.GetPhone(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Int64("phone_id", id).Msg("phone cache read failed, falling back to Postgres")
	}

	p, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.cache.SetPhone(cacheCtx, p); err != nil {
			log.Warn().Err(err).Int64("phone_id", id).Msg("phone cache write failed")
		}
	}()

	return p, nil
}
