package services

import (
	"context"
	"fmt"
	"io"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// MovieServiceImpl implements domain.MovieService
type MovieServiceImpl struct {
	movieRepo domain.MovieRepository
	storage   domain.PosterStorage
	cache     domain.MovieCache
	baseURL   string
}

// NewMovieService creates a new movie service
func NewMovieService(movieRepo domain.MovieRepository, storage domain.PosterStorage, cache domain.MovieCache, baseURL string) domain.MovieService {
	return &MovieServiceImpl{
		movieRepo: movieRepo,
		storage:   storage,
		cache:     cache,
		baseURL:   baseURL,
	}
}

// Add implements domain.MovieService
func (s *MovieServiceImpl) Add(ctx context.Context, movie *domain.Movie, poster io.Reader, posterName string) (*domain.Movie, error) {
	if s.storage.Exists(posterName) {
		return nil, domain.ErrPosterExists
	}
	if err := s.storage.Save(posterName, poster); err != nil {
		return nil, err
	}

	movie.Poster = posterName
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		s.storage.Remove(posterName)
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	movie.PosterURL = s.posterURL(posterName)
	return movie, nil
}

// Get implements domain.MovieService
func (s *MovieServiceImpl) Get(ctx context.Context, id uint) (*domain.Movie, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.PosterURL = s.posterURL(movie.Poster)
	s.cache.Set(ctx, movie)
	return movie, nil
}

// List implements domain.MovieService
func (s *MovieServiceImpl) List(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range movies {
		m.PosterURL = s.posterURL(m.Poster)
	}
	return movies, nil
}

// ListPage implements domain.MovieService
func (s *MovieServiceImpl) ListPage(ctx context.Context, page, size int, sortBy, dir string) (*domain.MoviePage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	movies, total, err := s.movieRepo.FindPage(ctx, page, size, sortBy, dir)
	if err != nil {
		return nil, err
	}
	for _, m := range movies {
		m.PosterURL = s.posterURL(m.Poster)
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &domain.MoviePage{
		Movies:        movies,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		IsLast:        page >= totalPages-1,
	}, nil
}

// Update implements domain.MovieService. A nil poster keeps the existing
// file; a new upload replaces it and removes the old one.
func (s *MovieServiceImpl) Update(ctx context.Context, movie *domain.Movie, poster io.Reader, posterName string) (*domain.Movie, error) {
	existing, err := s.movieRepo.FindByID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	movie.Poster = existing.Poster
	if poster != nil && posterName != "" {
		if posterName == existing.Poster {
			// same filename: drop the old bytes first so Save can recreate it
			if err := s.storage.Remove(existing.Poster); err != nil {
				return nil, fmt.Errorf("failed to remove old poster: %w", err)
			}
			if err := s.storage.Save(posterName, poster); err != nil {
				return nil, err
			}
		} else {
			if err := s.storage.Save(posterName, poster); err != nil {
				return nil, err
			}
			if err := s.storage.Remove(existing.Poster); err != nil {
				return nil, fmt.Errorf("failed to remove old poster: %w", err)
			}
			movie.Poster = posterName
		}
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, movie.ID)
	movie.PosterURL = s.posterURL(movie.Poster)
	return movie, nil
}

// Delete implements domain.MovieService
func (s *MovieServiceImpl) Delete(ctx context.Context, id uint) error {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Remove(movie.Poster); err != nil {
		return fmt.Errorf("failed to remove poster: %w", err)
	}
	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

func (s *MovieServiceImpl) posterURL(filename string) string {
	return s.baseURL + "/file/" + filename
}
