package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// Sortable movie columns; anything else falls back to the primary key.
var movieSortColumns = map[string]bool{
	"title":        true,
	"director":     true,
	"studio":       true,
	"release_year": true,
	"id":           true,
}

// MovieRepositoryImpl implements domain.MovieRepository using GORM
type MovieRepositoryImpl struct {
	db *gorm.DB
}

// DBMovie represents the database model for Movie. The cast is stored as a
// comma-joined column rather than a join table.
type DBMovie struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Director    string `gorm:"size:255"`
	Studio      string `gorm:"size:255"`
	MovieCast   string `gorm:"column:movie_cast"`
	ReleaseYear int    `gorm:"index"`
	Poster      string `gorm:"uniqueIndex;size:255"`
}

// TableName returns the table name for GORM
func (DBMovie) TableName() string {
	return "movies"
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) domain.MovieRepository {
	return &MovieRepositoryImpl{db: db}
}

// Create implements domain.MovieRepository
func (r *MovieRepositoryImpl) Create(ctx context.Context, movie *domain.Movie) error {
	dbMovie := movieToDB(movie)
	if err := r.db.WithContext(ctx).Create(dbMovie).Error; err != nil {
		return err
	}
	movie.ID = dbMovie.ID
	return nil
}

// FindByID implements domain.MovieRepository
func (r *MovieRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Movie, error) {
	var dbMovie DBMovie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbMovie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return movieToDomain(&dbMovie), nil
}

// FindAll implements domain.MovieRepository
func (r *MovieRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	var dbMovies []DBMovie
	if err := r.db.WithContext(ctx).Order("id").Find(&dbMovies).Error; err != nil {
		return nil, err
	}
	movies := make([]*domain.Movie, 0, len(dbMovies))
	for i := range dbMovies {
		movies = append(movies, movieToDomain(&dbMovies[i]))
	}
	return movies, nil
}

// FindPage implements domain.MovieRepository. Pages are zero-based.
func (r *MovieRepositoryImpl) FindPage(ctx context.Context, page, size int, sortBy, dir string) ([]*domain.Movie, int64, error) {
	if !movieSortColumns[sortBy] {
		sortBy = "id"
	}
	if dir != "desc" {
		dir = "asc"
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DBMovie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbMovies []DBMovie
	err := r.db.WithContext(ctx).
		Order(fmt.Sprintf("%s %s", sortBy, dir)).
		Offset(page * size).
		Limit(size).
		Find(&dbMovies).Error
	if err != nil {
		return nil, 0, err
	}

	movies := make([]*domain.Movie, 0, len(dbMovies))
	for i := range dbMovies {
		movies = append(movies, movieToDomain(&dbMovies[i]))
	}
	return movies, total, nil
}

// Update implements domain.MovieRepository
func (r *MovieRepositoryImpl) Update(ctx context.Context, movie *domain.Movie) error {
	res := r.db.WithContext(ctx).Model(&DBMovie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
		"title":        movie.Title,
		"director":     movie.Director,
		"studio":       movie.Studio,
		"movie_cast":   strings.Join(movie.Cast, ","),
		"release_year": movie.ReleaseYear,
		"poster":       movie.Poster,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// Delete implements domain.MovieRepository
func (r *MovieRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBMovie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func movieToDB(movie *domain.Movie) *DBMovie {
	return &DBMovie{
		ID:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		Studio:      movie.Studio,
		MovieCast:   strings.Join(movie.Cast, ","),
		ReleaseYear: movie.ReleaseYear,
		Poster:      movie.Poster,
	}
}

func movieToDomain(dbMovie *DBMovie) *domain.Movie {
	var cast []string
	if dbMovie.MovieCast != "" {
		cast = strings.Split(dbMovie.MovieCast, ",")
	}
	return &domain.Movie{
		ID:          dbMovie.ID,
		Title:       dbMovie.Title,
		Director:    dbMovie.Director,
		Studio:      dbMovie.Studio,
		Cast:        cast,
		ReleaseYear: dbMovie.ReleaseYear,
		Poster:      dbMovie.Poster,
	}
}
