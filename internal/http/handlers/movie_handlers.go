package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

var (
	errInvalidReleaseYear = errors.New("releaseYear must be numeric")
	errPosterFileRequired = errors.New("poster file is required")
)

// MovieHandler handles catalog endpoints
type MovieHandler struct {
	movieService domain.MovieService
	storage      domain.PosterStorage
}

// NewMovieHandler creates new movie handler
func NewMovieHandler(movieService domain.MovieService, storage domain.PosterStorage) *MovieHandler {
	return &MovieHandler{movieService: movieService, storage: storage}
}

// Add creates a catalog entry from a multipart form with a poster file
func (h *MovieHandler) Add(c *gin.Context) {
	movie, file, err := h.bindMovieForm(c, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	created, err := h.movieService.Add(c.Request.Context(), movie, file, movie.Poster)
	if err != nil {
		status := statusForMovieError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, movieResponse(created))
}

// Get returns a single catalog entry
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	movie, err := h.movieService.Get(c.Request.Context(), uint(id))
	if err != nil {
		status := statusForMovieError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movieResponse(movie))
}

// All returns every catalog entry
func (h *MovieHandler) All(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(movies))
	for _, m := range movies {
		out = append(out, movieResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

// Paginated returns a page of catalog entries
func (h *MovieHandler) Paginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "5"))
	sortBy := c.DefaultQuery("sortBy", "id")
	dir := c.DefaultQuery("dir", "asc")

	result, err := h.movieService.ListPage(c.Request.Context(), page, size, sortBy, dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	movies := make([]gin.H, 0, len(result.Movies))
	for _, m := range result.Movies {
		movies = append(movies, movieResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"movies":         movies,
		"page_number":    result.PageNumber,
		"page_size":      result.PageSize,
		"total_elements": result.TotalElements,
		"total_pages":    result.TotalPages,
		"is_last":        result.IsLast,
	})
}

// Update replaces a catalog entry; the poster file is optional
func (h *MovieHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	movie, file, err := h.bindMovieForm(c, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var poster io.Reader
	if file != nil {
		defer file.Close()
		poster = file
	}

	movie.ID = uint(id)
	updated, err := h.movieService.Update(c.Request.Context(), movie, poster, movie.Poster)
	if err != nil {
		status := statusForMovieError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movieResponse(updated))
}

// Delete removes a catalog entry and its poster
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	if err := h.movieService.Delete(c.Request.Context(), uint(id)); err != nil {
		status := statusForMovieError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}

// ServeFile streams a stored poster back to the caller
func (h *MovieHandler) ServeFile(c *gin.Context) {
	filename := c.Param("filename")

	f, err := h.storage.Open(filename)
	if err != nil {
		status := statusForMovieError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", "inline; filename="+strconv.Quote(filename))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		// headers already written, nothing left to report
		return
	}
}

// bindMovieForm reads the multipart movie fields. When posterRequired is
// false a missing file part is not an error and a nil reader is returned.
func (h *MovieHandler) bindMovieForm(c *gin.Context, posterRequired bool) (*domain.Movie, io.ReadCloser, error) {
	movie := &domain.Movie{
		Title:    c.PostForm("title"),
		Director: c.PostForm("director"),
		Studio:   c.PostForm("studio"),
	}
	if cast := c.PostForm("movieCast"); cast != "" {
		parts := strings.Split(cast, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		movie.Cast = parts
	}
	if year := c.PostForm("releaseYear"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return nil, nil, errInvalidReleaseYear
		}
		movie.ReleaseYear = y
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if !posterRequired {
			return movie, nil, nil
		}
		return nil, nil, errPosterFileRequired
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	movie.Poster = filepath.Base(fileHeader.Filename)
	return movie, f, nil
}

func movieResponse(m *domain.Movie) gin.H {
	return gin.H{
		"id":           m.ID,
		"title":        m.Title,
		"director":     m.Director,
		"studio":       m.Studio,
		"movie_cast":   m.Cast,
		"release_year": m.ReleaseYear,
		"poster":       m.Poster,
		"poster_url":   m.PosterURL,
	}
}

func statusForMovieError(err error) int {
	switch err {
	case domain.ErrMovieNotFound:
		return http.StatusNotFound
	case domain.ErrPosterExists, domain.ErrEmptyFile:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
