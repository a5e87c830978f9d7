package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"velocity-model-service/internal/api/handlers"
	"velocity-model-service/internal/domain"
	"velocity-model-service/internal/format"
)

// stubRepo is an in-memory ModelRepository recording the pagination window
// it was asked for.
type stubRepo struct {
	total1D  int
	points1D []domain.ProfilePoint
	total3D  int
	points3D []domain.GridPoint
	authors  []string
	nfos     []string
	err      error

	gotAuthor string
	gotNFO    string
	gotWave   domain.WaveType
	gotLimit  int
	gotOffset int
}

func (s *stubRepo) Count1D(ctx context.Context, author, nfo string) (int, error) {
	s.gotAuthor, s.gotNFO = author, nfo
	return s.total1D, s.err
}

func (s *stubRepo) List1D(ctx context.Context, author, nfo string, limit, offset int) ([]domain.ProfilePoint, error) {
	s.gotLimit, s.gotOffset = limit, offset
	return s.points1D, s.err
}

func (s *stubRepo) Count3D(ctx context.Context, wave domain.WaveType, author string) (int, error) {
	s.gotWave, s.gotAuthor = wave, author
	return s.total3D, s.err
}

func (s *stubRepo) List3D(ctx context.Context, wave domain.WaveType, author string, limit, offset int) ([]domain.GridPoint, error) {
	s.gotLimit, s.gotOffset = limit, offset
	return s.points3D, s.err
}

func (s *stubRepo) Authors(ctx context.Context) ([]string, error) { return s.authors, s.err }
func (s *stubRepo) NFOs(ctx context.Context) ([]string, error)    { return s.nfos, s.err }

type stubBibrefs struct{ value string }

func (s *stubBibrefs) Bibref(ctx context.Context, author string) (string, error) {
	return s.value, nil
}

func newModelHandler(repo *stubRepo, bibref string) *handlers.ModelHandler {
	return &handlers.ModelHandler{Repo: repo, Bibrefs: &stubBibrefs{value: bibref}}
}

func TestProfile1DRequiresAuthorAndNFO(t *testing.T) {
	h := newModelHandler(&stubRepo{}, "")

	for _, target := range []string{"/1d/", "/1d/?author=Laske", "/1d/?nfo=CRUST1"} {
		rec := httptest.NewRecorder()
		h.Profile1D(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestProfile1DNotFound(t *testing.T) {
	h := newModelHandler(&stubRepo{total1D: 0}, "")

	rec := httptest.NewRecorder()
	h.Profile1D(rec, httptest.NewRequest(http.MethodGet, "/1d/?author=Laske&nfo=CRUST1", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No data found for author: Laske and NFO: CRUST1") {
		t.Fatalf("body = %q, missing not-found detail", rec.Body.String())
	}
}

func TestProfile1DOffsetBeyondRange(t *testing.T) {
	h := newModelHandler(&stubRepo{total1D: 5}, "")

	rec := httptest.NewRecorder()
	h.Profile1D(rec, httptest.NewRequest(http.MethodGet, "/1d/?author=Laske&nfo=CRUST1&offset=5", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Max offset: 4") {
		t.Fatalf("body = %q, missing max offset hint", rec.Body.String())
	}
}

func TestProfile1DLimitValidation(t *testing.T) {
	h := newModelHandler(&stubRepo{total1D: 5}, "")

	for _, target := range []string{
		"/1d/?author=a&nfo=b&limit=0",
		"/1d/?author=a&nfo=b&limit=100001",
		"/1d/?author=a&nfo=b&limit=ten",
		"/1d/?author=a&nfo=b&offset=-1",
	} {
		rec := httptest.NewRecorder()
		h.Profile1D(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestProfile1DSuccess(t *testing.T) {
	points := []domain.ProfilePoint{
		{Depth: 0, Velocity: 5.8, Wave: domain.WaveP, NFO: "CRUST1", Author: "Laske"},
		{Depth: 35, Velocity: 8.0, Wave: domain.WaveP, NFO: "CRUST1", Author: "Laske"},
	}
	repo := &stubRepo{total1D: 2, points1D: points}
	h := newModelHandler(repo, "Laske et al. (2013)")

	rec := httptest.NewRecorder()
	h.Profile1D(rec, httptest.NewRequest(http.MethodGet, "/1d/?author=Laske&nfo=CRUST1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%q)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q, want text/plain", ct)
	}
	if repo.gotLimit != 10000 || repo.gotOffset != 0 {
		t.Fatalf("repo window = (%d, %d), want default (10000, 0)", repo.gotLimit, repo.gotOffset)
	}

	want := format.Profile(points, "Laske et al. (2013)", domain.Page{Total: 2, Offset: 0, Limit: 10000})
	if rec.Body.String() != want {
		t.Fatalf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestProfile1DMethodNotAllowed(t *testing.T) {
	h := newModelHandler(&stubRepo{}, "")

	rec := httptest.NewRecorder()
	h.Profile1D(rec, httptest.NewRequest(http.MethodPost, "/1d/?author=a&nfo=b", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestGrid3DWaveTypeValidation(t *testing.T) {
	h := newModelHandler(&stubRepo{total3D: 1}, "")

	for _, target := range []string{
		"/3d/?author=Lee",
		"/3d/?wave_type=PP&author=Lee",
		"/3d/?wave_type=VP&author=Lee&include_r=maybe",
		"/3d/?wave_type=VP",
	} {
		rec := httptest.NewRecorder()
		h.Grid3D(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestGrid3DNotFound(t *testing.T) {
	h := newModelHandler(&stubRepo{total3D: 0}, "")

	rec := httptest.NewRecorder()
	h.Grid3D(rec, httptest.NewRequest(http.MethodGet, "/3d/?wave_type=VS&author=Lee", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No VS data found for author: Lee") {
		t.Fatalf("body = %q, missing not-found detail", rec.Body.String())
	}
}

func TestGrid3DSuccess(t *testing.T) {
	r := 0.85
	points := []domain.GridPoint{
		{Longitude: -120.5, Latitude: 35.25, Depth: 0, Velocity: 5.5, R: &r, NFO: "SCEC", Author: "Lee"},
	}
	repo := &stubRepo{total3D: 1, points3D: points}
	h := newModelHandler(repo, "")

	rec := httptest.NewRecorder()
	h.Grid3D(rec, httptest.NewRequest(http.MethodGet, "/3d/?wave_type=vp&author=Lee&include_r=true&limit=50", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%q)", rec.Code, rec.Body.String())
	}
	if repo.gotWave != domain.WaveP {
		t.Fatalf("wave = %q, want VP", repo.gotWave)
	}
	if repo.gotLimit != 50 {
		t.Fatalf("limit = %d, want 50", repo.gotLimit)
	}

	want := format.Grid(points, domain.WaveP, true, "", domain.Page{Total: 1, Offset: 0, Limit: 50})
	if rec.Body.String() != want {
		t.Fatalf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestCatalogAuthors(t *testing.T) {
	h := &handlers.CatalogHandler{Repo: &stubRepo{authors: []string{"Laske", "Lee"}}}

	rec := httptest.NewRecorder()
	h.Authors(rec, httptest.NewRequest(http.MethodGet, "/authors", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "Laske\nLee\n" {
		t.Fatalf("body = %q, want %q", got, "Laske\nLee\n")
	}
}

func TestCatalogDegradesToEmptyOnStoreError(t *testing.T) {
	h := &handlers.CatalogHandler{Repo: &stubRepo{err: context.DeadlineExceeded}}

	rec := httptest.NewRecorder()
	h.NFOs(rec, httptest.NewRequest(http.MethodGet, "/nfos", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rec.Body.String())
	}
}
