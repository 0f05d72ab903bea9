package mapapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMapService struct {
	records map[uuid.UUID]*dmn.MapRecord
}

func newFakeMapService() *fakeMapService {
	return &fakeMapService{records: make(map[uuid.UUID]*dmn.MapRecord)}
}

func (f *fakeMapService) Generate(name string, params dmn.GenerationParams) (*dmn.MapRecord, error) {
	record, err := dmn.NewMapRecord(dmn.MapRecordConfig{
		Name:   name,
		Params: params,
		Cells:  [][]int{{1, 0}, {0, 1}},
	})
	if err != nil {
		return nil, err
	}
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeMapService) ByID(id uuid.UUID) (*dmn.MapRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, errors.New("map not found")
	}
	return record, nil
}

func (f *fakeMapService) Latest(limit int64) ([]*dmn.MapRecord, error) {
	var records []*dmn.MapRecord
	for _, record := range f.records {
		if int64(len(records)) == limit {
			break
		}
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeMapService) Regenerate(id uuid.UUID) (*dmn.MapRecord, error) {
	return f.ByID(id)
}

func (f *fakeMapService) Delete(id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return errors.New("map not found")
	}
	delete(f.records, id)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeMapService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := newFakeMapService()
	controller, err := NewMapController(svc)
	assert.NoError(t, err)

	router := gin.New()
	group := router.Group("/api/v1")
	controller.RegisterPublic(group)
	controller.RegisterProtected(group)
	return router, svc
}

func TestGenerateEndpoint(t *testing.T) {
	router, svc := setupRouter(t)

	t.Run("creates a map", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"name":   "caves-01",
			"width":  30,
			"height": 15,
			"seed":   7,
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/maps/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response MapResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "caves-01", response.Name)
		assert.Equal(t, 30, response.Params.Width)
		assert.Equal(t, 15, response.Params.Height)
		assert.Equal(t, int64(7), response.Params.Seed)
		assert.Len(t, svc.records, 1)
	})

	t.Run("rejects a request without a name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/maps/", bytes.NewReader([]byte(`{"width": 10}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestByIDEndpoint(t *testing.T) {
	router, svc := setupRouter(t)
	record, err := svc.Generate("stored", dmn.DefaultGenerationParams())
	assert.NoError(t, err)

	t.Run("serves an existing map", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/maps/"+record.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response MapResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, record.ID.String(), response.ID)
	})

	t.Run("404 for an unknown map", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/maps/"+uuid.NewString(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("400 for a malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/maps/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAsciiEndpoint(t *testing.T) {
	router, svc := setupRouter(t)
	record, err := svc.Generate("ascii", dmn.DefaultGenerationParams())
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/maps/"+record.ID.String()+"/ascii", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The fake service always returns the same 2x2 checker pattern.
	assert.Equal(t, "#.\n.#\n", w.Body.String())
}

func TestDeleteEndpoint(t *testing.T) {
	router, svc := setupRouter(t)
	record, err := svc.Generate("doomed", dmn.DefaultGenerationParams())
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/maps/"+record.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, svc.records)
}
