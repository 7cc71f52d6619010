package route_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jvk36/cafes-with-wifi/controller"
	"github.com/jvk36/cafes-with-wifi/gen"
	"github.com/jvk36/cafes-with-wifi/model"
	"github.com/jvk36/cafes-with-wifi/route"
	"github.com/jvk36/cafes-with-wifi/store"
)

func init() { gin.SetMode(gin.TestMode) }

// fakeStore is an in-memory CafeStore with the same id assignment and
// uniqueness rules as the real table, for driving the API end to end.
type fakeStore struct {
	mu    sync.Mutex
	seq   uint
	cafes []model.Cafe
}

func (f *fakeStore) ListAll(ctx context.Context) ([]model.Cafe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]model.Cafe, len(f.cafes))
	copy(out, f.cafes)
	return out, nil
}

func (f *fakeStore) FindByName(ctx context.Context, name string) (model.Cafe, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cafe := range f.cafes {
		if cafe.Name == name {
			return cafe, true, nil
		}
	}
	return model.Cafe{}, false, nil
}

func (f *fakeStore) Insert(ctx context.Context, cafe model.Cafe) (model.Cafe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.cafes {
		if existing.Name == cafe.Name {
			return model.Cafe{}, store.ErrDuplicateName
		}
	}

	f.seq++
	cafe.ID = f.seq
	f.cafes = append(f.cafes, cafe)
	return cafe, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cafes)
}

func newServer() (*gin.Engine, *fakeStore) {
	fake := &fakeStore{}
	router := gin.New()
	route.CafeRoutes(router, controller.NewCafeController(fake))
	return router, fake
}

func doRequest(router *gin.Engine, method, target string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCreateThenLookup(t *testing.T) {
	router, _ := newServer()

	body := `{"name":"Blue Bottle","map_url":"http://m","img_url":"http://i","location":"SF","has_sockets":true,"has_toilet":true,"has_wifi":false,"can_take_calls":false}`
	w := doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(body))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodGet, "/cafe/Blue%20Bottle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 11)
	require.Equal(t, "Blue Bottle", got["name"])
	require.Equal(t, "http://m", got["map_url"])
	require.Equal(t, "http://i", got["img_url"])
	require.Equal(t, "SF", got["location"])
	require.Equal(t, true, got["has_sockets"])
	require.Equal(t, true, got["has_toilet"])
	require.Equal(t, false, got["has_wifi"])
	require.Equal(t, false, got["can_take_calls"])
	require.Nil(t, got["seats"])
	require.Nil(t, got["coffee_price"])
}

func TestDuplicateCreateKeepsOneRow(t *testing.T) {
	router, fake := newServer()

	body := `{"name":"Twin Peaks","map_url":"http://m","img_url":"http://i","location":"SF","has_sockets":true,"has_toilet":true,"has_wifi":true,"can_take_calls":true}`

	w := doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(body))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(body))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"description": "Cafe with this name already exists"}`, w.Body.String())

	require.Equal(t, 1, fake.count())
}

func TestListEmptyStore(t *testing.T) {
	router, _ := newServer()

	w := doRequest(router, http.MethodGet, "/cafes", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestLookupUnknownName(t *testing.T) {
	router, _ := newServer()

	w := doRequest(router, http.MethodGet, "/cafe/Nowhere", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"description": "Cafe not found"}`, w.Body.String())
}

func TestMissingFieldLeavesStoreUnchanged(t *testing.T) {
	router, fake := newServer()

	body := `{"name":"No Wifi Key","map_url":"http://m","img_url":"http://i","location":"SF","has_sockets":true,"has_toilet":true,"can_take_calls":false}`
	w := doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(body))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"description": "Missing required fields"}`, w.Body.String())
	require.Equal(t, 0, fake.count())
}

func TestConcurrentDuplicateCreates(t *testing.T) {
	router, fake := newServer()

	body := `{"name":"Race Cafe","map_url":"http://m","img_url":"http://i","location":"SF","has_sockets":false,"has_toilet":false,"has_wifi":true,"can_take_calls":false}`

	var wg sync.WaitGroup
	codes := make([]int, 2)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(body))
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	require.ElementsMatch(t, []int{http.StatusCreated, http.StatusBadRequest}, codes)
	require.Equal(t, 1, fake.count())
}

func TestListOrderedByID(t *testing.T) {
	router, _ := newServer()
	gen.SeedOnce()

	names := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		cafe := gen.FakeCafe()
		cafe.Name = fmt.Sprintf("%s #%d", cafe.Name, i+1)
		names = append(names, cafe.Name)

		raw, err := json.Marshal(cafe)
		require.NoError(t, err)

		w := doRequest(router, http.MethodPost, "/add_cafe", bytes.NewReader(raw))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/cafes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cafes []model.Cafe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cafes))
	require.Len(t, cafes, 3)
	for i, cafe := range cafes {
		require.Equal(t, uint(i+1), cafe.ID)
		require.Equal(t, names[i], cafe.Name)
	}
}

func TestCreateEchoesAssignedID(t *testing.T) {
	router, _ := newServer()

	first := `{"name":"First","map_url":"http://m","img_url":"http://i","location":"SF","has_sockets":true,"has_toilet":true,"has_wifi":true,"can_take_calls":true}`
	second := `{"name":"Second","map_url":"http://m","img_url":"http://i","location":"SF","has_sockets":true,"has_toilet":true,"has_wifi":true,"can_take_calls":true}`

	w := doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(first))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Cafe added successfully", resp["message"])
	require.Equal(t, float64(1), resp["id"])

	w = doRequest(router, http.MethodPost, "/add_cafe", bytes.NewBufferString(second))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(2), resp["id"])
}
