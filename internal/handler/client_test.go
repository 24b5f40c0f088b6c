package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/levelup-marketers/client-dashboard-service/internal/errs"
	"github.com/levelup-marketers/client-dashboard-service/internal/handler"
	"github.com/levelup-marketers/client-dashboard-service/internal/kafka"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/stretchr/testify/require"
)

// fakeClientService backs the handler with canned responses.
type fakeClientService struct {
	clients map[uint64]*model.Client
}

func (f *fakeClientService) Create(ctx context.Context, c *model.Client) error {
	c.ID = 1
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientService) GetByID(ctx context.Context, id uint64) (*model.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errs.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientService) GetByUserID(ctx context.Context, userID uint64) (*model.Client, error) {
	for _, c := range f.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, errs.ErrClientNotFound
}

func (f *fakeClientService) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Client, int64, error) {
	out := make([]model.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeClientService) Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errs.ErrClientNotFound
	}
	if v, ok := changes["first_name"]; ok {
		c.FirstName = v.(string)
	}
	return c, nil
}

func (f *fakeClientService) Archive(ctx context.Context, id uint64) error {
	if _, ok := f.clients[id]; !ok {
		return errs.ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientService) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.clients[id]; !ok {
		return errs.ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

func newClientRouter(svc *fakeClientService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewClientHandler(svc, kafka.NewProducer(nil, ""))
	r := gin.New()
	r.POST("/clients", h.Create)
	r.GET("/clients/:id", h.Get)
	r.GET("/clients", h.List)
	r.PUT("/clients/:id", h.Update)
	r.POST("/clients/:id/archive", h.Archive)
	r.DELETE("/clients/:id", h.Delete)
	return r
}

func TestClientHandler_Create(t *testing.T) {
	r := newClientRouter(&fakeClientService{clients: map[uint64]*model.Client{}})
	body := `{"user_id":10,"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","company_name":"Engine Works"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.EqualValues(t, 1, got.ID)
	require.Equal(t, "Ada", got.FirstName)
}

func TestClientHandler_Create_InvalidBody(t *testing.T) {
	r := newClientRouter(&fakeClientService{clients: map[uint64]*model.Client{}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	r := newClientRouter(&fakeClientService{clients: map[uint64]*model.Client{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/99", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_Get_BadID(t *testing.T) {
	r := newClientRouter(&fakeClientService{clients: map[uint64]*model.Client{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/abc", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_Update(t *testing.T) {
	svc := &fakeClientService{clients: map[uint64]*model.Client{
		5: {ID: 5, UserID: 10, FirstName: "Ada", LastName: "Lovelace"},
	}}
	r := newClientRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/clients/5", strings.NewReader(`{"first_name":"Grace"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Grace", svc.clients[5].FirstName)
}

func TestClientHandler_Update_NoChanges(t *testing.T) {
	svc := &fakeClientService{clients: map[uint64]*model.Client{5: {ID: 5}}}
	r := newClientRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/clients/5", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_Archive(t *testing.T) {
	svc := &fakeClientService{clients: map[uint64]*model.Client{5: {ID: 5}}}
	r := newClientRouter(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clients/5/archive", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, svc.clients, uint64(5))
}

func TestClientHandler_Delete_NotFound(t *testing.T) {
	r := newClientRouter(&fakeClientService{clients: map[uint64]*model.Client{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/clients/99", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
