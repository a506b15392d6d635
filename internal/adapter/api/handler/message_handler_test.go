package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/internal/usecase"
	"huiqs/pkg/errors"
	"huiqs/pkg/response"
)

type stubProfileRepo struct {
	profile *entity.Profile
	err     error
}

func (s *stubProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfileRepo) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	return nil, 0, nil
}

type stubMessageRepo struct {
	messages []*entity.Message
}

func (s *stubMessageRepo) ListVisible(ctx context.Context, filter repository.MessageFilter) ([]*entity.Message, error) {
	return s.messages, nil
}

func (s *stubMessageRepo) MarkRead(ctx context.Context, ids []string) error {
	return nil
}

type stubMessageLogRepo struct{}

func (s *stubMessageLogRepo) ListByAgent(ctx context.Context, agentID string) ([]*entity.MessageLog, error) {
	return nil, nil
}

func (s *stubMessageLogRepo) MarkRead(ctx context.Context, ids []string) error {
	return nil
}

type stubOrderRepo struct{}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return nil, errors.NotFound("Order", nil)
}

type stubPackageRepo struct{}

func (s *stubPackageRepo) GetByID(ctx context.Context, id string) (*entity.TravelPackage, error) {
	return nil, errors.NotFound("Travel package", nil)
}

func (s *stubPackageRepo) IncrementViews(ctx context.Context, id string) error {
	return nil
}

type stubEnterpriseRepo struct{}

func (s *stubEnterpriseRepo) GetByID(ctx context.Context, id string) (*entity.EnterpriseOrder, error) {
	return nil, errors.NotFound("Enterprise order", nil)
}

func newMessageContext(t *testing.T, tab string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/messages?tab="+tab, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")
	return c, rec
}

func TestGetMessages(t *testing.T) {
	uc := usecase.NewMessageUseCase(
		&stubProfileRepo{profile: &entity.Profile{ID: "u1", Role: entity.RoleUser}},
		&stubMessageRepo{messages: []*entity.Message{
			{ID: "m1", ReceiverID: "u1", Content: "hi", Kind: entity.MessageKindDirect, Read: true, CreatedAt: time.Now()},
		}},
		&stubMessageLogRepo{},
		&stubOrderRepo{},
		&stubPackageRepo{},
		&stubEnterpriseRepo{},
	)
	h := NewMessageHandler(uc)

	c, rec := newMessageContext(t, "all")
	require.NoError(t, h.GetMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, rec.Body.String(), `"id":"m1"`)
}

func TestGetMessagesFailsSoft(t *testing.T) {
	uc := usecase.NewMessageUseCase(
		&stubProfileRepo{err: errors.Internal("backend down", nil)},
		&stubMessageRepo{},
		&stubMessageLogRepo{},
		&stubOrderRepo{},
		&stubPackageRepo{},
		&stubEnterpriseRepo{},
	)
	h := NewMessageHandler(uc)

	c, rec := newMessageContext(t, "all")
	require.NoError(t, h.GetMessages(c))

	// A broken backend never surfaces as an error page, just an empty list.
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []interface{}{}, resp.Data)
}
