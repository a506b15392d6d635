package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	err      error
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, errors.NotFound("Profile", nil)
}

func (f *fakeProfileRepo) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	out := make([]*entity.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

type fakeMessageRepo struct {
	messages   []*entity.Message
	listErr    error
	markErr    error
	markCalls  [][]string
	lastFilter repository.MessageFilter
}

func (f *fakeMessageRepo) ListVisible(ctx context.Context, filter repository.MessageFilter) ([]*entity.Message, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.messages, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, ids []string) error {
	f.markCalls = append(f.markCalls, ids)
	return f.markErr
}

type fakeMessageLogRepo struct {
	logs      []*entity.MessageLog
	listErr   error
	markErr   error
	markCalls [][]string
}

func (f *fakeMessageLogRepo) ListByAgent(ctx context.Context, agentID string) ([]*entity.MessageLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.logs, nil
}

func (f *fakeMessageLogRepo) MarkRead(ctx context.Context, ids []string) error {
	f.markCalls = append(f.markCalls, ids)
	return f.markErr
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	err    error
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, errors.NotFound("Order", nil)
}

type fakePackageRepo struct {
	packages map[string]*entity.TravelPackage
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id string) (*entity.TravelPackage, error) {
	if p, ok := f.packages[id]; ok {
		return p, nil
	}
	return nil, errors.NotFound("Travel package", nil)
}

func (f *fakePackageRepo) IncrementViews(ctx context.Context, id string) error {
	return nil
}

type fakeEnterpriseRepo struct {
	orders map[string]*entity.EnterpriseOrder
}

func (f *fakeEnterpriseRepo) GetByID(ctx context.Context, id string) (*entity.EnterpriseOrder, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, errors.NotFound("Enterprise order", nil)
}

func newTestUseCase(profiles *fakeProfileRepo, messages *fakeMessageRepo, logs *fakeMessageLogRepo) *MessageUseCase {
	return NewMessageUseCase(
		profiles,
		messages,
		logs,
		&fakeOrderRepo{},
		&fakePackageRepo{},
		&fakeEnterpriseRepo{},
	)
}

func userProfile(id, role string) *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*entity.Profile{
		id: {ID: id, Role: role, FullName: "Test User"},
	}}
}

const (
	msgID1 = "11111111-1111-1111-1111-111111111111"
	msgID2 = "22222222-2222-2222-2222-222222222222"
	logID1 = "33333333-3333-3333-3333-333333333333"
)

func TestGetTimelineMarksUnreadOnce(t *testing.T) {
	now := time.Now()
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		{ID: msgID1, ReceiverID: "u1", Content: "hello", Kind: entity.MessageKindDirect, Read: false, CreatedAt: now},
		{ID: msgID2, ReceiverID: "u1", Content: "world", Kind: entity.MessageKindDirect, Read: true, CreatedAt: now.Add(-time.Minute)},
	}}
	uc := newTestUseCase(userProfile("u1", entity.RoleUser), messageRepo, &fakeMessageLogRepo{})

	result, err := uc.GetTimeline(context.Background(), "u1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Len(t, messageRepo.markCalls, 1)
	assert.Equal(t, []string{msgID1}, messageRepo.markCalls[0])
	assert.True(t, result[0].Read)
	assert.True(t, result[1].Read)

	// Second cycle sees everything read and issues no update.
	_, err = uc.GetTimeline(context.Background(), "u1", TabAll)
	require.NoError(t, err)
	assert.Len(t, messageRepo.markCalls, 1)
}

func TestGetTimelineSkipsNonCanonicalIds(t *testing.T) {
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		{ID: "welcome-banner", ReceiverID: "u1", Kind: entity.MessageKindSystem, Read: false, CreatedAt: time.Now()},
	}}
	uc := newTestUseCase(userProfile("u1", entity.RoleUser), messageRepo, &fakeMessageLogRepo{})

	result, err := uc.GetTimeline(context.Background(), "u1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, messageRepo.markCalls)
	assert.False(t, result[0].Read)
}

func TestGetTimelineMarkReadFailureKeepsRowsUnread(t *testing.T) {
	messageRepo := &fakeMessageRepo{
		messages: []*entity.Message{
			{ID: msgID1, ReceiverID: "u1", Read: false, CreatedAt: time.Now()},
		},
		markErr: errors.Internal("write failed", nil),
	}
	uc := newTestUseCase(userProfile("u1", entity.RoleUser), messageRepo, &fakeMessageLogRepo{})

	result, err := uc.GetTimeline(context.Background(), "u1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.False(t, result[0].Read)
}

func TestGetTimelineRoleLookupFailure(t *testing.T) {
	profileRepo := &fakeProfileRepo{err: errors.Internal("backend down", nil)}
	uc := newTestUseCase(profileRepo, &fakeMessageRepo{}, &fakeMessageLogRepo{})

	result, err := uc.GetTimeline(context.Background(), "u1", TabAll)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestGetTimelineVisibilityFilterByRole(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	uc := newTestUseCase(userProfile("u1", entity.RoleUser), messageRepo, &fakeMessageLogRepo{})

	_, err := uc.GetTimeline(context.Background(), "u1", TabAll)
	require.NoError(t, err)
	assert.Equal(t, "u1", messageRepo.lastFilter.ViewerID)
	assert.False(t, messageRepo.lastFilter.Admin)

	adminRepo := &fakeMessageRepo{}
	uc = newTestUseCase(userProfile("a1", entity.RoleAdmin), adminRepo, &fakeMessageLogRepo{})

	_, err = uc.GetTimeline(context.Background(), "a1", TabAll)
	require.NoError(t, err)
	assert.True(t, adminRepo.lastFilter.Admin)
}

func TestGetTimelineResolvesLinkedEntities(t *testing.T) {
	orderID := "44444444-4444-4444-4444-444444444444"
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		{ID: msgID1, ReceiverID: "u1", Content: "您的订单 " + orderID + " 已确认", Kind: entity.MessageKindOrder, Read: true, CreatedAt: time.Now()},
	}}
	uc := NewMessageUseCase(
		userProfile("u1", entity.RoleUser),
		messageRepo,
		&fakeMessageLogRepo{},
		&fakeOrderRepo{orders: map[string]*entity.Order{
			orderID: {ID: orderID, OrderNumber: "DD20250101", UserID: "u1", TravelPackage: &entity.TravelPackage{Title: "三亚五日游", Destination: "三亚"}},
		}},
		&fakePackageRepo{},
		&fakeEnterpriseRepo{},
	)

	result, err := uc.GetTimeline(context.Background(), "u1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 1)
	linked := result[0].LinkedEntity
	require.NotNil(t, linked)
	assert.Equal(t, entity.LinkedEntityOrder, linked.Kind)
	assert.Equal(t, "DD20250101", linked.OrderNumber)
	assert.Equal(t, "三亚五日游", linked.PackageTitle)
}

func TestGetTimelineAgentMergesOrderLogs(t *testing.T) {
	now := time.Now()
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		{ID: msgID1, ReceiverID: "agent1", Content: "direct", Kind: entity.MessageKindDirect, Read: true, CreatedAt: now},
	}}
	logRepo := &fakeMessageLogRepo{logs: []*entity.MessageLog{
		{
			ID: logID1, OrderID: "O1", AgentID: "agent1", FromRole: entity.RoleUser,
			Message: "订单已发货了吗", Read: false, CreatedAt: now.Add(-time.Minute),
			Order: &entity.Order{
				ID: "O1", OrderNumber: "DD20250102", UserID: "customer1",
				TravelPackage: &entity.TravelPackage{Title: "桂林四日游", Destination: "桂林"},
			},
		},
	}}
	uc := newTestUseCase(userProfile("agent1", entity.RoleAgent), messageRepo, logRepo)

	result, err := uc.GetTimeline(context.Background(), "agent1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 2)

	// Newest first: the direct message precedes the older log row.
	assert.Equal(t, msgID1, result[0].ID)

	adapted := result[1]
	assert.Equal(t, logID1, adapted.ID)
	assert.Equal(t, entity.MessageKindOrder, adapted.Kind)
	assert.Equal(t, "customer1", adapted.SenderID)
	assert.Equal(t, "agent1", adapted.ReceiverID)
	assert.Equal(t, "客户", adapted.Sender.FullName)
	require.NotNil(t, adapted.LinkedEntity)
	assert.Equal(t, "O1", adapted.LinkedEntity.ID)
	assert.Equal(t, "DD20250102", adapted.LinkedEntity.OrderNumber)
	assert.Equal(t, "桂林四日游", adapted.LinkedEntity.PackageTitle)

	// Log reconciliation ran against the log store, not the message store.
	require.Len(t, logRepo.markCalls, 1)
	assert.Equal(t, []string{logID1}, logRepo.markCalls[0])
	assert.True(t, adapted.Read)
}

func TestGetTimelineAgentLogRowFromAgent(t *testing.T) {
	logRepo := &fakeMessageLogRepo{logs: []*entity.MessageLog{
		{
			ID: logID1, OrderID: "O1", AgentID: "agent1", FromRole: entity.RoleAgent,
			Message: "已为您安排出行", Read: true, CreatedAt: time.Now(),
			Order:   &entity.Order{ID: "O1", UserID: "customer1"},
		},
	}}
	uc := newTestUseCase(userProfile("agent1", entity.RoleAgent), &fakeMessageRepo{}, logRepo)

	result, err := uc.GetTimeline(context.Background(), "agent1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "agent1", result[0].SenderID)
	assert.Equal(t, "customer1", result[0].ReceiverID)
	assert.Equal(t, "我", result[0].Sender.FullName)
}

func TestGetTimelineMergeTieKeepsDirectFirst(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		{ID: msgID1, ReceiverID: "agent1", Content: "direct", Kind: entity.MessageKindDirect, Read: true, CreatedAt: ts},
	}}
	logRepo := &fakeMessageLogRepo{logs: []*entity.MessageLog{
		{ID: logID1, OrderID: "O1", AgentID: "agent1", FromRole: entity.RoleUser, Message: "log", Read: true, CreatedAt: ts},
	}}
	uc := newTestUseCase(userProfile("agent1", entity.RoleAgent), messageRepo, logRepo)

	result, err := uc.GetTimeline(context.Background(), "agent1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, msgID1, result[0].ID)
	assert.Equal(t, logID1, result[1].ID)
}

func TestGetTimelineLogSourceFailureDegrades(t *testing.T) {
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		{ID: msgID1, ReceiverID: "agent1", Content: "direct", Kind: entity.MessageKindDirect, Read: true, CreatedAt: time.Now()},
	}}
	logRepo := &fakeMessageLogRepo{listErr: errors.Internal("log backend down", nil)}
	uc := newTestUseCase(userProfile("agent1", entity.RoleAgent), messageRepo, logRepo)

	result, err := uc.GetTimeline(context.Background(), "agent1", TabAll)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, msgID1, result[0].ID)
}

func TestGetTimelineNonAgentSkipsLogSource(t *testing.T) {
	logRepo := &fakeMessageLogRepo{logs: []*entity.MessageLog{
		{ID: logID1, OrderID: "O1", AgentID: "u1", FromRole: entity.RoleUser, Read: true, CreatedAt: time.Now()},
	}}
	uc := newTestUseCase(userProfile("u1", entity.RoleUser), &fakeMessageRepo{}, logRepo)

	result, err := uc.GetTimeline(context.Background(), "u1", TabAll)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestFilterByTab(t *testing.T) {
	messages := []*entity.Message{
		{ID: "a", Kind: entity.MessageKindDirect},
		{ID: "b", Kind: entity.MessageKindOrder},
		{ID: "c", Kind: entity.MessageKindSystem},
		{ID: "d", Kind: entity.MessageKindDirect, LinkedEntity: &entity.LinkedEntity{Kind: entity.LinkedEntityPackage}},
	}

	all := filterByTab(messages, TabAll)
	assert.Len(t, all, 4)

	empty := filterByTab(messages, "")
	assert.Len(t, empty, 4)

	order := filterByTab(messages, TabOrder)
	require.Len(t, order, 2)
	assert.Equal(t, "b", order[0].ID)
	assert.Equal(t, "d", order[1].ID)

	system := filterByTab(messages, TabSystem)
	require.Len(t, system, 1)
	assert.Equal(t, "c", system[0].ID)
}
