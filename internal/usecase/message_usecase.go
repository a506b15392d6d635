package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

// resolveConcurrency caps the fan-out of per-message entity lookups.
const resolveConcurrency = 8

const (
	TabAll    = "all"
	TabOrder  = "order"
	TabSystem = "system"
)

type MessageUseCase struct {
	profileRepo    repository.ProfileRepository
	messageRepo    repository.MessageRepository
	messageLogRepo repository.MessageLogRepository
	resolver       *entityResolver
}

func NewMessageUseCase(
	profileRepo repository.ProfileRepository,
	messageRepo repository.MessageRepository,
	messageLogRepo repository.MessageLogRepository,
	orderRepo repository.OrderRepository,
	packageRepo repository.TravelPackageRepository,
	enterpriseRepo repository.EnterpriseOrderRepository,
) *MessageUseCase {
	return &MessageUseCase{
		profileRepo:    profileRepo,
		messageRepo:    messageRepo,
		messageLogRepo: messageLogRepo,
		resolver:       newEntityResolver(orderRepo, packageRepo, enterpriseRepo),
	}
}

// GetTimeline runs one fetch cycle for the viewer: role lookup, visible
// direct messages, entity resolution, read reconciliation, and for agents
// the order-log source, merged into a single timeline sorted by createdAt
// descending. A role-lookup or direct-query failure aborts the cycle; the
// agent-only log source failing degrades to direct messages only.
func (uc *MessageUseCase) GetTimeline(ctx context.Context, viewerID, tab string) ([]*entity.Message, error) {
	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		log.Printf("GetTimeline Error: role lookup for %s failed: %v", viewerID, err)
		return nil, errors.Internal("Failed to look up viewer role", err)
	}

	messages, err := uc.messageRepo.ListVisible(ctx, visibilityFor(profile.Role, viewerID))
	if err != nil {
		log.Printf("GetTimeline Error: message query for %s failed: %v", viewerID, err)
		return nil, err
	}

	uc.reconcileMessages(ctx, messages)
	uc.resolveAll(ctx, messages)

	if profile.Role == entity.RoleAgent {
		messages = uc.mergeOrderLogs(ctx, viewerID, messages)
	}

	return filterByTab(messages, tab), nil
}

// visibilityFor builds the server-side predicate for the viewer's role.
// Users and agents only see rows addressed to them; admins additionally see
// system broadcasts and their own sent rows.
func visibilityFor(role, viewerID string) repository.MessageFilter {
	return repository.MessageFilter{
		ViewerID: viewerID,
		Admin:    role == entity.RoleAdmin,
	}
}

// reconcileMessages marks the batch's unread rows as read, once per fetch
// cycle. Ids that are not canonical UUIDs are skipped rather than failing
// the batch; an update failure is logged and the rows are returned still
// flagged unread.
func (uc *MessageUseCase) reconcileMessages(ctx context.Context, messages []*entity.Message) {
	var unread []*entity.Message
	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		if !msg.Read && uuid.Validate(msg.ID) == nil {
			unread = append(unread, msg)
			ids = append(ids, msg.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	if err := uc.messageRepo.MarkRead(ctx, ids); err != nil {
		log.Printf("GetTimeline Warning: failed to mark %d messages read: %v", len(ids), err)
		return
	}
	for _, msg := range unread {
		msg.Read = true
	}
}

// resolveAll fans out one entity lookup per message. Each goroutine writes
// only its own message's LinkedEntity slot; resolution never fails the fetch
// and result order is irrelevant since sorting happens afterwards.
func (uc *MessageUseCase) resolveAll(ctx context.Context, messages []*entity.Message) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)

	for _, msg := range messages {
		msg := msg
		g.Go(func() error {
			msg.LinkedEntity = uc.resolver.resolve(gctx, msg.Content)
			return nil
		})
	}
	g.Wait()
}

// mergeOrderLogs fetches the agent's order-log rows, reconciles their read
// state, adapts them to the unified shape and merges them with the direct
// stream. A log-source failure returns the direct stream untouched.
func (uc *MessageUseCase) mergeOrderLogs(ctx context.Context, agentID string, direct []*entity.Message) []*entity.Message {
	logs, err := uc.messageLogRepo.ListByAgent(ctx, agentID)
	if err != nil {
		log.Printf("GetTimeline Warning: order log query for agent %s failed: %v", agentID, err)
		return direct
	}
	if len(logs) == 0 {
		return direct
	}

	uc.reconcileLogs(ctx, logs)

	merged := make([]*entity.Message, 0, len(direct)+len(logs))
	merged = append(merged, direct...)
	for _, row := range logs {
		merged = append(merged, adaptMessageLog(row, agentID))
	}

	// Stable keeps the direct stream ahead of the log stream on exact
	// timestamp ties, since createdAt carries limited precision.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

func (uc *MessageUseCase) reconcileLogs(ctx context.Context, logs []*entity.MessageLog) {
	var unread []*entity.MessageLog
	ids := make([]string, 0, len(logs))
	for _, row := range logs {
		if !row.Read && uuid.Validate(row.ID) == nil {
			unread = append(unread, row)
			ids = append(ids, row.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	if err := uc.messageLogRepo.MarkRead(ctx, ids); err != nil {
		log.Printf("GetTimeline Warning: failed to mark %d order logs read: %v", len(ids), err)
		return
	}
	for _, row := range unread {
		row.Read = true
	}
}

// adaptMessageLog normalizes an order-log row into the unified message
// shape. Direction follows fromRole: rows written by the customer are
// addressed to the agent, everything else reads as sent by the agent.
// Display names are synthesized, not looked up, and the order reference is
// attached structurally rather than inferred from text.
func adaptMessageLog(row *entity.MessageLog, viewerID string) *entity.Message {
	var orderUserID string
	linked := &entity.LinkedEntity{
		Kind: entity.LinkedEntityOrder,
		ID:   row.OrderID,
	}
	if row.Order != nil {
		orderUserID = row.Order.UserID
		linked.OrderNumber = row.Order.OrderNumber
		if row.Order.TravelPackage != nil {
			linked.PackageTitle = row.Order.TravelPackage.Title
			linked.Destination = row.Order.TravelPackage.Destination
		}
	}

	msg := &entity.Message{
		ID:        row.ID,
		Content:   row.Message,
		Kind:      entity.MessageKindOrder,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
		Sender: &entity.SenderSnapshot{
			Role: row.FromRole,
		},
		LinkedEntity: linked,
	}

	if row.FromRole == entity.RoleUser {
		msg.SenderID = orderUserID
		msg.ReceiverID = viewerID
		msg.Sender.FullName = "客户"
	} else {
		msg.SenderID = viewerID
		msg.ReceiverID = orderUserID
		msg.Sender.FullName = "我"
	}

	return msg
}

// filterByTab applies the UI tab filter on the merged timeline.
func filterByTab(messages []*entity.Message, tab string) []*entity.Message {
	if tab == "" || tab == TabAll {
		return messages
	}

	filtered := make([]*entity.Message, 0, len(messages))
	for _, msg := range messages {
		switch tab {
		case TabOrder:
			if msg.Kind == entity.MessageKindOrder || msg.LinkedEntity != nil {
				filtered = append(filtered, msg)
			}
		case TabSystem:
			if msg.Kind == entity.MessageKindSystem {
				filtered = append(filtered, msg)
			}
		default:
			filtered = append(filtered, msg)
		}
	}
	return filtered
}
