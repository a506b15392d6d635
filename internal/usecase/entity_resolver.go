package usecase

import (
	"context"
	"log"
	"regexp"
	"strings"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

const (
	orderMarker      = "订单"
	packageMarker    = "套餐"
	enterpriseMarker = "企业团建"
)

// Identifier tokens embedded in message text must have the canonical grouped
// shape (8-4-4-4-12). Anything else is treated as "no reference present".
var (
	orderRefPattern      = regexp.MustCompile(`订单.*?(\w{8}-\w{4}-\w{4}-\w{4}-\w{12})`)
	packageRefPattern    = regexp.MustCompile(`套餐.*?(\w{8}-\w{4}-\w{4}-\w{4}-\w{12})`)
	enterpriseRefPattern = regexp.MustCompile(`企业团建.*?(\w{8}-\w{4}-\w{4}-\w{4}-\w{12})`)
)

// entityResolver links free-text message content to order, package or
// enterprise-order records. Resolution is best-effort: a marker without a
// well-formed token, or a token without a backing row, yields no link.
type entityResolver struct {
	orderRepo      repository.OrderRepository
	packageRepo    repository.TravelPackageRepository
	enterpriseRepo repository.EnterpriseOrderRepository
}

func newEntityResolver(
	orderRepo repository.OrderRepository,
	packageRepo repository.TravelPackageRepository,
	enterpriseRepo repository.EnterpriseOrderRepository,
) *entityResolver {
	return &entityResolver{
		orderRepo:      orderRepo,
		packageRepo:    packageRepo,
		enterpriseRepo: enterpriseRepo,
	}
}

// resolve returns the linked entity for the content, or nil. The order
// pattern takes priority: the package pattern is only consulted when the
// order pattern captured nothing. The enterprise pattern is tried when
// neither produced a link.
func (r *entityResolver) resolve(ctx context.Context, content string) *entity.LinkedEntity {
	if strings.Contains(content, orderMarker) || strings.Contains(content, packageMarker) {
		if m := orderRefPattern.FindStringSubmatch(content); m != nil {
			if linked := r.lookupOrder(ctx, m[1]); linked != nil {
				return linked
			}
		} else if m := packageRefPattern.FindStringSubmatch(content); m != nil {
			if linked := r.lookupPackage(ctx, m[1]); linked != nil {
				return linked
			}
		}
	}

	if strings.Contains(content, enterpriseMarker) {
		if m := enterpriseRefPattern.FindStringSubmatch(content); m != nil {
			if linked := r.lookupEnterprise(ctx, m[1]); linked != nil {
				return linked
			}
		}
	}

	return nil
}

func (r *entityResolver) lookupOrder(ctx context.Context, id string) *entity.LinkedEntity {
	order, err := r.orderRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			log.Printf("resolve: order lookup %s failed: %v", id, err)
		}
		return nil
	}

	linked := &entity.LinkedEntity{
		Kind:        entity.LinkedEntityOrder,
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
	}
	if order.TravelPackage != nil {
		linked.PackageTitle = order.TravelPackage.Title
		linked.Destination = order.TravelPackage.Destination
	}
	return linked
}

func (r *entityResolver) lookupPackage(ctx context.Context, id string) *entity.LinkedEntity {
	pkg, err := r.packageRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			log.Printf("resolve: package lookup %s failed: %v", id, err)
		}
		return nil
	}

	return &entity.LinkedEntity{
		Kind:         entity.LinkedEntityPackage,
		ID:           pkg.ID,
		PackageTitle: pkg.Title,
		Destination:  pkg.Destination,
	}
}

func (r *entityResolver) lookupEnterprise(ctx context.Context, id string) *entity.LinkedEntity {
	eo, err := r.enterpriseRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			log.Printf("resolve: enterprise order lookup %s failed: %v", id, err)
		}
		return nil
	}

	return &entity.LinkedEntity{
		Kind:                entity.LinkedEntityEnterprise,
		ID:                  eo.ID,
		DepartureLocation:   eo.DepartureLocation,
		DestinationLocation: eo.DestinationLocation,
	}
}
