package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"officeit/internal/catalog"
	"officeit/internal/repositories"
	"officeit/internal/services"
)

// EventFeaturedOverflow is published when more than catalog.MaxFeatured
// products are featured, which concurrent admin sessions can cause on
// databases that do not serialize the check.
const EventFeaturedOverflow = "product.featured_overflow"

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// FeaturedAudit checks the featured ceiling.
type FeaturedAudit struct {
	products repositories.ProductRepository
	events   services.EventPublisher
}

// NewFeaturedAudit creates a FeaturedAudit. events may be nil.
func NewFeaturedAudit(products repositories.ProductRepository, events services.EventPublisher) *FeaturedAudit {
	return &FeaturedAudit{products: products, events: events}
}

// Run counts featured products and reports an overflow. It returns the count.
func (a *FeaturedAudit) Run() (int, error) {
	n, err := a.products.CountFeatured()
	if err != nil {
		return 0, fmt.Errorf("featured audit: %w", err)
	}
	if n > catalog.MaxFeatured {
		zap.S().Warnw("featured ceiling exceeded", "featured", n, "max", catalog.MaxFeatured)
		if a.events != nil {
			if err := a.events.Publish(EventFeaturedOverflow, map[string]int{"featured": n, "max": catalog.MaxFeatured}); err != nil {
				zap.S().Warnw("failed to publish event", "routing_key", EventFeaturedOverflow, "error", err)
			}
		}
	}
	return n, nil
}

// Schedule starts a cron scheduler running the audit on spec, e.g.
// "@every 10m". Stop the returned scheduler on shutdown.
func Schedule(spec string, audit *FeaturedAudit) (*cron.Cron, error) {
	sched := cron.New(cron.WithParser(cronParser))
	_, err := sched.AddFunc(spec, func() {
		if _, err := audit.Run(); err != nil {
			zap.S().Errorf("featured audit failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid featured audit schedule %q: %w", spec, err)
	}
	sched.Start()
	return sched, nil
}
