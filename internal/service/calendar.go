package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/erp/internal/calendar"
	"github.com/samandr77/microservices/erp/internal/entity"
)

// CalendarEvents builds the company timeline for the window. With no types every kind is shown.
func (s *Service) CalendarEvents(ctx context.Context, from, to *time.Time, types []entity.EventType) ([]entity.CalendarEvent, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	for _, t := range types {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: unknown event type %q", entity.ErrInvalidArgument, t)
		}
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: end of range is before its start", entity.ErrInvalidArgument)
	}

	src, err := s.repo.CalendarSources(ctx, entity.CalendarFilter{
		CompanyID: user.CompanyID,
		From:      from,
		To:        to,
		Types:     types,
	})
	if err != nil {
		return nil, fmt.Errorf("load calendar sources: %w", err)
	}

	events := calendar.FilterRange(calendar.Aggregate(src, entity.DefaultEventFilters().Only(types...)), from, to)

	slog.DebugContext(ctx, "calendar built", "events", len(events))

	return events, nil
}
