package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/erp/internal/entity"
)

type DownloadedReport struct {
	Report entity.GeneratedReport
	Data   []byte
}

func (s *Service) DownloadReport(ctx context.Context, id uuid.UUID) (DownloadedReport, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return DownloadedReport{}, err
	}

	rep, err := s.repo.GeneratedReport(ctx, user.CompanyID, id)
	if err != nil {
		return DownloadedReport{}, fmt.Errorf("report %s: %w", id, err)
	}

	data, err := s.storage.Download(ctx, rep.ObjectKey)
	if err != nil {
		return DownloadedReport{}, fmt.Errorf("download report: %w", err)
	}

	return DownloadedReport{Report: rep, Data: data}, nil
}
