package export

import (
	"context"

	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// Format selects the backend file rendering.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Service fetches backend-rendered export files and forwards active list
// filters so exported rows match what the caller sees on screen.
type Service struct {
	client *farmapi.Client
	logger *zap.Logger
}

// NewService wires a new export service instance.
func NewService(client *farmapi.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Inventory downloads the inventory export in the requested format.
func (s *Service) Inventory(ctx context.Context, format Format, filter manager.Filter) (*farmapi.Blob, error) {
	return s.download(ctx, "/inventory/export/"+string(format), filter)
}

// Sales downloads the sales export in the requested format.
func (s *Service) Sales(ctx context.Context, format Format, filter manager.Filter) (*farmapi.Blob, error) {
	return s.download(ctx, "/sales/export/"+string(format), filter)
}

// Expenses downloads the expense ledger export in the requested format.
func (s *Service) Expenses(ctx context.Context, format Format, filter manager.Filter) (*farmapi.Blob, error) {
	return s.download(ctx, "/accounting/expenses/export/"+string(format), filter)
}

// Revenue downloads the revenue ledger export in the requested format.
func (s *Service) Revenue(ctx context.Context, format Format, filter manager.Filter) (*farmapi.Blob, error) {
	return s.download(ctx, "/accounting/revenue/export/"+string(format), filter)
}

// Upload pushes a photo or receipt scan to backend storage and returns the
// stored URL.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	url, err := s.client.Upload(ctx, filename, data)
	if err != nil {
		s.logger.Warn("upload failed", zap.String("filename", filename), zap.Error(err))
		return "", err
	}
	s.logger.Info("file uploaded", zap.String("filename", filename), zap.String("url", url))
	return url, nil
}

func (s *Service) download(ctx context.Context, path string, filter manager.Filter) (*farmapi.Blob, error) {
	blob, err := s.client.Download(ctx, path, filter.ActiveFilters())
	if err != nil {
		s.logger.Warn("export download failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	s.logger.Info("export downloaded",
		zap.String("path", path),
		zap.String("filename", blob.Filename),
		zap.Int("bytes", len(blob.Data)))
	return blob, nil
}
