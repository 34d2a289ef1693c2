package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/research-gateway/internal/adapter"
	"github.com/MKhiriev/research-gateway/internal/logger"
)

type clientServerInfoService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientServerInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientServerInfoService {
	return &clientServerInfoService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientServerInfoService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchingVersion, err)
	}
	if version == "" {
		return "", ErrVersionIsNotSpecified
	}

	return version, nil
}
