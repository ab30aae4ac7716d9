package grpc

import (
	"context"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Refresh pings the database and updates the serving status of both the
// overall and the named service.
func (s *HealthServer) Refresh() healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if s.Haccp == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else if err := s.Haccp.Db.Ping(); err != nil {
		grpcLogger().Warn("Database not reachable", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.SetServingStatus("", status)
	s.SetServingStatus(ServiceName, status)
	return status
}

func (s *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	s.Refresh()
	return s.Server.Check(ctx, req)
}
