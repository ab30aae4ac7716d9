package grpc

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/proto"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp"
)

// ServiceName is reported next to the overall "" service.
const ServiceName = "haccp.AlertService"

type HealthServer struct {
	Haccp            *haccp.HACCP
	RateLimiterStore *haccp.RateLimiterStore
	*health.Server
}

func NewHealthServer(h *haccp.HACCP, limiterStore *haccp.RateLimiterStore) *HealthServer {
	return &HealthServer{
		Haccp:            h,
		RateLimiterStore: limiterStore,
		Server:           health.NewServer(),
	}
}

// Register builds a grpc.Server with the limiter interceptor and the health
// service attached.
func (s *HealthServer) Register(opts ...grpc.ServerOption) *grpc.Server {
	interceptor := s.CreateRateLimitInterceptor([]proto.Message{
		&healthpb.HealthCheckRequest{},
	})
	server := grpc.NewServer(append(opts, grpc.UnaryInterceptor(interceptor))...)
	healthpb.RegisterHealthServer(server, s)

	s.Refresh()
	return server
}

func grpcLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameGrpcServer)
}

func (s *HealthServer) GetLimiter(peerAddr string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(peerAddr)
	}
}

func (s *HealthServer) CheckPeerLimiter(peerAddr string) bool {
	limiter := s.GetLimiter(peerAddr)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}
