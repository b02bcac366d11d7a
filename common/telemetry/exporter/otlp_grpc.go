package exporter

import (
	"crypto/tls"
	"fmt"

	"github.com/narender/store-manager/common/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// newOTLPGrpcConnection opens the client connection shared by one signal's exporter.
func newOTLPGrpcConnection(cfg *config.Config, logger *logrus.Logger, signalType string) (*grpc.ClientConn, error) {
	var transportCreds credentials.TransportCredentials
	if cfg.OtelInsecure {
		transportCreds = insecure.NewCredentials()
		logger.Warnf("Using insecure gRPC connection for OTLP %s exporter", signalType)
	} else {
		logger.Infof("Using secure gRPC connection for OTLP %s exporter", signalType)
		transportCreds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(cfg.OtelEndpoint, grpc.WithTransportCredentials(transportCreds))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP %s client for %s: %w", signalType, cfg.OtelEndpoint, err)
	}
	logger.Infof("OTLP gRPC client for %s targets %s", signalType, cfg.OtelEndpoint)
	return conn, nil
}
