package components

import (
	"log/slog"

	"barangay-reservation/internal/infra/gateway"
	"barangay-reservation/internal/pkg/clock"
	"barangay-reservation/internal/pkg/config"
	"barangay-reservation/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewFileStore,
		NewSMSGateway,
	),
)

func NewFileStore(cfg config.Config, client *s3.Client, clk clock.Clock, logger *slog.Logger) commands.FileStore {
	if cfg.AWS.UploadBucket == "" {
		logger.Info("S3_UPLOAD_BUCKET not set, payment proof uploads are disabled")
		return gateway.DisabledFileStore{}
	}
	return gateway.NewS3FileStore(client, cfg.AWS.UploadBucket, clk)
}

func NewSMSGateway(cfg config.Config, client *sns.Client) commands.SMSGateway {
	if !cfg.AWS.SMSEnabled {
		return gateway.LogSMSGateway{}
	}
	return gateway.NewSNSSMSGateway(client, cfg.AWS.SMSSenderID)
}
