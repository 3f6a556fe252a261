// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyQCDecision informs the uploader about a reviewer's verdict.
func (n *NotificationService) NotifyQCDecision(ctx context.Context, decision string, asset model.Asset) error {
	switch decision {
	case "approved":
		logger.Info("NOTIFICATION: Asset approved",
			zap.Int64("assetID", asset.ID),
			zap.String("assetName", asset.Name),
			zap.String("uploader", asset.CreatedBy))
	case "rejected":
		logger.Info("NOTIFICATION: Asset rejected",
			zap.Int64("assetID", asset.ID),
			zap.String("assetName", asset.Name),
			zap.String("uploader", asset.CreatedBy))
	case "rework_requested":
		logger.Info("NOTIFICATION: Rework requested",
			zap.Int64("assetID", asset.ID),
			zap.String("assetName", asset.Name),
			zap.Int("reworkCount", asset.ReworkCount))
	default:
		return fmt.Errorf("unknown decision type: %s", decision)
	}

	// Here you would implement the actual notification logic
	// This could involve sending messages to a queue, calling an external API, etc.

	return nil
}

// NotifyAssetChange announces asset lifecycle events outside QC.
func (n *NotificationService) NotifyAssetChange(ctx context.Context, changeType string, asset model.Asset) error {
	logger.Info("Notifying asset change",
		zap.String("changeType", changeType),
		zap.Int64("assetID", asset.ID),
		zap.String("assetName", asset.Name))
	return nil
}

// NotifyAdmins alerts all system administrators.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
