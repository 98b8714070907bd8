package client

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
)

// Client bundles the process-wide backend handles. Each handle is
// constructed once at startup and injected into the gateways instead of
// being imported as an ambient global.
type Client struct {
	Mongo *mongo.Client
	S3    *s3.Client
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) GracefulShutdown(log *logger.Logger) {
	if c.Mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect MongoDB client", "error", err)
		return
	}
	log.Info("MongoDB client disconnected")
}
