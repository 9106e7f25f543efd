package utils

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Client struct {
	Client healthpb.HealthClient
	Ctx    context.Context
	conn   *grpc.ClientConn
	cancel context.CancelFunc
}

// Utility function to create a gRPC health client to `url`
// Has to be closed (`c.Close()`)
func HealthCall(url string) (Client, error) {
	conn, err := grpc.Dial(
		url,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return Client{}, err
	}
	client := healthpb.NewHealthClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	return Client{
		conn:   conn,
		Client: client,
		Ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (c Client) Close() {
	c.cancel()
	c.conn.Close()
}

func FailOnError(format string, err error, v ...any) {
	if err != nil {
		logger.Fatalf("%s: %v", fmt.Sprintf(format, v...), err)
	}
}
