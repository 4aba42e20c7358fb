// Package client is the Go client for a playrunner daemon.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/ehsaniara/playrunner/api"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/security"
)

type JobClient struct {
	jobClient api.JobServiceClient
	conn      *grpc.ClientConn
}

// NewJobClient connects to the daemon named in the client configuration.
func NewJobClient(cfg config.ClientConfig) (*JobClient, error) {
	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}

	creds := insecure.NewCredentials()
	if cfg.CAFile != "" {
		tlsConfig, err := security.LoadClientTLSConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		creds = credentials.NewTLS(tlsConfig)
	}

	conn, err := grpc.NewClient(
		cfg.ServerAddress,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server %s: %w", cfg.ServerAddress, err)
	}

	return NewJobClientWithConn(conn), nil
}

// NewJobClientWithConn wraps an existing connection; Close closes it.
func NewJobClientWithConn(conn *grpc.ClientConn) *JobClient {
	return &JobClient{
		jobClient: api.NewJobServiceClient(conn),
		conn:      conn,
	}
}

func (c *JobClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *JobClient) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	req, err := api.ToStruct(job)
	if err != nil {
		return nil, err
	}
	res, err := c.jobClient.CreateJob(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeJob(res)
}

func (c *JobClient) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	res, err := c.jobClient.GetJob(ctx, wrapperspb.String(id))
	if err != nil {
		return nil, err
	}
	return decodeJob(res)
}

func (c *JobClient) ListJobs(ctx context.Context, statuses []domain.JobStatus, limit int) ([]*domain.Job, error) {
	req, err := api.ToStruct(api.ListRequest{Statuses: statuses, Limit: limit})
	if err != nil {
		return nil, err
	}
	res, err := c.jobClient.ListJobs(ctx, req)
	if err != nil {
		return nil, err
	}
	var out api.ListResponse
	if err := api.FromStruct(res, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// StartJob queues the job. The returned job is in status pending.
func (c *JobClient) StartJob(ctx context.Context, id string, overrides map[string]string) (*domain.Job, error) {
	req, err := api.ToStruct(api.StartRequest{ID: id, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	res, err := c.jobClient.StartJob(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeJob(res)
}

func (c *JobClient) CancelJob(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := c.jobClient.CancelJob(ctx, wrapperspb.String(id))
	if err != nil {
		if s, ok := status.FromError(err); ok {
			if s.Code() == codes.DeadlineExceeded {
				return false, fmt.Errorf("timeout while canceling job %s: server may still be processing the request", id)
			}
		}
		return false, err
	}
	return resp.GetValue(), nil
}

func (c *JobClient) PasswordsNeeded(ctx context.Context, id string, overrides map[string]string) ([]string, error) {
	req, err := api.ToStruct(api.StartRequest{ID: id, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	res, err := c.jobClient.PasswordsNeeded(ctx, req)
	if err != nil {
		return nil, err
	}
	var out api.PasswordsResponse
	if err := api.FromStruct(res, &out); err != nil {
		return nil, err
	}
	return out.Fields, nil
}

// WatchJob streams updates to fn until the job reaches a terminal status or
// the stream ends.
func (c *JobClient) WatchJob(ctx context.Context, id string, fn func(api.WatchUpdate) error) error {
	stream, err := c.jobClient.WatchJob(ctx, wrapperspb.String(id))
	if err != nil {
		return fmt.Errorf("failed to start watch stream: %w", err)
	}
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		var update api.WatchUpdate
		if err := api.FromStruct(msg, &update); err != nil {
			return err
		}
		if err := fn(update); err != nil {
			return err
		}
		if update.Final {
			return nil
		}
	}
}

func decodeJob(s *structpb.Struct) (*domain.Job, error) {
	var job domain.Job
	if err := api.FromStruct(s, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
