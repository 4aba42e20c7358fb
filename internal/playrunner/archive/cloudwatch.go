package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"

	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/logger"
)

// CloudWatch Logs limits. Every event costs 26 bytes on top of its message.
const (
	eventOverhead  = 26
	maxEventBytes  = 256*1024 - eventOverhead
	maxBatchEvents = 10000
	maxBatchBytes  = 1024 * 1024
)

// CloudWatchLogsAPI is the subset of the CloudWatch Logs client the sink uses.
//
//counterfeiter:generate . CloudWatchLogsAPI
type CloudWatchLogsAPI interface {
	CreateLogGroup(ctx context.Context, params *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error)
	CreateLogStream(ctx context.Context, params *cloudwatchlogs.CreateLogStreamInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogStreamOutput, error)
	PutRetentionPolicy(ctx context.Context, params *cloudwatchlogs.PutRetentionPolicyInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutRetentionPolicyOutput, error)
	PutLogEvents(ctx context.Context, params *cloudwatchlogs.PutLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutLogEventsOutput, error)
}

// CloudWatchSink writes transcripts to CloudWatch Logs. All jobs of a node
// share the log group {prefix}/{nodeID}/jobs; each job gets the stream
// {jobID}-stdout.
type CloudWatchSink struct {
	client        CloudWatchLogsAPI
	logGroup      string
	retentionDays int32
	logger        *logger.Logger
	now           func() time.Time

	cacheMutex     sync.Mutex
	groupReady     bool
	createdStreams map[string]bool
}

// NewCloudWatchSink loads the default AWS credential chain and returns a sink
// for the given node.
func NewCloudWatchSink(ctx context.Context, cfg config.CloudWatchConfig, nodeID string) (*CloudWatchSink, error) {
	log := logger.WithField("component", "cloudwatch-archive")

	region := cfg.Region
	if region == "" {
		detected, err := detectEC2Region(ctx)
		if err != nil {
			log.Warn("failed to auto-detect AWS region, using us-east-1 as default", "error", err)
			region = "us-east-1"
		} else {
			region = detected
			log.Info("auto-detected AWS region from EC2 metadata", "region", region)
		}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	sink := NewCloudWatchSinkWithClient(cloudwatchlogs.NewFromConfig(awsCfg), cfg, nodeID)
	log.Info("CloudWatch archive initialized", "region", region, "logGroup", sink.logGroup)
	return sink, nil
}

// NewCloudWatchSinkWithClient builds a sink around an existing client.
func NewCloudWatchSinkWithClient(client CloudWatchLogsAPI, cfg config.CloudWatchConfig, nodeID string) *CloudWatchSink {
	prefix := cfg.LogGroupPrefix
	if prefix == "" {
		prefix = "/playrunner"
	}
	if nodeID == "" {
		nodeID = "default"
	}
	return &CloudWatchSink{
		client:         client,
		logGroup:       fmt.Sprintf("%s/%s/jobs", prefix, nodeID),
		retentionDays:  cfg.RetentionDays,
		logger:         logger.WithField("component", "cloudwatch-archive"),
		now:            time.Now,
		createdStreams: make(map[string]bool),
	}
}

// LogGroup returns the log group the sink writes to.
func (s *CloudWatchSink) LogGroup() string {
	return s.logGroup
}

// StreamName returns the log stream holding a job's transcript.
func StreamName(jobID string) string {
	return jobID + "-stdout"
}

// Append writes one transcript chunk. The chunk is split on newlines and
// oversized lines are cut to fit CloudWatch event limits.
func (s *CloudWatchSink) Append(ctx context.Context, jobID string, chunk []byte) error {
	events := s.toEvents(chunk)
	if len(events) == 0 {
		return nil
	}

	stream := StreamName(jobID)
	if err := s.ensureLogGroup(ctx); err != nil {
		return fmt.Errorf("failed to ensure log group: %w", err)
	}
	if err := s.ensureLogStream(ctx, stream); err != nil {
		return fmt.Errorf("failed to ensure log stream: %w", err)
	}

	start, size := 0, 0
	for i, ev := range events {
		evSize := len(aws.ToString(ev.Message)) + eventOverhead
		if i-start == maxBatchEvents || size+evSize > maxBatchBytes {
			if err := s.put(ctx, stream, events[start:i]); err != nil {
				return err
			}
			start, size = i, 0
		}
		size += evSize
	}
	if err := s.put(ctx, stream, events[start:]); err != nil {
		return err
	}

	s.logger.Debug("archived transcript chunk", "jobId", jobID, "events", len(events), "bytes", len(chunk))
	return nil
}

func (s *CloudWatchSink) Close() error {
	return nil
}

func (s *CloudWatchSink) put(ctx context.Context, stream string, events []types.InputLogEvent) error {
	if len(events) == 0 {
		return nil
	}
	_, err := s.client.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
		LogGroupName:  aws.String(s.logGroup),
		LogStreamName: aws.String(stream),
		LogEvents:     events,
	})
	if err != nil {
		return fmt.Errorf("failed to put log events: %w", err)
	}
	return nil
}

// toEvents converts a chunk into log events sharing one timestamp.
// CloudWatch rejects empty messages, so blank lines are dropped.
func (s *CloudWatchSink) toEvents(chunk []byte) []types.InputLogEvent {
	ts := aws.Int64(s.now().UnixMilli())
	var events []types.InputLogEvent
	for _, line := range bytes.Split(chunk, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		for len(line) > 0 {
			n := len(line)
			if n > maxEventBytes {
				n = maxEventBytes
			}
			events = append(events, types.InputLogEvent{
				Message:   aws.String(string(line[:n])),
				Timestamp: ts,
			})
			line = line[n:]
		}
	}
	return events
}

func (s *CloudWatchSink) ensureLogGroup(ctx context.Context) error {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	if s.groupReady {
		return nil
	}

	_, err := s.client.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(s.logGroup),
	})
	if err != nil && !alreadyExists(err) {
		return err
	}
	if err == nil {
		s.logger.Info("created CloudWatch log group", "logGroup", s.logGroup)
		if s.retentionDays > 0 {
			_, rerr := s.client.PutRetentionPolicy(ctx, &cloudwatchlogs.PutRetentionPolicyInput{
				LogGroupName:    aws.String(s.logGroup),
				RetentionInDays: aws.Int32(s.retentionDays),
			})
			if rerr != nil {
				s.logger.Warn("failed to set log group retention", "logGroup", s.logGroup, "error", rerr)
			}
		}
	}
	s.groupReady = true
	return nil
}

func (s *CloudWatchSink) ensureLogStream(ctx context.Context, stream string) error {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	if s.createdStreams[stream] {
		return nil
	}

	_, err := s.client.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(s.logGroup),
		LogStreamName: aws.String(stream),
	})
	if err != nil && !alreadyExists(err) {
		return err
	}
	s.createdStreams[stream] = true
	return nil
}

func alreadyExists(err error) bool {
	var exists *types.ResourceAlreadyExistsException
	return errors.As(err, &exists)
}

// detectEC2Region attempts to detect the AWS region from EC2 metadata service
func detectEC2Region(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	result, err := imds.NewFromConfig(cfg).GetRegion(ctx, &imds.GetRegionInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get region from EC2 metadata: %w", err)
	}
	return result.Region, nil
}
