package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/config"
)

// maxStoredOutputBytes caps resultStdout so a job item stays well under the
// 400KB DynamoDB item limit. The full transcript lives in the archive.
const maxStoredOutputBytes = 256 << 10

// DynamoDBAPI is the subset of the DynamoDB client the backend uses.
//
//counterfeiter:generate . DynamoDBAPI
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// dynamoDBBackend implements Backend using AWS DynamoDB. Status transitions
// rely on conditional writes, so several daemons may share one table.
type dynamoDBBackend struct {
	client    DynamoDBAPI
	tableName string
	ttl       time.Duration
}

// NewDynamoDBBackend creates a DynamoDB backend and verifies the table is reachable.
func NewDynamoDBBackend(ctx context.Context, cfg config.DynamoDBConfig) (Backend, error) {
	if cfg.TableName == "" {
		return nil, fmt.Errorf("DynamoDB table name is required")
	}

	awsCfg, err := loadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	var ttl time.Duration
	if cfg.TTLEnabled {
		ttl = cfg.TTLDuration
	}
	backend := NewDynamoDBBackendWithClient(client, cfg.TableName, ttl)

	if err := backend.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("table health check failed: %w", err)
	}
	return backend, nil
}

// NewDynamoDBBackendWithClient creates a DynamoDB backend with an injected client (for testing)
func NewDynamoDBBackendWithClient(client DynamoDBAPI, tableName string, ttl time.Duration) Backend {
	return &dynamoDBBackend{
		client:    client,
		tableName: tableName,
		ttl:       ttl,
	}
}

func (d *dynamoDBBackend) Create(ctx context.Context, job *domain.Job) error {
	item, err := jobToItem(stamp(job))
	if err != nil {
		return &StorageError{Code: "MARSHAL_ERROR", Message: "failed to marshal job", Err: err}
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(jobId)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrJobAlreadyExists
		}
		return &StorageError{Code: "DYNAMODB_ERROR", Message: "failed to create job", Err: err}
	}
	return nil
}

func (d *dynamoDBBackend) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            jobKey(jobID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, &StorageError{Code: "DYNAMODB_ERROR", Message: "failed to get job", Err: err}
	}
	if result.Item == nil {
		return nil, ErrJobNotFound
	}

	job, err := itemToJob(result.Item)
	if err != nil {
		return nil, &StorageError{Code: "UNMARSHAL_ERROR", Message: "failed to unmarshal job", Err: err}
	}
	return job, nil
}

func (d *dynamoDBBackend) Update(ctx context.Context, jobID string, update domain.JobUpdate) error {
	if update.IsEmpty() {
		_, err := d.Get(ctx, jobID)
		return err
	}

	if update.Status != nil {
		_, err := d.conditionalUpdate(ctx, jobID, sources(update, nil), update, "update")
		return err
	}

	expr, values := d.updateExpression(update)
	_, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       jobKey(jobID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(jobId)"),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrJobNotFound
		}
		return &StorageError{Code: "DYNAMODB_ERROR", Message: "failed to update job", Err: err}
	}
	return nil
}

func (d *dynamoDBBackend) CompareAndSwap(ctx context.Context, jobID string, expected []domain.JobStatus, update domain.JobUpdate) (*domain.Job, error) {
	allowed := sources(update, expected)
	if len(allowed) == 0 {
		job, err := d.Get(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if !statusIn(job.Status, expected) {
			return nil, transitionError(jobID, job.Status, expected)
		}
		return nil, checkTransition(jobID, job.Status, update)
	}
	return d.conditionalUpdate(ctx, jobID, allowed, update, "compare-and-swap")
}

// conditionalUpdate applies update only while the stored status is one of
// allowed, and returns the job as written.
func (d *dynamoDBBackend) conditionalUpdate(ctx context.Context, jobID string, allowed []domain.JobStatus, update domain.JobUpdate, op string) (*domain.Job, error) {
	expr, values := d.updateExpression(update)
	placeholders := make([]string, len(allowed))
	for i, s := range allowed {
		key := ":expected" + strconv.Itoa(i)
		placeholders[i] = key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	if expr == "" {
		// A bare status check still has to write something to be atomic.
		expr = "SET jobStatus = jobStatus"
	}

	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(d.tableName),
		Key:                                 jobKey(jobID),
		UpdateExpression:                    aws.String(expr),
		ConditionExpression:                 aws.String("attribute_exists(jobId) AND jobStatus IN (" + strings.Join(placeholders, ", ") + ")"),
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			if ccf.Item == nil {
				return nil, ErrJobNotFound
			}
			current := ""
			if v, ok := ccf.Item["jobStatus"].(*types.AttributeValueMemberS); ok {
				current = v.Value
			}
			return nil, transitionError(jobID, domain.JobStatus(current), allowed)
		}
		return nil, &StorageError{Code: "DYNAMODB_ERROR", Message: "failed to " + op + " job", Err: err}
	}

	job, err := itemToJob(out.Attributes)
	if err != nil {
		return nil, &StorageError{Code: "UNMARSHAL_ERROR", Message: "failed to unmarshal job", Err: err}
	}
	return job, nil
}

func (d *dynamoDBBackend) Delete(ctx context.Context, jobID string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(d.tableName),
		Key:                 jobKey(jobID),
		ConditionExpression: aws.String("attribute_exists(jobId)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrJobNotFound
		}
		return &StorageError{Code: "DYNAMODB_ERROR", Message: "failed to delete job", Err: err}
	}
	return nil
}

func (d *dynamoDBBackend) List(ctx context.Context, filter *Filter) ([]*domain.Job, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(d.tableName),
	}
	if filter != nil && len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		values := make(map[string]types.AttributeValue, len(filter.Statuses))
		for i, s := range filter.Statuses {
			key := ":status" + strconv.Itoa(i)
			placeholders[i] = key
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		input.FilterExpression = aws.String("jobStatus IN (" + strings.Join(placeholders, ", ") + ")")
		input.ExpressionAttributeValues = values
	}

	var jobs []*domain.Job
	for {
		result, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, &StorageError{Code: "DYNAMODB_ERROR", Message: "failed to scan jobs", Err: err}
		}
		for _, item := range result.Items {
			job, err := itemToJob(item)
			if err != nil {
				continue
			}
			jobs = append(jobs, job)
		}
		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	sortNewestFirst(jobs)
	if filter != nil && filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

func (d *dynamoDBBackend) Close() error {
	return nil
}

func (d *dynamoDBBackend) HealthCheck(ctx context.Context) error {
	_, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	if err != nil {
		return &StorageError{Code: "TABLE_NOT_FOUND", Message: "DynamoDB table not accessible", Err: err}
	}
	return nil
}

// updateExpression renders the SET clause for update. Attribute names are
// fixed identifiers, so no ExpressionAttributeNames are needed.
func (d *dynamoDBBackend) updateExpression(update domain.JobUpdate) (string, map[string]types.AttributeValue) {
	var sets []string
	values := make(map[string]types.AttributeValue)
	set := func(attr string, v types.AttributeValue) {
		sets = append(sets, attr+" = :"+attr)
		values[":"+attr] = v
	}

	if update.Status != nil {
		set("jobStatus", &types.AttributeValueMemberS{Value: string(*update.Status)})
		if d.ttl > 0 && update.Status.IsTerminal() {
			set("expiresAt", numberAttr(time.Now().Add(d.ttl).Unix()))
		}
	}
	if update.Node != nil {
		set("node", &types.AttributeValueMemberS{Value: *update.Node})
	}
	if update.CancelFlag != nil {
		set("cancelFlag", &types.AttributeValueMemberBOOL{Value: *update.CancelFlag})
	}
	if update.ResultStdout != nil {
		set("resultStdout", &types.AttributeValueMemberS{Value: domain.TruncateOutput(*update.ResultStdout, maxStoredOutputBytes)})
	}
	if update.ResultStderr != nil {
		set("resultStderr", &types.AttributeValueMemberS{Value: *update.ResultStderr})
	}
	if update.ResultTraceback != nil {
		set("resultTraceback", &types.AttributeValueMemberS{Value: *update.ResultTraceback})
	}
	if update.StartedAt != nil {
		set("startedAt", timeAttr(*update.StartedAt))
	}
	if update.FinishedAt != nil {
		set("finishedAt", timeAttr(*update.FinishedAt))
	}

	if len(sets) == 0 {
		return "", values
	}
	return "SET " + strings.Join(sets, ", "), values
}

// Helper functions

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	// Auto-detect region from EC2 metadata if not specified
	if region == "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err == nil && cfg.Region == "" {
			imdsClient := imds.NewFromConfig(cfg)
			if resp, err := imdsClient.GetRegion(ctx, &imds.GetRegionInput{}); err == nil {
				region = resp.Region
			}
		}
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func jobKey(jobID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"jobId": &types.AttributeValueMemberS{Value: jobID},
	}
}

func timeAttr(t time.Time) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: t.UTC().Format(time.RFC3339Nano)}
}

func numberAttr(n int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

func jobToItem(job *domain.Job) (map[string]types.AttributeValue, error) {
	item := map[string]types.AttributeValue{
		"jobId":      &types.AttributeValueMemberS{Value: job.ID},
		"jobStatus":  &types.AttributeValueMemberS{Value: string(job.Status)},
		"jobType":    &types.AttributeValueMemberS{Value: string(job.JobType)},
		"playbook":   &types.AttributeValueMemberS{Value: job.Playbook},
		"forks":      numberAttr(int64(job.Forks)),
		"verbosity":  numberAttr(int64(job.Verbosity)),
		"useSudo":    &types.AttributeValueMemberBOOL{Value: job.UseSudo},
		"cancelFlag": &types.AttributeValueMemberBOOL{Value: job.CancelFlag},
		"createdAt":  timeAttr(job.CreatedAt),
	}

	optional := map[string]string{
		"name":            job.Name,
		"limit":           job.Limit,
		"inventoryId":     job.Inventory.ID,
		"inventoryName":   job.Inventory.Name,
		"projectId":       job.Project.ID,
		"projectName":     job.Project.Name,
		"projectPath":     job.Project.LocalPath,
		"createdBy":       job.CreatedBy,
		"node":            job.Node,
		"resultStdout":    domain.TruncateOutput(job.ResultStdout, maxStoredOutputBytes),
		"resultStderr":    job.ResultStderr,
		"resultTraceback": job.ResultTraceback,
	}
	for attr, v := range optional {
		if v != "" {
			item[attr] = &types.AttributeValueMemberS{Value: v}
		}
	}

	if len(job.ExtraVars) > 0 {
		b, err := json.Marshal(job.ExtraVars)
		if err != nil {
			return nil, fmt.Errorf("extra vars: %w", err)
		}
		item["extraVars"] = &types.AttributeValueMemberS{Value: string(b)}
	}
	if job.Credential != nil {
		b, err := json.Marshal(job.Credential)
		if err != nil {
			return nil, fmt.Errorf("credential: %w", err)
		}
		item["credential"] = &types.AttributeValueMemberS{Value: string(b)}
	}
	if job.StartedAt != nil {
		item["startedAt"] = timeAttr(*job.StartedAt)
	}
	if job.FinishedAt != nil {
		item["finishedAt"] = timeAttr(*job.FinishedAt)
	}
	return item, nil
}

func itemToJob(item map[string]types.AttributeValue) (*domain.Job, error) {
	str := func(attr string) string {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
			return v.Value
		}
		return ""
	}
	num := func(attr string) int {
		if v, ok := item[attr].(*types.AttributeValueMemberN); ok {
			if n, err := strconv.Atoi(v.Value); err == nil {
				return n
			}
		}
		return 0
	}
	boolean := func(attr string) bool {
		v, ok := item[attr].(*types.AttributeValueMemberBOOL)
		return ok && v.Value
	}
	timestamp := func(attr string) *time.Time {
		s := str(attr)
		if s == "" {
			return nil
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil
		}
		return &t
	}

	job := &domain.Job{
		ID:              str("jobId"),
		Name:            str("name"),
		Status:          domain.JobStatus(str("jobStatus")),
		JobType:         domain.JobType(str("jobType")),
		Playbook:        str("playbook"),
		Forks:           num("forks"),
		Limit:           str("limit"),
		Verbosity:       num("verbosity"),
		UseSudo:         boolean("useSudo"),
		Inventory:       domain.InventoryRef{ID: str("inventoryId"), Name: str("inventoryName")},
		Project:         domain.Project{ID: str("projectId"), Name: str("projectName"), LocalPath: str("projectPath")},
		CreatedBy:       str("createdBy"),
		Node:            str("node"),
		CancelFlag:      boolean("cancelFlag"),
		ResultStdout:    str("resultStdout"),
		ResultStderr:    str("resultStderr"),
		ResultTraceback: str("resultTraceback"),
		StartedAt:       timestamp("startedAt"),
		FinishedAt:      timestamp("finishedAt"),
	}
	if job.ID == "" {
		return nil, fmt.Errorf("item has no jobId")
	}
	if t := timestamp("createdAt"); t != nil {
		job.CreatedAt = *t
	}

	if s := str("extraVars"); s != "" {
		if err := json.Unmarshal([]byte(s), &job.ExtraVars); err != nil {
			return nil, fmt.Errorf("extra vars: %w", err)
		}
	}
	if s := str("credential"); s != "" {
		job.Credential = &domain.Credential{}
		if err := json.Unmarshal([]byte(s), job.Credential); err != nil {
			return nil, fmt.Errorf("credential: %w", err)
		}
	}
	return job, nil
}
