package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stahnma/gh-devfinder/internal/commands"
)

// Event is the invocation payload. An empty Query falls back to the
// configured default query.
type Event struct {
	Query string `json:"query"`
}

// Uploader is the subset of the S3 client used to store exports.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewUploader builds an S3 client for region from the default AWS
// credential chain.
func NewUploader(ctx context.Context, region string) (Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// NewHandler returns a Lambda handler function that exports search results
// and uploads them to S3. A nil newUploader selects NewUploader.
func NewHandler(app *commands.App, newUploader func(ctx context.Context, region string) (Uploader, error)) func(context.Context, json.RawMessage) (string, error) {
	if newUploader == nil {
		newUploader = NewUploader
	}
	return func(ctx context.Context, payload json.RawMessage) (string, error) {
		var event Event
		if len(payload) > 0 && string(payload) != "null" {
			if err := json.Unmarshal(payload, &event); err != nil {
				return "", fmt.Errorf("decoding event: %w", err)
			}
		}
		query := strings.TrimSpace(event.Query)
		if query == "" {
			query = app.Config.DefaultQuery
		}

		bucket, key := app.Config.S3Bucket, app.Config.S3ObjectKey
		if bucket == "" || key == "" {
			return "", errors.New("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		var buf bytes.Buffer
		if err := app.ExportJSON(ctx, &buf, query); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
		if buf.Len() == 0 {
			return "", errors.New("export command produced no output")
		}

		if strings.Contains(key, "%s") {
			key = fmt.Sprintf(key, time.Now().Format("2006-Jan-02"))
		}

		svc, err := newUploader(ctx, app.Config.AWSRegion)
		if err != nil {
			return "", err
		}
		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload file to S3: %w", err)
		}

		app.Logger.WithField("key", key).Info("export uploaded")
		return "Lambda executed successfully and output uploaded to S3", nil
	}
}
