// Package wordlist loads replacement common-PIN lists from S3-compatible
// object storage at startup. The embedded defaults stand whenever the bucket
// is not configured or a fetch fails.
package wordlist

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/0xabhi/mpin-api/internal/mpin"
)

type Loader struct {
	Client *s3.Client
	Bucket string
}

// NewFromEnv initializes an S3-compatible client (AWS or R2) from
// WORDLIST_BUCKET plus the usual AWS_* variables.
func NewFromEnv(ctx context.Context) (*Loader, error) {
	bucket := os.Getenv("WORDLIST_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("WORDLIST_BUCKET not set")
	}
	endpoint := os.Getenv("AWS_ENDPOINT")
	region := os.Getenv("AWS_REGION")

	creds := credentials.NewStaticCredentialsProvider(
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &Loader{Client: client, Bucket: bucket}, nil
}

// Fetch downloads one wordlist object and parses it into PIN entries
// (same line format as the embedded lists).
func (l *Loader) Fetch(ctx context.Context, key string) ([]string, error) {
	out, err := l.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch wordlist %s: %w", key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", key, err)
	}
	return mpin.ParseList(string(raw)), nil
}

// LoadTables fetches both lists and builds tables from them. Keys default to
// common_pins_4.txt / common_pins_6.txt and may be overridden with
// WORDLIST_KEY_4 / WORDLIST_KEY_6.
func (l *Loader) LoadTables(ctx context.Context) (mpin.Tables, error) {
	key4 := envOr("WORDLIST_KEY_4", "common_pins_4.txt")
	key6 := envOr("WORDLIST_KEY_6", "common_pins_6.txt")

	four, err := l.Fetch(ctx, key4)
	if err != nil {
		return mpin.Tables{}, err
	}
	six, err := l.Fetch(ctx, key6)
	if err != nil {
		return mpin.Tables{}, err
	}
	return mpin.NewTables(four, six), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
