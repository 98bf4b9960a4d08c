package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/blizzard-html/blizzard/internal/config"
	"github.com/blizzard-html/blizzard/internal/demo"
	"github.com/blizzard-html/blizzard/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the site to an S3 bucket",
		Long: `Publish the site to an S3 bucket.

Every registered page is rendered and uploaded as an object under
the configured prefix. Credentials are read from the standard AWS
environment variables (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
and optionally AWS_SESSION_TOKEN).

Examples:
  blizzard publish
  blizzard publish --bucket=my-site --region=us-east-1
  blizzard publish --prefix=staging/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (default from blizzard.json)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Object key prefix (default from blizzard.json)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "Bucket AWS region (default from blizzard.json)")

	return cmd
}

func runPublish(bucket, prefix, region string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}

	if cfg.Publish.Bucket == "" {
		return fmt.Errorf("no bucket configured: set publish.bucket in %s or pass --bucket", config.ConfigFileName)
	}
	if cfg.Publish.Region == "" {
		return fmt.Errorf("no region configured: set publish.region in %s or pass --region", config.ConfigFileName)
	}

	printBanner()
	fmt.Println("  publish")
	fmt.Println()

	client := s3.New(s3.Options{
		Region:      cfg.Publish.Region,
		Credentials: envCredentials(),
	})

	s := demo.Site()
	pub := publish.NewS3Publisher(client, cfg.Publish.Bucket, cfg.Publish.Prefix)

	info("Publishing %d pages to s3://%s/%s", s.Len(), cfg.Publish.Bucket, cfg.Publish.Prefix)
	if err := pub.PublishSite(context.Background(), s); err != nil {
		return err
	}

	success("Published %d pages", s.Len())
	return nil
}

// envCredentials resolves static credentials from the standard AWS
// environment variables.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, fmt.Errorf("AWS credentials not set in environment")
		}
		return creds, nil
	})
}
