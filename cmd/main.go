package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/spf13/cobra"

	"s3load/benchmark"
	"s3load/config"
	"s3load/logging"
	"s3load/report"
)

const version = "0.3.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := benchmark.ExitOK

	root := &cobra.Command{
		Use:          "s3load",
		Short:        "Command-line tool for loading data to S3-compatible storage",
		Version:      version,
		SilenceUsage: true,
	}

	var (
		endpoint    string
		accessKey   string
		secretKey   string
		bucket      string
		objectCount int
		objectSize  string
		insecure    bool
		location    string
		rateLimit   int
	)

	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload random objects to an S3 bucket and measure performance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if objectCount < 0 {
				return fmt.Errorf("--object-count must be non-negative, got %d", objectCount)
			}

			logger, err := logging.Open()
			if err != nil {
				return fmt.Errorf("open run log: %w", err)
			}
			defer logger.Close()

			if err := benchmark.SetMaxResources(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not adjust resource limits: %v\n", err)
			}

			client, err := config.NewS3Client(cmd.Context(), config.S3Config{
				Endpoint:        endpoint,
				AccessKeyID:     accessKey,
				SecretAccessKey: secretKey,
				Region:          location,
				Insecure:        insecure,
			})
			if err != nil {
				return fmt.Errorf("initialize storage client: %w", err)
			}

			runner := benchmark.NewRunner(manager.NewUploader(client), report.New(logger))
			runner.Progress = true

			_, code := runner.Run(cmd.Context(), benchmark.UploadParams{
				Endpoint:    endpoint,
				Bucket:      bucket,
				Location:    location,
				ObjectCount: objectCount,
				ObjectSize:  objectSize,
				RateLimit:   rateLimit,
			})
			exitCode = code
			return nil
		},
	}

	f := uploadCmd.Flags()
	f.StringVarP(&endpoint, "endpoint", "e", "", "S3 endpoint URL (e.g. https://s3.amazonaws.com or custom)")
	f.StringVar(&accessKey, "s3key", "", "S3 access key (access key ID)")
	f.StringVar(&secretKey, "s3secret", "", "S3 secret key (secret access key)")
	f.StringVarP(&bucket, "bucket", "b", "", "target S3 bucket name")
	f.IntVarP(&objectCount, "object-count", "n", 100, "number of objects to upload")
	f.StringVarP(&objectSize, "object-size", "s", "4k", "object size, accepts suffix k/m/g (e.g. 4k, 8m, 2g)")
	f.BoolVar(&insecure, "insecure", false, "disable TLS certificate verification (NOT recommended)")
	f.StringVar(&location, "location", "us-east-1", "region name")
	f.IntVar(&rateLimit, "rate-limit", 0, "max uploads per second, 0 means no limit")

	for _, name := range []string{"endpoint", "s3key", "s3secret", "bucket"} {
		if err := uploadCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	root.AddCommand(uploadCmd)
	root.SetArgs(args)

	if err := root.ExecuteContext(context.Background()); err != nil {
		return benchmark.ExitBadArguments
	}
	return exitCode
}
