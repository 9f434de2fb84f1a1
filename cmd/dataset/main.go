// cmd/dataset/main.go
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopsight/inventory-ai/internal/dataset"
	"github.com/shopsight/inventory-ai/internal/drive"
	"github.com/shopsight/inventory-ai/internal/storage"
	"github.com/urfave/cli/v2"
)

func newOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Usage:   "Path of the converted inventory events CSV",
		Value:   "./data/output/retail_inventory_events.csv",
		EnvVars: []string{"DATASET_OUTPUT"},
	}
}

func newLocationFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "location",
		Usage:   "Warehouse label stamped on every event",
		Value:   "Warehouse A",
		EnvVars: []string{"DATASET_LOCATION"},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "dataset",
		Usage: "Fetch the retail inventory dataset and reshape it into event CSV rows",
		Commands: []*cli.Command{
			{
				Name:  "convert",
				Usage: "Convert an already-downloaded dataset directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input-dir",
						Usage:    "Directory tree to scan for the dataset CSV",
						Required: true,
						EnvVars:  []string{"DATASET_INPUT_DIR"},
					},
					newOutputFlag(),
					newLocationFlag(),
				},
				Action: runConvert,
			},
			{
				Name:  "fetch",
				Usage: "Download dataset files from a remote source, then convert",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Usage:   "Remote source to pull from (s3 or drive)",
						Value:   "s3",
						EnvVars: []string{"DATASET_SOURCE"},
					},
					&cli.StringFlag{
						Name:    "download-dir",
						Usage:   "Local directory downloaded files land in",
						Value:   "./data/tmp/dataset",
						EnvVars: []string{"APP_DOWNLOAD_DIR"},
					},
					&cli.StringFlag{Name: "s3-endpoint", EnvVars: []string{"S3_ENDPOINT"}},
					&cli.StringFlag{Name: "s3-access-key", EnvVars: []string{"S3_ACCESS_KEY"}},
					&cli.StringFlag{Name: "s3-secret-key", EnvVars: []string{"S3_SECRET_KEY"}},
					&cli.StringFlag{Name: "s3-bucket", EnvVars: []string{"S3_BUCKET"}},
					&cli.StringFlag{Name: "s3-region", EnvVars: []string{"S3_REGION"}},
					&cli.BoolFlag{Name: "s3-use-ssl", Value: true, EnvVars: []string{"S3_USE_SSL"}},
					&cli.StringFlag{
						Name:    "s3-prefix",
						Usage:   "Object key prefix holding the dataset",
						Value:   "datasets/retail-store-inventory",
						EnvVars: []string{"S3_PREFIX"},
					},
					&cli.StringFlag{
						Name:    "drive-folder",
						Usage:   "Google Drive folder path holding the dataset",
						EnvVars: []string{"DRIVE_FOLDER"},
					},
					newOutputFlag(),
					newLocationFlag(),
				},
				Action: runFetch,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runConvert(c *cli.Context) error {
	summary, err := dataset.Convert(c.String("input-dir"), c.String("output"), c.String("location"))
	printSummary(summary)
	if err != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func runFetch(c *cli.Context) error {
	downloadDir := c.String("download-dir")

	var err error
	switch c.String("source") {
	case "s3":
		err = fetchFromS3(c, downloadDir)
	case "drive":
		err = fetchFromDrive(c, downloadDir)
	default:
		err = fmt.Errorf("unknown source %q (expected s3 or drive)", c.String("source"))
	}
	if err != nil {
		printSummary(dataset.Summary{Success: false, Error: err.Error()})
		return cli.Exit("", 1)
	}

	summary, err := dataset.Convert(downloadDir, c.String("output"), c.String("location"))
	printSummary(summary)
	if err != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func fetchFromS3(c *cli.Context, downloadDir string) error {
	client, err := storage.NewS3Client(storage.S3Config{
		Endpoint:  c.String("s3-endpoint"),
		AccessKey: c.String("s3-access-key"),
		SecretKey: c.String("s3-secret-key"),
		Bucket:    c.String("s3-bucket"),
		Region:    c.String("s3-region"),
		UseSSL:    c.Bool("s3-use-ssl"),
	})
	if err != nil {
		return err
	}

	_, err = dataset.FetchFromObjectStorage(c.Context, client, c.String("s3-prefix"), downloadDir)

	return err
}

func fetchFromDrive(c *cli.Context, downloadDir string) error {
	credentials := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON")
	if credentials == "" {
		return fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_JSON must be set for the drive source")
	}

	svc, err := drive.NewService(credentials)
	if err != nil {
		return err
	}

	_, err = dataset.FetchFromDrive(svc, c.String("drive-folder"), downloadDir)

	return err
}

func printSummary(summary dataset.Summary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		log.Printf("failed to marshal summary: %v", err)
		return
	}
	fmt.Println(string(payload))
}
