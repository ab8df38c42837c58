// Command params-publish stages newly generated snarkVM parameter files under
// their content hash, uploads them to the public S3 space and optionally
// rewrites the hash and size constants in config/parameters.go.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/poly-layer/snarkVM/log"
)

// sourceFiles maps the expected file names in the source directory to the
// prefix of their hash and size constants in config/parameters.go.
var sourceFiles = map[string]string{
	"transfer.ccs":  "TransferCircuit",
	"transfer.pk":   "TransferProvingKey",
	"transfer.vk":   "TransferVerifyingKey",
	"mint.ccs":      "MintCircuit",
	"mint.pk":       "MintProvingKey",
	"mint.vk":       "MintVerifyingKey",
	"fee.ccs":       "FeeCircuit",
	"fee.pk":        "FeeProvingKey",
	"fee.vk":        "FeeVerifyingKey",
	"universal.srs": "UniversalSRS",
}

// Keeps track of files created during program execution
var createdFiles []string

func main() {
	var source string
	var destination string
	var updateConfig bool
	var configPath string
	s3Config := NewDefaultS3Config()

	flag.StringVar(&source, "source", "params", "source folder with the generated parameter files")
	flag.StringVar(&destination, "destination", "staging", "destination folder for the hash-named parameter files")
	flag.BoolVar(&updateConfig, "update-config", false, "update config/parameters.go file with new hashes and sizes")
	flag.StringVar(&configPath, "config-path", "", "path to config/parameters.go file (auto-detected if not specified)")

	flag.BoolVar(&s3Config.Enabled, "s3.enabled", false, "enable S3 uploads")
	flag.StringVar(&s3Config.HostBase, "s3.host-base", s3Config.HostBase, "S3 host base")
	flag.StringVar(&s3Config.AccessKey, "s3.access-key", "", "S3 access key")
	flag.StringVar(&s3Config.SecretKey, "s3.secret-key", "", "S3 secret key")
	flag.StringVar(&s3Config.Space, "s3.space", s3Config.Space, "S3 space (bucket name)")
	flag.StringVar(&s3Config.Bucket, "s3.bucket", s3Config.Bucket, "S3 bucket (release folder name)")

	flag.Parse()
	log.Init("debug", "stdout")

	// Test S3 connection if enabled
	if s3Config.Enabled {
		if err := TestS3Connection(context.Background(), s3Config); err != nil {
			log.Fatalf("S3 connection test failed: %v", err)
		}
	}

	if err := os.MkdirAll(destination, 0o755); err != nil {
		log.Fatalf("error creating destination folder: %v", err)
	}
	log.Infow("staging folder", "path", destination)

	// Hash and size lists keyed by the constant names in config/parameters.go
	hashList := map[string]string{}
	sizeList := map[string]int64{}

	for fileName, constPrefix := range sourceFiles {
		srcPath := filepath.Join(source, fileName)
		if _, err := os.Stat(srcPath); os.IsNotExist(err) {
			log.Warnw("source parameter file not found, skipping", "path", srcPath)
			continue
		}

		hash, size, err := stageFile(srcPath, destination)
		if err != nil {
			log.Fatalf("error staging %s: %v", srcPath, err)
		}
		hashList[constPrefix+"Hash"] = hash
		sizeList[constPrefix+"Size"] = size
		log.Infow("parameter file staged", "file", fileName, "hash", hash, "size", size)
	}

	if len(hashList) == 0 {
		log.Fatalf("no parameter files found in %s", source)
	}

	hashListData, err := json.MarshalIndent(hashList, "", "  ")
	if err != nil {
		log.Fatalf("error marshalling hash list: %v", err)
	}
	fmt.Printf("Hash list: \n%s\n", hashListData)

	// Upload the newly staged parameters to S3 if enabled
	if s3Config.Enabled {
		log.Infow("starting S3 upload", "files_count", len(createdFiles))
		if err := UploadFiles(context.Background(), createdFiles, s3Config); err != nil {
			log.Warnw("failed to upload parameters to S3", "error", err)
		}
	}

	// Update config/parameters.go file if enabled
	if updateConfig {
		log.Infow("updating parameters config file")

		if configPath == "" {
			var err error
			configPath, err = FindParametersConfigFile()
			if err != nil {
				log.Warnw("failed to find parameters.go config file", "error", err)
				return
			}
			log.Infow("found parameters config file", "path", configPath)
		}

		changes, err := CheckHashChanges(hashList, configPath)
		if err != nil {
			log.Warnw("failed to check hash changes", "error", err)
			return
		}
		if len(changes) == 0 {
			log.Infow("no changes needed for parameters config file")
			return
		}
		log.Infow("the following changes will be made to the config file", "changes", changes)

		if err := UpdateParametersConfig(hashList, sizeList, configPath); err != nil {
			log.Warnw("failed to update parameters config file", "error", err)
			return
		}
		log.Infow("parameters config file updated successfully", "path", configPath)
	}
}

// stageFile copies a parameter file into the destination folder under its
// content hash, keeping the original extension, and returns the hash and the
// byte size of the content
func stageFile(srcPath, to string) (string, int64, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warnw("failed to close source file", "error", err)
		}
	}()

	hashFn := sha256.New()

	tempFile, err := os.CreateTemp(to, "temp-*")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file in %s: %w", to, err)
	}
	tempFilename := tempFile.Name()

	// Make sure we clean up the temp file if we encounter an error
	success := false
	defer func() {
		if err := tempFile.Close(); err != nil {
			log.Warnw("failed to close temp file", "error", err)
		}
		if !success {
			if err := os.Remove(tempFilename); err != nil {
				log.Warnw("failed to remove temp file", "error", err, "path", tempFilename)
			}
		}
	}()

	// Hash and copy in a single pass
	size, err := io.Copy(io.MultiWriter(hashFn, tempFile), src)
	if err != nil {
		return "", 0, fmt.Errorf("failed to copy content: %w", err)
	}

	hash := hex.EncodeToString(hashFn.Sum(nil))
	finalFilename := filepath.Join(to, hash+filepath.Ext(srcPath))

	if err := tempFile.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tempFilename, finalFilename); err != nil {
		return "", 0, fmt.Errorf("failed to rename temp file to %s: %w", finalFilename, err)
	}
	success = true

	createdFiles = append(createdFiles, finalFilename)
	return hash, size, nil
}
