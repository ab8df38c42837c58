package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/poly-layer/snarkVM/log"
)

// UpdateParametersConfig updates the hash and size constants in the
// config/parameters.go file with the values from the provided lists
func UpdateParametersConfig(hashList map[string]string, sizeList map[string]int64, configPath string) error {
	// Ensure the config path is an absolute path
	absConfigPath, err := filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for config: %w", err)
	}

	if _, err := os.Stat(absConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist at path: %s", absConfigPath)
	}

	content, err := os.ReadFile(absConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	modifiedContent := string(content)

	// Update hash constants in the file
	for constName, newHash := range hashList {
		pattern := fmt.Sprintf(`(%s\s*=\s*")([a-f0-9]+)(")`, constName)
		re := regexp.MustCompile(pattern)

		if !re.MatchString(modifiedContent) {
			log.Warnw("pattern not found in config file", "constant", constName)
			continue
		}

		modifiedContent = re.ReplaceAllString(modifiedContent, "${1}"+newHash+"${3}")
		log.Infow("updated hash constant", "constant", constName, "new_hash", newHash)
	}

	// Update size constants in the file
	for constName, newSize := range sizeList {
		pattern := fmt.Sprintf(`(%s\s*=\s*int64\()([0-9_]+)(\))`, constName)
		re := regexp.MustCompile(pattern)

		if !re.MatchString(modifiedContent) {
			log.Warnw("pattern not found in config file", "constant", constName)
			continue
		}

		modifiedContent = re.ReplaceAllString(modifiedContent, fmt.Sprintf("${1}%d${3}", newSize))
		log.Infow("updated size constant", "constant", constName, "new_size", newSize)
	}

	// Don't write the file if no changes were made
	if modifiedContent == string(content) {
		log.Infow("no changes needed for config file", "path", absConfigPath)
		return nil
	}

	if err := os.WriteFile(absConfigPath, []byte(modifiedContent), 0o644); err != nil {
		return fmt.Errorf("failed to write updated config file: %w", err)
	}

	log.Infow("parameters config updated successfully", "path", absConfigPath)
	return nil
}

// CheckHashChanges compares new hashes with existing ones in the config file
// and returns a list of constants that would be updated
func CheckHashChanges(hashList map[string]string, configPath string) ([]string, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	changes := []string{}
	for constName, newHash := range hashList {
		pattern := fmt.Sprintf(`%s\s*=\s*"([a-f0-9]+)"`, constName)
		re := regexp.MustCompile(pattern)

		matches := re.FindStringSubmatch(string(content))
		if len(matches) < 2 {
			log.Warnw("constant not found in config file", "constant", constName)
			continue
		}

		if matches[1] != newHash {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", constName, matches[1], newHash))
		}
	}

	return changes, nil
}

// FindParametersConfigFile attempts to find the config/parameters.go file
// Returns the path if found, an error otherwise
func FindParametersConfigFile() (string, error) {
	// Try the default location
	defaultPath := "config/parameters.go"
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath, nil
	}

	// Try to find it by walking through project directories
	var configPath string
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.Name() == "parameters.go" {
			content, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil // Continue searching
			}
			if bytes.Contains(content, []byte("TransferCircuitHash")) {
				configPath = path
				return filepath.SkipAll // Stop the walk
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error searching for parameters.go: %w", err)
	}

	if configPath == "" {
		return "", fmt.Errorf("parameters.go config file not found")
	}

	return configPath, nil
}
