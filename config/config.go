package config

import (
	"bufio"
	"log"
	"os"
	"strings"
)

// LoadEnv loads environment variables from a .env file if one is present.
// Missing files are not an error; deployments usually configure through the
// environment directly.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("ROUTE_ENV"),
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			break
		}
	}
	if loadedFile == "" {
		return nil
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Printf("Loading environment variables from %s", loadedFile)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		os.Setenv(key, value)
	}
	return scanner.Err()
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Port is the HTTP listen port.
func Port() string {
	return getEnvWithDefault("PORT", "8080")
}

// ExportDir is where route artifacts (GeoJSON, KML, plots) are persisted.
func ExportDir() string {
	return getEnvWithDefault("EXPORT_DIR", ".")
}

// OverpassURL is the Overpass API endpoint for road network fetches.
func OverpassURL() string {
	return getEnvWithDefault("OVERPASS_URL", "")
}

// RoadSource selects the road network backend: "overpass" (default) or
// "postgres" for pre-imported networks.
func RoadSource() string {
	return strings.ToLower(getEnvWithDefault("ROAD_SOURCE", "overpass"))
}
