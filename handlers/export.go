package handlers

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/abdarwish23/navigation-route-api/config"
	"github.com/abdarwish23/navigation-route-api/models"
)

// artifactPath resolves an artifact name inside the export directory. The
// name is reduced to its base to keep requests from escaping it.
func artifactPath(name string) string {
	return filepath.Join(config.ExportDir(), filepath.Base(name))
}

// saveBytes writes an artifact to the export directory. Failures are
// logged; background callers ignore the returned error.
func saveBytes(name string, data []byte) error {
	path := artifactPath(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Export: error saving %s: %v", name, err)
		return err
	}
	log.Printf("Export: saved %s", path)
	return nil
}

// saveGeoJSON marshals and persists a GeoJSON artifact.
func saveGeoJSON(name string, fc *models.FeatureCollection) {
	data, err := json.Marshal(fc)
	if err != nil {
		log.Printf("Export: error encoding %s: %v", name, err)
		return
	}
	saveBytes(name, data)
}
