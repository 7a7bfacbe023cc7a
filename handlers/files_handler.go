package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/abdarwish23/navigation-route-api/config"
)

// DownloadFile handles GET /files/{filename}, serving persisted route
// artifacts (GeoJSON, KML, plots).
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(mux.Vars(r)["filename"])
	path := filepath.Join(config.ExportDir(), filename)

	if _, err := os.Stat(path); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	http.ServeFile(w, r, path)
}
