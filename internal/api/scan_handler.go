package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pulsard/pulsard-api/internal/api/shared"
)

// Status code enum values reported by the scan endpoint.
const (
	scanStatusSuccess = 200
	scanStatusError   = 500
)

// ScanHandler handles the directory listing utility endpoint.
type ScanHandler struct {
	logger *slog.Logger
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(log *slog.Logger) *ScanHandler {
	return &ScanHandler{
		logger: log.With("component", "scan_handler"),
	}
}

// Scan handles POST /api/scan: lists the entries of the given folder and
// returns their joined paths. An unreadable folder reports the error
// status code rather than failing the request.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entries, err := os.ReadDir(req.FolderPath)
	if err != nil {
		h.logger.Warn("directory scan failed", "error", err, "folder_path", req.FolderPath)
		shared.RespondWithJSON(w, r, http.StatusOK, ScanResponse{StatusCode: scanStatusError})
		return
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(req.FolderPath, entry.Name()))
	}

	h.logger.Info("directory scanned", "folder_path", req.FolderPath, "entry_count", len(paths))
	shared.RespondWithJSON(w, r, http.StatusOK, ScanResponse{
		StatusCode: scanStatusSuccess,
		Entries:    paths,
	})
}
