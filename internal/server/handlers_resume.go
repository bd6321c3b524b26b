package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/makhembu/portfolio-api/internal/pdf"
	"github.com/makhembu/portfolio-api/internal/portfolio"
)

// handleResumePDF renders the resume for the requested track and streams it
// as a download.
func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	track := portfolio.TrackBoth
	if v := r.URL.Query().Get("track"); v != "" {
		track = portfolio.Track(v)
		if !track.Valid() {
			s.errorResponse(w, http.StatusBadRequest, "Unknown track: must be one of it, translation, both")
			return
		}
	}

	data, err := pdf.RenderResume(s.data.BuildResume(track))
	if err != nil {
		log.Printf("PDF generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate PDF. Please try again.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.data.ResumeFilename()))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
