package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Joshi-574/paperIQ/internal/analyze"
	"github.com/Joshi-574/paperIQ/internal/extract"
	"github.com/Joshi-574/paperIQ/internal/session"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	ext := filepath.Ext(filename)
	if !s.cfg.AllowsExtension(ext) || !extract.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", ext), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	extractor, err := extract.ForFile(filename, s.cfg.PDFFallbackPdftotext)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := extractor.Extract(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Warn("extraction failed", "filename", filename, "error", err)
		// Extraction failure reads the same as an empty document to the
		// caller: ask for another file rather than crash.
		res = extract.Result{}
	}

	sess, err := session.New(filename, res.Text, res.Meta, s.cfg.MinContentLength)
	if err != nil {
		if errors.Is(err, session.ErrInsufficientContent) {
			jsonError(w, "Could not extract sufficient text from the document. Please try another file.", http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.store.Put(sess)

	stats := analyze.TextStats(sess.Text)
	s.log.Info("paper uploaded",
		"paper_id", sess.ID,
		"filename", filename,
		"chars", stats.Chars,
		"sections_found", sess.Sections.Found(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"paper_id":       sess.ID,
		"filename":       sess.Filename,
		"chars":          stats.Chars,
		"words":          stats.Words,
		"pages":          sess.Meta.Pages,
		"title":          sess.Sections.Title,
		"authors":        sess.Sections.Authors,
		"sections_found": sess.Sections.Found(),
		"sections":       sess.Sections.Counts(),
	})
}

func (s *Server) handleGetPaper(w http.ResponseWriter, r *http.Request) {
	sess := s.paperSession(w, r)
	if sess == nil {
		return
	}

	stats := analyze.TextStats(sess.Text)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"paper_id":       sess.ID,
		"filename":       sess.Filename,
		"created_at":     sess.CreatedAt,
		"chars":          stats.Chars,
		"words":          stats.Words,
		"pages":          sess.Meta.Pages,
		"title":          sess.Sections.Title,
		"authors":        sess.Sections.Authors,
		"sections_found": sess.Sections.Found(),
		"sections":       sess.Sections.Counts(),
	})
}

func (s *Server) handleDeletePaper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "paperID")
	if !s.store.Delete(id) {
		jsonError(w, "paper not found", http.StatusNotFound)
		return
	}
	s.log.Info("paper deleted", "paper_id", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
