package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/dataset"
	"github.com/poiesic/faqit/knowledge"
	"github.com/poiesic/faqit/locale"
	"github.com/poiesic/faqit/storage"
)

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type chatResponse struct {
	Response      string   `json:"response"`
	ImageBase64   *string  `json:"image_base64"`
	ImagePath     string   `json:"image_path,omitempty"`
	Confidence    string   `json:"confidence"`
	RelatedTopics []string `json:"related_topics"`
	WordCount     int      `json:"word_count"`
}

type addDataRequest struct {
	Data     dataset.Record `json:"data"`
	Language string         `json:"language"`
}

// parseLanguage maps the request language to a locale. Blank means English.
func parseLanguage(s string) (core.Locale, error) {
	if s == "" {
		return core.LocaleEnglish, nil
	}
	return locale.Parse(s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	l, err := parseLanguage(req.Language)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := s.assistant.Respond(r.Context(), l, req.Message)
	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, knowledge.ErrNotInitialized) {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		s.logger.Warn("knowledge base not ready", "locale", string(l))
		status = http.StatusServiceUnavailable
	}

	out := chatResponse{
		Response:      resp.Text,
		ImagePath:     resp.ImagePath,
		Confidence:    string(resp.Confidence),
		RelatedTopics: resp.RelatedTopics,
		WordCount:     resp.WordCount,
	}
	if out.RelatedTopics == nil {
		out.RelatedTopics = []string{}
	}
	if s.images != nil && resp.ImagePath != "" {
		img, err := s.images.Resolve(resp.ImagePath, resp.RelatedTopics)
		if err != nil {
			s.logger.Warn("image unavailable", "ref", resp.ImagePath, "err", err)
		} else if img != nil {
			encoded := img.Base64()
			out.ImageBase64 = &encoded
		}
	}
	writeJSON(w, status, out)
}

func (s *Server) handleListData(w http.ResponseWriter, r *http.Request) {
	l, err := parseLanguage(r.URL.Query().Get("language"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	entries, err := s.assistant.Entries(r.Context(), l)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	records := make([]dataset.Record, len(entries))
	for i, e := range entries {
		records[i] = dataset.FromEntry(e)
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleAddData(w http.ResponseWriter, r *http.Request) {
	var req addDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	l, err := parseLanguage(req.Language)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	entry := req.Data.Entry(l)
	entry.Locale = l
	added, err := s.assistant.AddEntry(r.Context(), entry)
	switch {
	case errors.Is(err, core.ErrInvalidEntry):
		s.writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, storage.ErrDuplicateKey):
		s.writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"status": "success",
		"id":     fmt.Sprintf("%d", uint64(added.Id)),
	})
}
