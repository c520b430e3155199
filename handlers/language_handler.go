package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
)

type LanguageSelectionRequest struct {
	Language string `json:"language"`
}

type LanguageSelectionResponse struct {
	Language models.Language `json:"language"`
	Next     string          `json:"next"`
}

type LanguageCatalogResponse struct {
	Languages []models.Language `json:"languages"`
}

// GetLanguages returns the fixed catalog offered on the landing screen.
func GetLanguages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(LanguageCatalogResponse{Languages: models.Languages}); err != nil {
		log.Printf("GetLanguages: Error encoding response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// SetLanguage persists the selected language code for the session. The
// continue gate lives here: an empty or unknown code is rejected.
func SetLanguage(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req LanguageSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("SetLanguage: Error decoding request body: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Language == "" {
		http.Error(w, "No language selected", http.StatusBadRequest)
		return
	}

	lang, ok := models.LanguageByCode(req.Language)
	if !ok {
		log.Printf("SetLanguage: Unknown language code %q", req.Language)
		http.Error(w, "Unknown language code", http.StatusBadRequest)
		return
	}

	if err := Store.Set(languageKey(sid), lang.Code); err != nil {
		log.Printf("SetLanguage: Error persisting selection: %v", err)
		http.Error(w, "Failed to save language selection", http.StatusInternalServerError)
		return
	}

	log.Printf("SetLanguage: Session %s selected language %s", sid, lang.Code)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LanguageSelectionResponse{
		Language: lang,
		Next:     "/location",
	})
}
