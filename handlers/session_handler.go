package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
)

type SessionStateResponse struct {
	Language *models.Language       `json:"language,omitempty"`
	Location *models.LocationRecord `json:"location,omitempty"`
}

// GetSession reports the state the funnel has captured so far. Language
// codes are re-validated against the catalog on the way out; stale or
// unknown codes read as "not selected".
func GetSession(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var response SessionStateResponse

	if code, found, err := Store.Get(languageKey(sid)); err != nil {
		log.Printf("GetSession: Error reading language for session %s: %v", sid, err)
	} else if found {
		if lang, ok := models.LanguageByCode(code); ok {
			response.Language = &lang
		} else {
			log.Printf("GetSession: Stored language %q not in catalog, ignoring", code)
		}
	}

	if record := readLocationRecord(sid); record.IsComplete() {
		response.Location = &record
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("GetSession: Error encoding response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
