package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhaysingla637/krishi-setu-vigyan/handlers"
)

func TestGetLanguages(t *testing.T) {
	setup(t)

	w := doRequest(t, handlers.GetLanguages, http.MethodGet, "/api/v1/languages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.LanguageCatalogResponse
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Languages, 12)
	assert.Equal(t, "hi", resp.Languages[0].Code)
	assert.Equal(t, "Hindi", resp.Languages[0].NameEng)
}

func TestSetLanguage(t *testing.T) {
	setup(t)

	w := doRequest(t, handlers.SetLanguage, http.MethodPost, "/api/v1/session/language",
		handlers.LanguageSelectionRequest{Language: "ta"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.LanguageSelectionResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "ta", resp.Language.Code)
	assert.Equal(t, "Tamil", resp.Language.NameEng)
	assert.Equal(t, "/location", resp.Next)

	stored, found, err := handlers.Store.Get(languageKey())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ta", stored)
}

func TestSetLanguageRequiresSelection(t *testing.T) {
	setup(t)

	w := doRequest(t, handlers.SetLanguage, http.MethodPost, "/api/v1/session/language",
		handlers.LanguageSelectionRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, found, _ := handlers.Store.Get(languageKey())
	assert.False(t, found, "rejected selection must not be stored")
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	setup(t)

	w := doRequest(t, handlers.SetLanguage, http.MethodPost, "/api/v1/session/language",
		handlers.LanguageSelectionRequest{Language: "tlh"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetLanguageOverwritesPrevious(t *testing.T) {
	setup(t)

	doRequest(t, handlers.SetLanguage, http.MethodPost, "/api/v1/session/language",
		handlers.LanguageSelectionRequest{Language: "hi"})
	doRequest(t, handlers.SetLanguage, http.MethodPost, "/api/v1/session/language",
		handlers.LanguageSelectionRequest{Language: "bn"})

	stored, found, _ := handlers.Store.Get(languageKey())
	require.True(t, found)
	assert.Equal(t, "bn", stored)
}
