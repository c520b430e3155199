package middleware

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
)

// CompressHandler gzips responses for clients that accept it.
func CompressHandler(next http.Handler) http.Handler {
	return gorilla.CompressHandler(next)
}
