package store

// Store is the persisted key-value surface the screens hand state through.
// Values are plain strings: a language code, or a JSON-serialized location
// record. Get reports presence explicitly so a missing key is not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Ping() error
	Backend() string
}
