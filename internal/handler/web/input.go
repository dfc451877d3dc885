package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// readInput returns a field reader over a JSON object or a form body.
func readInput(r *http.Request) (func(string) string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return r.FormValue, nil
	}

	body := map[string]any{}
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return func(key string) string {
		value, ok := body[key]
		if !ok || value == nil {
			return ""
		}
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprint(value)
	}, nil
}

// readJSON reads a JSON body to forward unchanged.
func readJSON(r *http.Request) (json.RawMessage, error) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
