package shared

import (
	"encoding/json"
	"net/http"
	"strings"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ExtractBearerToken returns the credential carried by the Authorization
// header. The header may carry either "Bearer <token>" or the raw token; when
// a space is present only the substring after the first space is the
// credential. Returns false when the header is absent.
func ExtractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := authHeader
	if _, rest, found := strings.Cut(authHeader, " "); found {
		token = rest
	}
	return token, true
}
