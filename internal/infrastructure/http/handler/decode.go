package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/cart-api/internal/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into dst. Malformed bodies and values
// of the wrong type, such as a fractional quantity, are invalid arguments.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewInvalidArgument("%s: %v", domain.ErrInvalidRequestBody.Message, err)
	}
	return nil
}

// pathID parses an integer id URL parameter. An id that does not parse can
// never name a stored record, so it yields notFound.
func pathID(r *http.Request, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, notFound
	}
	return id, nil
}
