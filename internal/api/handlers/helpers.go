package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"transit-items-service/internal/api/dto"
	"transit-items-service/internal/platform/obs"
)

// Request bodies larger than this are rejected.
const maxBodyBytes = 100 << 10

const genericServerMessage = "Something went wrong"

var (
	errInvalidBody   = errors.New("invalid request body")
	errMultipleJSON  = errors.New("body must contain only one JSON object")
	errBodyTooLarge  = errors.New("request body too large")
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeError writes {"error": <status text>, "message": msg}.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: msg,
	})
}

// InternalError logs err and writes a 500. The client sees publicMsg unless
// showDetail is set, in which case it sees err itself.
func InternalError(w http.ResponseWriter, r *http.Request, err error, publicMsg string, showDetail bool) {
	log.Printf(
		"req_id=%s method=%s path=%s internal error: %v",
		obs.RequestIDFromContext(r.Context()), r.Method, r.URL.Path, err,
	)

	msg := publicMsg
	if msg == "" {
		msg = genericServerMessage
	}
	if showDetail && err != nil {
		msg = err.Error()
	}
	writeError(w, r, http.StatusInternalServerError, msg)
}

// NotFound answers any request that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "Route "+r.URL.RequestURI()+" not found")
}

// parseItemID reads the leading integer of the {id} segment, so "12abc" is 12.
// ok is false when the segment does not start with an integer that fits an int.
func parseItemID(r *http.Request) (id int, ok bool) {
	raw := strings.TrimLeft(r.PathValue("id"), " \t")

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	id, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeItemRequest reads a JSON or url-encoded item body.
// An empty body decodes to the zero request.
func decodeItemRequest(w http.ResponseWriter, r *http.Request) (dto.ItemRequest, error) {
	var req dto.ItemRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, classifyBodyError(err)
		}
		req.Name = r.PostForm.Get("name")
		req.Description = r.PostForm.Get("description")
		return req, nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, classifyBodyError(err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return req, errMultipleJSON
	}

	return req, nil
}

func classifyBodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return errInvalidBody
}

// writeBodyError maps a decodeItemRequest error to its status.
func writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, r, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	writeError(w, r, http.StatusBadRequest, err.Error())
}
