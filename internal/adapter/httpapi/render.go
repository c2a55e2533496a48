package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"maragu.dev/gomponents"
)

// detail is the error envelope: {"detail": {"message": "..."}}.
type detail struct {
	Detail detailMessage `json:"detail"`
}

type detailMessage struct {
	Message string `json:"message"`
}

// validationDetail is the 422 body for unparsable path parameters.
type validationDetail struct {
	Detail []validationItem `json:"detail"`
}

type validationItem struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input string   `json:"input"`
}

func detailBody(message string) detail {
	return detail{Detail: detailMessage{Message: message}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}

func writeNotFound(w http.ResponseWriter, r *http.Request, message string) {
	if wantsHTML(r) {
		renderHTML(w, http.StatusNotFound, errorPage("Not Found", message))
		return
	}
	writeJSON(w, http.StatusNotFound, detailBody(message))
}

func writeValidationError(w http.ResponseWriter, loc, msg, input string) {
	writeJSON(w, http.StatusUnprocessableEntity, validationDetail{
		Detail: []validationItem{{
			Type:  "parsing",
			Loc:   []string{"path", loc},
			Msg:   msg,
			Input: input,
		}},
	})
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// wantsHTML reports whether the client prefers a rendered page over JSON.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
