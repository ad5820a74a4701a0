package tracking

import (
	"net/http"

	"github.com/matst80/slask-storefront/pkg/types"
)

// GridInfo describes the layout a browse request was answered with.
type GridInfo struct {
	Width   int    `json:"width"`
	Columns int    `json:"columns"`
	Mode    string `json:"mode"`
}

type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackBrowse(sessionId string, sel types.Selection, resultLen int, grid GridInfo, r *http.Request)
	Close() error
}
