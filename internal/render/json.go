package render

import (
	"encoding/json"
	"io"

	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/sirupsen/logrus"
)

// JSONRenderer writes one JSON object per event, then a summary object.
type JSONRenderer struct {
	enc    *json.Encoder
	logger *logrus.Logger
}

type summaryLine struct {
	Summary types.Result `json:"summary"`
}

// NewJSONRenderer creates a renderer writing JSON lines to w.
func NewJSONRenderer(w io.Writer, logger *logrus.Logger) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w), logger: logger}
}

// OnEvent encodes e as a single line.
func (r *JSONRenderer) OnEvent(e types.Event) {
	if err := r.enc.Encode(e); err != nil {
		r.logger.WithError(err).Error("Failed to write event")
	}
}

// OnFinish encodes the run summary.
func (r *JSONRenderer) OnFinish(res types.Result) {
	if err := r.enc.Encode(summaryLine{Summary: res}); err != nil {
		r.logger.WithError(err).Error("Failed to write summary")
	}
}
