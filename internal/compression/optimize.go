package compression

import (
	"bytes"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// optimizeOutput runs pdfcpu's optimizer over the rebuilt bytes to strip
// unused objects and duplicate resources. Best effort: a failure or a grown
// file keeps the rebuilt bytes unchanged, since a cleanup pass must never
// turn a successful compression into a failure.
func optimizeOutput(raw []byte, logger *slog.Logger) []byte {
	var buf bytes.Buffer
	conf := model.NewDefaultConfiguration()

	if err := api.Optimize(bytes.NewReader(raw), &buf, conf); err != nil {
		logger.Warn("optimize pass failed, keeping rebuilt output", "error", err)
		return raw
	}
	if buf.Len() == 0 || buf.Len() >= len(raw) {
		return raw
	}

	logger.Debug("optimize pass shrank output",
		"before", len(raw),
		"after", buf.Len())
	return buf.Bytes()
}
