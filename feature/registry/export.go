package registry

import (
	"context"
	"io"

	"asset-registry/core/spreadsheet"
	"asset-registry/feature/registry/models"

	"go.uber.org/zap"
)

// ExportContentType is the MIME type of exported workbooks.
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Exporter renders the inventory in the same layout the import reads.
type Exporter struct {
	store  *Store
	cfg    Config
	logger *zap.Logger
}

// NewExporter creates an exporter.
func NewExporter(store *Store, cfg Config, logger *zap.Logger) *Exporter {
	return &Exporter{store: store, cfg: cfg, logger: logger}
}

// Export writes the records matching search to w and returns how many were written.
// The template's title rows are reproduced when the template can be read.
func (e *Exporter) Export(ctx context.Context, w io.Writer, search string) (int, error) {
	recs, err := e.store.GetAllInventory(ctx, search)
	if err != nil {
		return 0, err
	}
	return len(recs), e.Write(w, recs)
}

// Write renders the given records.
func (e *Exporter) Write(w io.Writer, recs []models.InventoryRecord) error {
	preamble, err := spreadsheet.ReadPreamble(e.cfg.Template, e.cfg.HeaderRow)
	if err != nil {
		e.logger.Warn("Export template unreadable, writing without title rows",
			zap.String("template", e.cfg.Template), zap.Error(err))
		preamble = nil
	}

	rows := make([][]any, len(recs))
	for i := range recs {
		rows[i] = recs[i].Row()
	}

	return spreadsheet.Write(w, spreadsheet.Sheet{
		Name:     e.cfg.Sheet,
		Preamble: preamble,
		Columns:  models.Columns(),
		Rows:     rows,
	})
}
