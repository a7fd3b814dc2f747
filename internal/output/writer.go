package output

import (
	"github.com/lgbarn/chessplus-go/internal/analysis"
	"github.com/lgbarn/chessplus-go/internal/config"
)

// ReportWriter is the interface for writing analysis reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r analysis.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for the configured output format.
func NewReportWriter(cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(cfg)
	}
	return NewTextWriter(cfg)
}

// TextWriter writes reports as text.
type TextWriter struct {
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(cfg *config.Config) *TextWriter {
	return &TextWriter{cfg: cfg}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r analysis.Report) error {
	WriteReport(tw.cfg.OutputFile, r, int(tw.cfg.Output.MaxLineLength))
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	cfg     *config.Config
	reports []analysis.Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		cfg:     cfg,
		reports: make([]analysis.Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		cfg:    cfg,
		single: true,
	}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r analysis.Report) error {
	if jw.single {
		return WriteJSON(jw.cfg.OutputFile, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := WriteJSON(jw.cfg.OutputFile, &JSONReports{Reports: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
