package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blackteam/notas/internal/model"
)

// Exporter writes rendered notas into the output folder.
type Exporter struct {
	dir string
	now func() time.Time
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

func (e *Exporter) Dir() string {
	return e.dir
}

// FileName is {number}_{customer name with spaces as underscores}_{yyyyMMdd_HHmmss}.pdf.
func (e *Exporter) FileName(nota model.Nota) string {
	name := strings.ReplaceAll(nota.CustomerName, " ", "_")
	name = strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	return fmt.Sprintf("%s_%s_%s.pdf", nota.Number, name, e.now().Format("20060102_150405"))
}

// Export writes content and returns the full path. The folder is created on
// first use.
func (e *Exporter) Export(nota model.Nota, content []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(e.dir, e.FileName(nota))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}
