package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/blackteam/notas/internal/db"
	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/repository"
)

type fakePDF struct {
	generated []model.Nota
	err       error
}

func (f *fakePDF) Generate(nota model.Nota) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.generated = append(f.generated, nota)
	return []byte("%PDF-" + nota.Number), nil
}

type fakeExporter struct {
	exported map[string][]byte
}

func (f *fakeExporter) FileName(nota model.Nota) string {
	return nota.Number + ".pdf"
}

func (f *fakeExporter) Export(nota model.Nota, content []byte) (string, error) {
	if f.exported == nil {
		f.exported = map[string][]byte{}
	}
	path := filepath.Join("/notas", f.FileName(nota))
	f.exported[path] = content
	return path, nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

type fakeSheets struct {
	rows int
}

func (f *fakeSheets) Generate(notas []model.Nota) ([]byte, error) {
	f.rows = len(notas)
	return []byte("xlsx"), nil
}

type fixture struct {
	customers    *CustomerService
	notas        *NotaService
	customerRepo *repository.CustomerRepository
	pdf          *fakePDF
	exporter     *fakeExporter
	opener       *fakeOpener
	sheets       *fakeSheets
}

var fixedNow = time.Date(2026, 10, 16, 14, 30, 5, 0, time.Local)

func newFixture(t *testing.T, opts NotaOptions) *fixture {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "blackteam.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	customerRepo := repository.NewCustomerRepository(database)
	notaRepo := repository.NewNotaRepository(database)

	f := &fixture{
		customerRepo: customerRepo,
		pdf:          &fakePDF{},
		exporter:     &fakeExporter{},
		opener:       &fakeOpener{},
		sheets:       &fakeSheets{},
	}
	f.customers = NewCustomerService(customerRepo, zerolog.Nop())
	f.notas = NewNotaService(notaRepo, customerRepo, f.pdf, f.exporter, f.opener, f.sheets, opts, zerolog.Nop())
	f.notas.now = func() time.Time { return fixedNow }
	return f
}
