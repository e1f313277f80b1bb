package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/pricing"
	"github.com/blackteam/notas/internal/repository"
)

// IssueDateLayout is the format of the "data de contagem" printed on a nota.
const IssueDateLayout = "02/01/2006"

type PDFGenerator interface {
	Generate(nota model.Nota) ([]byte, error)
}

type PDFExporter interface {
	FileName(nota model.Nota) string
	Export(nota model.Nota, content []byte) (string, error)
}

type FileOpener interface {
	Open(path string) error
}

type SpreadsheetGenerator interface {
	Generate(notas []model.Nota) ([]byte, error)
}

type NotaOptions struct {
	OpenAfterExport bool
}

type NotaService struct {
	notas     *repository.NotaRepository
	customers *repository.CustomerRepository
	pdf       PDFGenerator
	exporter  PDFExporter
	opener    FileOpener
	sheets    SpreadsheetGenerator
	opts      NotaOptions
	log       zerolog.Logger
	now       func() time.Time
}

func NewNotaService(
	notas *repository.NotaRepository,
	customers *repository.CustomerRepository,
	pdf PDFGenerator,
	exporter PDFExporter,
	opener FileOpener,
	sheets SpreadsheetGenerator,
	opts NotaOptions,
	log zerolog.Logger,
) *NotaService {
	return &NotaService{
		notas:     notas,
		customers: customers,
		pdf:       pdf,
		exporter:  exporter,
		opener:    opener,
		sheets:    sheets,
		opts:      opts,
		log:       log,
		now:       time.Now,
	}
}

// NotaInput is what the entry form collects. When CustomerID is set the
// stored customer is copied into the nota and Customer is ignored.
type NotaInput struct {
	Number      string
	CustomerID  int64
	Customer    model.Customer
	EventDate   string
	FittingDate string
	PickupDate  string
	ReturnDate  string
	Description string
	Value       decimal.Decimal
	Deposit     decimal.Decimal
	Accessories model.Accessories
	IssueDate   string
	Attendant   string
	Renter      string
}

func (s *NotaService) NextNumber(ctx context.Context) (string, error) {
	return s.notas.NextNumber(ctx)
}

// Build assembles a nota without storing it.
func (s *NotaService) Build(ctx context.Context, input NotaInput) (model.Nota, error) {
	now := s.now()
	nota := model.Nota{
		Number:      strings.TrimSpace(input.Number),
		EventDate:   input.EventDate,
		FittingDate: input.FittingDate,
		PickupDate:  input.PickupDate,
		ReturnDate:  input.ReturnDate,
		Description: input.Description,
		Value:       input.Value,
		Deposit:     input.Deposit,
		Remaining:   pricing.Remaining(input.Value, input.Deposit),
		Accessories: input.Accessories,
		IssueDate:   input.IssueDate,
		Attendant:   input.Attendant,
		Renter:      input.Renter,
		CreatedAt:   now,
	}

	if input.CustomerID > 0 {
		customer, ok, err := s.customers.FindByID(ctx, input.CustomerID)
		if err != nil {
			return model.Nota{}, err
		}
		if !ok {
			return model.Nota{}, fmt.Errorf("%w: cliente %d", ErrNotFound, input.CustomerID)
		}
		nota.ApplyCustomer(customer)
	} else {
		nota.ApplyCustomer(input.Customer)
		nota.CustomerID = 0
	}

	if strings.TrimSpace(nota.CustomerName) == "" {
		return model.Nota{}, fmt.Errorf("%w: cliente nome is required", ErrInvalidInput)
	}
	if strings.TrimSpace(nota.IssueDate) == "" {
		nota.IssueDate = now.Format(IssueDateLayout)
	}
	if nota.Number == "" {
		number, err := s.notas.NextNumber(ctx)
		if err != nil {
			return model.Nota{}, err
		}
		nota.Number = number
	}
	return nota, nil
}

// Create stores a new nota and returns it as read back from the store.
func (s *NotaService) Create(ctx context.Context, input NotaInput) (model.Nota, error) {
	nota, err := s.Build(ctx, input)
	if err != nil {
		return model.Nota{}, err
	}

	id, err := s.notas.Create(ctx, nota)
	if err != nil {
		return model.Nota{}, err
	}

	stored, ok, err := s.notas.FindByID(ctx, id)
	if err != nil {
		return model.Nota{}, err
	}
	if !ok {
		return model.Nota{}, fmt.Errorf("%w: nota %d after insert", ErrNotFound, id)
	}

	s.log.Info().
		Int64("nota_id", id).
		Str("numero", stored.Number).
		Str("cliente", stored.CustomerName).
		Msg("nota saved")
	return stored, nil
}

func (s *NotaService) Get(ctx context.Context, id int64) (model.Nota, error) {
	nota, ok, err := s.notas.FindByID(ctx, id)
	if err != nil {
		return model.Nota{}, err
	}
	if !ok {
		return model.Nota{}, ErrNotFound
	}
	return nota, nil
}

func (s *NotaService) List(ctx context.Context) ([]model.Nota, error) {
	return s.notas.FindAll(ctx)
}

// RenderPDF returns the document of a stored nota and its download name.
func (s *NotaService) RenderPDF(ctx context.Context, id int64) ([]byte, string, error) {
	nota, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	content, err := s.pdf.Generate(nota)
	if err != nil {
		return nil, "", err
	}
	return content, s.exporter.FileName(nota), nil
}

// ExportPDF writes the document of a stored nota into the output folder and
// returns the file path.
func (s *NotaService) ExportPDF(ctx context.Context, id int64) (string, error) {
	nota, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	content, err := s.pdf.Generate(nota)
	if err != nil {
		return "", err
	}
	path, err := s.exporter.Export(nota, content)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("numero", nota.Number).Str("path", path).Msg("nota exported")

	if s.opts.OpenAfterExport && s.opener != nil {
		if err := s.opener.Open(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("open exported nota failed")
		}
	}
	return path, nil
}

// PreviewPDF renders a nota that has not been saved.
func (s *NotaService) PreviewPDF(ctx context.Context, input NotaInput) ([]byte, string, error) {
	nota, err := s.Build(ctx, input)
	if err != nil {
		return nil, "", err
	}
	content, err := s.pdf.Generate(nota)
	if err != nil {
		return nil, "", err
	}
	return content, s.exporter.FileName(nota), nil
}

// ExportSpreadsheet returns every nota as an XLSX workbook.
func (s *NotaService) ExportSpreadsheet(ctx context.Context) ([]byte, string, error) {
	notas, err := s.notas.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}
	content, err := s.sheets.Generate(notas)
	if err != nil {
		return nil, "", err
	}
	return content, fmt.Sprintf("notas-%s.xlsx", s.now().Format("20060102-150405")), nil
}
