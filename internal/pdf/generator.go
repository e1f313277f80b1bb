package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/blackteam/notas/internal/config"
	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/pricing"
)

const (
	pageWidth   = 180.0
	labelWidth  = 30.0
	borderColor = 0
)

var clauses = []string{
	"Cláusula 1: Em caso de cancelamento do contrato não devolvemos o valor recebido.",
	"Cláusula 2: O valor recebido fica disponível para ser reutilizado em caso de cancelamento tendo um aviso de 15 dias antes do evento.",
	"Cláusula 3: Não repassamos pagamentos recebidos de um contrato para outro contrato.",
	"Cláusula 4: O cuidado de uso da roupa é responsabilidade do cliente. É necessário o cliente fazer a conferência do vestido e dos itens na hora de buscar os produtos alugados.",
	"Cláusula 5: Em caso de estragos pelo mau uso do cliente será avaliado o dano, se houver perda total do produto o cliente fica responsável por fazer o pagamento total do produto.",
	"Cláusula 6: O prazo de entrega deverá ser respeitado em ambas as partes tendo uma tolerância de 8 horas ambas as partes.",
	"Cláusula 7: A devolução do produto caso exceda a data do contrato será cobrado uma multa no valor de 30% do valor do contrato.",
}

// Generator lays a nota out like the shop's paper form.
type Generator struct {
	shop     config.ShopConfig
	compress bool
}

func NewGenerator(shop config.ShopConfig) *Generator {
	return &Generator{shop: shop, compress: true}
}

func (g *Generator) Generate(nota model.Nota) ([]byte, error) {
	pdf := newDocument()
	pdf.SetCompression(g.compress)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	g.header(pdf, tr, nota.Number)
	customerBlock(pdf, tr, nota)
	datesBlock(pdf, tr, nota)
	descriptionBlock(pdf, tr, nota.Description)
	valuesBlock(pdf, tr, nota)
	accessoriesBlock(pdf, tr, nota.Accessories)
	clausesBlock(pdf, tr)
	g.footer(pdf, tr, nota)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newDocument() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 12, 15)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetDrawColor(borderColor, borderColor, borderColor)
	pdf.AddPage()
	return pdf
}

func (g *Generator) header(pdf *gofpdf.Fpdf, tr func(string) string, number string) {
	pdf.SetFont("Times", "BI", 28)
	pdf.CellFormat(0, 12, tr(g.shop.Name), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{g.shop.Tagline, g.shop.Phones, g.shop.Instagram} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(200, 0, 0)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Nº %s", number)), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

func customerBlock(pdf *gofpdf.Fpdf, tr func(string) string, nota model.Nota) {
	rows := [][2]string{
		{"Nome:", nota.CustomerName},
		{"Endereço:", fmt.Sprintf("%s, Nº %s", nota.CustomerAddress, nota.CustomerNumber)},
		{"Bairro:", nota.CustomerNeighborhood},
		{"Cidade:", nota.CustomerCity},
		{"Telefone:", nota.CustomerPhone},
		{"RG:", nota.CustomerRG},
		{"CPF:", nota.CustomerCPF},
	}
	for _, row := range rows {
		labelCell(pdf, tr, labelWidth, 6, row[0], 9)
		valueCell(pdf, tr, pageWidth-labelWidth, 6, row[1], 9, 1)
	}
	pdf.Ln(4)
}

func datesBlock(pdf *gofpdf.Fpdf, tr func(string) string, nota model.Nota) {
	widths := []float64{32, 58, 32, 58}
	rows := [][4]string{
		{"Data do Evento:", nota.EventDate, "Retirar:", nota.PickupDate},
		{"Prova:", nota.FittingDate, "Devolução:", nota.ReturnDate},
	}
	for _, row := range rows {
		labelCell(pdf, tr, widths[0], 6, row[0], 8)
		valueCell(pdf, tr, widths[1], 6, row[1], 8, 0)
		labelCell(pdf, tr, widths[2], 6, row[2], 8)
		valueCell(pdf, tr, widths[3], 6, row[3], 8, 1)
	}
	pdf.Ln(4)
}

// descriptionBlock frames the description. Text that runs past the page
// bottom is framed on every page it covers.
func descriptionBlock(pdf *gofpdf.Fpdf, tr func(string) string, description string) {
	const (
		minHeight = 28.0
		padding   = 1.5
	)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, tr("Descrição dos produtos:"), "", 1, "L", false, 0, "")

	_, pageHeight := pdf.GetPageSize()
	_, topMargin, _, _ := pdf.GetMargins()
	_, bottomMargin := pdf.GetAutoPageBreak()
	pageBottom := pageHeight - bottomMargin

	x, top := pdf.GetXY()
	if top+minHeight > pageBottom {
		pdf.AddPage()
		x, top = pdf.GetXY()
	}
	startPage := pdf.PageNo()

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(x+padding, top+padding)
	pdf.MultiCell(pageWidth-2*padding, 5, tr(description), "", "L", false)

	endPage := pdf.PageNo()
	end := pdf.GetY() + padding

	if endPage == startPage {
		if end-top < minHeight {
			end = top + minHeight
		}
		pdf.Rect(x, top, pageWidth, end-top, "D")
	} else {
		for page := startPage; page < endPage; page++ {
			pdf.SetPage(page)
			from := topMargin
			if page == startPage {
				from = top
			}
			pdf.Rect(x, from, pageWidth, pageBottom-from, "D")
		}
		pdf.SetPage(endPage)
		pdf.Rect(x, topMargin, pageWidth, end-topMargin, "D")
	}
	pdf.SetXY(x, end)
	pdf.Ln(4)
}

func valuesBlock(pdf *gofpdf.Fpdf, tr func(string) string, nota model.Nota) {
	const third = pageWidth / 3

	labelCell(pdf, tr, third, 6, "Valor:", 9)
	valueCell(pdf, tr, third, 6, pricing.FormatBRL(nota.Value), 9, 0)
	valueCell(pdf, tr, third, 6, "Sinal: "+pricing.FormatBRL(nota.Deposit), 9, 1)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(2*third, 6, tr("Restante: "+pricing.FormatBRL(nota.Remaining)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(third, 6, "", "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func accessoriesBlock(pdf *gofpdf.Fpdf, tr func(string) string, accessories model.Accessories) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, tr("Acessórios:"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(AccessoryLine(accessories)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func clausesBlock(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "", 6)
	for _, clause := range clauses {
		pdf.MultiCell(0, 3, tr(clause), "", "L", false)
	}
	pdf.Ln(4)
}

func (g *Generator) footer(pdf *gofpdf.Fpdf, tr func(string) string, nota model.Nota) {
	const half = pageWidth / 2

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s, %s", g.shop.City, nota.IssueDate)), "", 1, "L", false, 0, "")
	pdf.Ln(14)

	pdf.CellFormat(half-5, 6, tr("Atendente: "+nota.Attendant), "T", 0, "L", false, 0, "")
	pdf.CellFormat(10, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(half-5, 6, tr("Locatário: "+nota.Renter), "T", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, tr(g.shop.Address), "", 1, "C", false, 0, "")
}

// AccessoryLine renders the checkbox row, e.g. "[X] Gravata  [ ] Sapato".
func AccessoryLine(accessories model.Accessories) string {
	items := accessories.List()
	parts := make([]string, 0, len(items))
	for _, item := range items {
		box := "[ ]"
		if item.Checked {
			box = "[X]"
		}
		parts = append(parts, box+" "+item.Label)
	}
	return strings.Join(parts, "  ")
}

func labelCell(pdf *gofpdf.Fpdf, tr func(string) string, w, h float64, text string, size float64) {
	pdf.SetFont("Helvetica", "B", size)
	pdf.CellFormat(w, h, tr(text), "1", 0, "L", false, 0, "")
}

func valueCell(pdf *gofpdf.Fpdf, tr func(string) string, w, h float64, text string, size float64, ln int) {
	pdf.SetFont("Helvetica", "", size)
	pdf.CellFormat(w, h, tr(text), "1", ln, "L", false, 0, "")
}
