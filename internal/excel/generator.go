package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/blackteam/notas/internal/model"
)

const sheetName = "Notas"

var headers = []string{
	"Nº",
	"Criada em",
	"Cliente",
	"Telefone",
	"Evento",
	"Retirar",
	"Devolução",
	"Valor",
	"Sinal",
	"Restante",
	"Atendente",
}

// Generator builds the notas report workbook.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(notas []model.Nota) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := file.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	set := func(col, row int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = file.SetCellValue(sheetName, cell, value)
	}

	for i, header := range headers {
		set(i+1, 1, header)
	}
	_ = file.SetCellStyle(sheetName, "A1", "K1", headerStyle)

	total, deposits, remaining := decimal.Zero, decimal.Zero, decimal.Zero
	for i, nota := range notas {
		row := i + 2
		set(1, row, nota.Number)
		set(2, row, nota.CreatedAt.Format(model.TimestampLayout))
		set(3, row, nota.CustomerName)
		set(4, row, nota.CustomerPhone)
		set(5, row, nota.EventDate)
		set(6, row, nota.PickupDate)
		set(7, row, nota.ReturnDate)
		set(8, row, nota.Value.InexactFloat64())
		set(9, row, nota.Deposit.InexactFloat64())
		set(10, row, nota.Remaining.InexactFloat64())
		set(11, row, nota.Attendant)

		total = total.Add(nota.Value)
		deposits = deposits.Add(nota.Deposit)
		remaining = remaining.Add(nota.Remaining)
	}

	totalRow := len(notas) + 2
	set(1, totalRow, "Total")
	set(8, totalRow, total.InexactFloat64())
	set(9, totalRow, deposits.InexactFloat64())
	set(10, totalRow, remaining.InexactFloat64())
	_ = file.SetCellStyle(sheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("A%d", totalRow), headerStyle)
	_ = file.SetCellStyle(sheetName, "H2", fmt.Sprintf("J%d", totalRow), moneyStyle)

	_ = file.SetColWidth(sheetName, "A", "A", 10)
	_ = file.SetColWidth(sheetName, "B", "B", 20)
	_ = file.SetColWidth(sheetName, "C", "C", 32)
	_ = file.SetColWidth(sheetName, "D", "G", 16)
	_ = file.SetColWidth(sheetName, "H", "J", 14)
	_ = file.SetColWidth(sheetName, "K", "K", 18)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
