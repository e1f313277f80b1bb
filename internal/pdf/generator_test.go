package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackteam/notas/internal/config"
	"github.com/blackteam/notas/internal/model"
)

func testShop() config.ShopConfig {
	return config.ShopConfig{
		Name:      "Black Team",
		Tagline:   "Ternos e Vestidos para festas",
		Phones:    "(31) 2524-3199",
		Instagram: "@blackteam.vestidos",
		Address:   "Av. Londres - nº 49",
		City:      "Contagem",
	}
}

func testNota() model.Nota {
	return model.Nota{
		ID:                   3,
		Number:               "010003",
		CustomerName:         "João da Silva",
		CustomerAddress:      "Rua Itaúna",
		CustomerNumber:       "45",
		CustomerNeighborhood: "Eldorado",
		CustomerCity:         "Contagem",
		CustomerPhone:        "(31) 98888-7777",
		EventDate:            "20/12/2026",
		PickupDate:           "19/12/2026",
		Description:          "Terno preto slim, tam. 48\nCamisa branca",
		Value:                decimal.RequireFromString("450"),
		Deposit:              decimal.RequireFromString("150"),
		Remaining:            decimal.RequireFromString("300"),
		Accessories:          model.Accessories{Tie: true, Vest: true},
		IssueDate:            "16/10/2026",
		Attendant:            "Paula",
		Renter:               "João da Silva",
		CreatedAt:            time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local),
	}
}

func TestGeneratorGenerate(t *testing.T) {
	content, err := NewGenerator(testShop()).Generate(testNota())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	assert.Greater(t, len(content), 1000)
}

func TestGeneratorGenerateLongDescription(t *testing.T) {
	nota := testNota()
	var long bytes.Buffer
	for i := 0; i < 120; i++ {
		long.WriteString("Vestido de festa com bordado e cauda longa. ")
	}
	nota.Description = long.String()

	content, err := NewGenerator(testShop()).Generate(nota)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestGeneratorGenerateContent(t *testing.T) {
	g := NewGenerator(testShop())
	g.compress = false

	content, err := g.Generate(testNota())
	require.NoError(t, err)

	text := string(content)
	for _, want := range []string{
		"010003",
		"da Silva",
		"Terno preto slim",
		"R$ 450,00",
		"Sinal: R$ 150,00",
		"Restante: R$ 300,00",
		"[X] Gravata  [ ] Sapato  [ ] Clutch  [ ] Estola  [ ] Camisa  [X] Colete",
		"20/12/2026",
		"Contagem, 16/10/2026",
		"Atendente: Paula",
	} {
		assert.Contains(t, text, want)
	}
}

func TestDescriptionBlockContinuesOnNextPage(t *testing.T) {
	pdf := newDocument()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetY(120)

	lines := make([]string, 40)
	for i := range lines {
		lines[i] = fmt.Sprintf("Linha %d", i+1)
	}
	descriptionBlock(pdf, tr, strings.Join(lines, "\n"))

	// 31 lines fit between y=126.5 and the 285mm break; the other 9 start at
	// the 12mm top margin of page 2.
	assert.Equal(t, 2, pdf.PageNo())
	assert.InDelta(t, 12+9*5+1.5+4, pdf.GetY(), 0.01)
	require.NoError(t, pdf.Error())
}

func TestDescriptionBlockKeepsMinimumHeight(t *testing.T) {
	pdf := newDocument()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetY(100)

	descriptionBlock(pdf, tr, "Vestido azul")

	assert.Equal(t, 1, pdf.PageNo())
	assert.InDelta(t, 105+28+4, pdf.GetY(), 0.01)
}

func TestDescriptionBlockMovesToNewPageWhenNoRoom(t *testing.T) {
	pdf := newDocument()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetY(265)

	descriptionBlock(pdf, tr, "Vestido azul")

	assert.Equal(t, 2, pdf.PageNo())
	assert.InDelta(t, 12+28+4, pdf.GetY(), 0.01)
}

func TestGeneratorGenerateEmptyNota(t *testing.T) {
	content, err := NewGenerator(config.ShopConfig{}).Generate(model.Nota{})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestAccessoryLine(t *testing.T) {
	line := AccessoryLine(model.Accessories{Tie: true, Clutch: true})
	assert.Equal(t, "[X] Gravata  [ ] Sapato  [X] Clutch  [ ] Estola  [ ] Camisa  [ ] Colete", line)
}
