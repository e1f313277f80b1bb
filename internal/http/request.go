package http

import (
	"bytes"
	"encoding/json"

	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/pricing"
	"github.com/blackteam/notas/internal/service"
)

// amountText accepts an amount typed in the form, either as a JSON string
// ("1.234,56", "R$ 150") or as a plain JSON number.
type amountText string

func (a *amountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountText(s)
		return nil
	}
	*a = amountText(data)
	return nil
}

type notaRequest struct {
	Number      string         `json:"numero_nota"`
	CustomerID  int64          `json:"cliente_id"`
	Customer    model.Customer `json:"cliente"`
	EventDate   string         `json:"data_evento"`
	FittingDate string         `json:"data_prova"`
	PickupDate  string         `json:"data_retirar"`
	ReturnDate  string         `json:"data_devolucao"`
	Description string         `json:"descricao_produtos"`
	Value       amountText     `json:"valor"`
	Deposit     amountText     `json:"sinal"`
	model.Accessories
	IssueDate string `json:"data_contagem"`
	Attendant string `json:"atendente"`
	Renter    string `json:"locatario"`
}

func (r notaRequest) input() service.NotaInput {
	return service.NotaInput{
		Number:      r.Number,
		CustomerID:  r.CustomerID,
		Customer:    r.Customer,
		EventDate:   r.EventDate,
		FittingDate: r.FittingDate,
		PickupDate:  r.PickupDate,
		ReturnDate:  r.ReturnDate,
		Description: r.Description,
		Value:       pricing.ParseAmount(string(r.Value)),
		Deposit:     pricing.ParseAmount(string(r.Deposit)),
		Accessories: r.Accessories,
		IssueDate:   r.IssueDate,
		Attendant:   r.Attendant,
		Renter:      r.Renter,
	}
}
