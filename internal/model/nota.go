package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is how CreatedAt is persisted.
const TimestampLayout = "2006-01-02 15:04:05"

// Nota is an issued rental contract. The customer fields are a snapshot taken
// when the nota is created and are not updated when the customer changes.
type Nota struct {
	ID         int64  `json:"id"`
	Number     string `json:"numero_nota"`
	CustomerID int64  `json:"cliente_id"`

	CustomerName         string `json:"cliente_nome"`
	CustomerAddress      string `json:"cliente_endereco"`
	CustomerNumber       string `json:"cliente_numero"`
	CustomerNeighborhood string `json:"cliente_bairro"`
	CustomerCity         string `json:"cliente_cidade"`
	CustomerPhone        string `json:"cliente_telefone"`
	CustomerRG           string `json:"cliente_rg"`
	CustomerCPF          string `json:"cliente_cpf"`

	EventDate   string `json:"data_evento"`
	FittingDate string `json:"data_prova"`
	PickupDate  string `json:"data_retirar"`
	ReturnDate  string `json:"data_devolucao"`

	Description string `json:"descricao_produtos"`

	Value     decimal.Decimal `json:"valor"`
	Deposit   decimal.Decimal `json:"sinal"`
	Remaining decimal.Decimal `json:"restante"`

	Accessories

	IssueDate string    `json:"data_contagem"`
	Attendant string    `json:"atendente"`
	Renter    string    `json:"locatario"`
	CreatedAt time.Time `json:"data_criacao"`
}

// Accessories are the checkboxes printed on the nota.
type Accessories struct {
	Tie    bool `json:"gravata"`
	Shoes  bool `json:"sapato"`
	Clutch bool `json:"clutch"`
	Stole  bool `json:"estola"`
	Shirt  bool `json:"camisa"`
	Vest   bool `json:"colete"`
}

type Accessory struct {
	Label   string
	Checked bool
}

// List returns the accessories in print order.
func (a Accessories) List() []Accessory {
	return []Accessory{
		{Label: "Gravata", Checked: a.Tie},
		{Label: "Sapato", Checked: a.Shoes},
		{Label: "Clutch", Checked: a.Clutch},
		{Label: "Estola", Checked: a.Stole},
		{Label: "Camisa", Checked: a.Shirt},
		{Label: "Colete", Checked: a.Vest},
	}
}

// ApplyCustomer copies the customer's current data into the nota snapshot.
func (n *Nota) ApplyCustomer(c Customer) {
	n.CustomerID = c.ID
	n.CustomerName = c.Name
	n.CustomerAddress = c.Address
	n.CustomerNumber = c.Number
	n.CustomerNeighborhood = c.Neighborhood
	n.CustomerCity = c.City
	n.CustomerPhone = c.Phone
	n.CustomerRG = c.RG
	n.CustomerCPF = c.CPF
}
