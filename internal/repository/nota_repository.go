package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/pricing"
)

// FirstNotaNumber is the number given to the first nota of an empty store.
const FirstNotaNumber = 10001

// NotaRepository persists notas. Notas are append-only: there is no update
// or delete.
type NotaRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewNotaRepository(db *gorm.DB) *NotaRepository {
	return &NotaRepository{db: db, now: time.Now}
}

type notaRow struct {
	ID                   int64               `gorm:"column:id"`
	Number               *string             `gorm:"column:number"`
	CustomerID           *int64              `gorm:"column:customer_id"`
	CustomerName         *string             `gorm:"column:customer_name"`
	CustomerAddress      *string             `gorm:"column:customer_address"`
	CustomerNumber       *string             `gorm:"column:customer_number"`
	CustomerNeighborhood *string             `gorm:"column:customer_neighborhood"`
	CustomerCity         *string             `gorm:"column:customer_city"`
	CustomerPhone        *string             `gorm:"column:customer_phone"`
	CustomerRG           *string             `gorm:"column:customer_rg"`
	CustomerCPF          *string             `gorm:"column:customer_cpf"`
	EventDate            *string             `gorm:"column:event_date"`
	FittingDate          *string             `gorm:"column:fitting_date"`
	PickupDate           *string             `gorm:"column:pickup_date"`
	ReturnDate           *string             `gorm:"column:return_date"`
	Description          *string             `gorm:"column:description"`
	Value                decimal.NullDecimal `gorm:"column:value"`
	Deposit              decimal.NullDecimal `gorm:"column:deposit"`
	Remaining            decimal.NullDecimal `gorm:"column:remaining"`
	Tie                  *int64              `gorm:"column:tie"`
	Shoes                *int64              `gorm:"column:shoes"`
	Clutch               *int64              `gorm:"column:clutch"`
	Stole                *int64              `gorm:"column:stole"`
	Shirt                *int64              `gorm:"column:shirt"`
	Vest                 *int64              `gorm:"column:vest"`
	IssueDate            *string             `gorm:"column:issue_date"`
	Attendant            *string             `gorm:"column:attendant"`
	Renter               *string             `gorm:"column:renter"`
	CreatedAt            *string             `gorm:"column:created_at"`
}

const notaColumns = `
	Id AS id,
	NumeroNota AS number,
	ClienteId AS customer_id,
	ClienteNome AS customer_name,
	ClienteEndereco AS customer_address,
	ClienteNumero AS customer_number,
	ClienteBairro AS customer_neighborhood,
	ClienteCidade AS customer_city,
	ClienteTelefone AS customer_phone,
	ClienteRG AS customer_rg,
	ClienteCPF AS customer_cpf,
	DataEvento AS event_date,
	DataProva AS fitting_date,
	DataRetirar AS pickup_date,
	DataDevolucao AS return_date,
	DescricaoProdutos AS description,
	Valor AS value,
	Sinal AS deposit,
	Restante AS remaining,
	Gravata AS tie,
	Sapato AS shoes,
	Clutch AS clutch,
	Estola AS stole,
	Camisa AS shirt,
	Colete AS vest,
	DataContagem AS issue_date,
	Atendente AS attendant,
	Locatario AS renter,
	DataCriacao AS created_at
`

// Create inserts the nota and returns its id. Remaining is always recomputed
// from Value and Deposit; a zero CreatedAt is stored as the current time.
func (r *NotaRepository) Create(ctx context.Context, n model.Nota) (int64, error) {
	remaining := pricing.Remaining(n.Value, n.Deposit)
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	var id int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO Notas (
			NumeroNota, ClienteId, ClienteNome, ClienteEndereco, ClienteNumero,
			ClienteBairro, ClienteCidade, ClienteTelefone, ClienteRG, ClienteCPF,
			DataEvento, DataProva, DataRetirar, DataDevolucao, DescricaoProdutos,
			Valor, Sinal, Restante, Gravata, Sapato, Clutch, Estola, Camisa, Colete,
			DataContagem, Atendente, Locatario, DataCriacao
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING Id
	`,
		n.Number,
		n.CustomerID,
		n.CustomerName,
		n.CustomerAddress,
		n.CustomerNumber,
		n.CustomerNeighborhood,
		n.CustomerCity,
		n.CustomerPhone,
		n.CustomerRG,
		n.CustomerCPF,
		n.EventDate,
		n.FittingDate,
		n.PickupDate,
		n.ReturnDate,
		n.Description,
		n.Value,
		n.Deposit,
		remaining,
		flag(n.Tie),
		flag(n.Shoes),
		flag(n.Clutch),
		flag(n.Stole),
		flag(n.Shirt),
		flag(n.Vest),
		n.IssueDate,
		n.Attendant,
		n.Renter,
		createdAt.In(time.Local).Format(model.TimestampLayout),
	).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

// FindAll returns every nota, most recent first.
func (r *NotaRepository) FindAll(ctx context.Context) ([]model.Nota, error) {
	var rows []notaRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + notaColumns + `
		FROM Notas
		ORDER BY DataCriacao DESC, Id DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	notas := make([]model.Nota, 0, len(rows))
	for _, row := range rows {
		notas = append(notas, row.toModel(r.now))
	}
	return notas, nil
}

// FindByID reports ok=false when no nota has the id.
func (r *NotaRepository) FindByID(ctx context.Context, id int64) (model.Nota, bool, error) {
	var row notaRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+notaColumns+`
		FROM Notas
		WHERE Id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return model.Nota{}, false, err
	}
	if row.ID == 0 {
		return model.Nota{}, false, nil
	}
	return row.toModel(r.now), true, nil
}

func (r *NotaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM Notas`).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextNumber is FirstNotaNumber plus the number of stored notas, padded to six
// digits. It is derived from the row count, so two callers that ask before
// either inserts get the same number, and a removed row makes a number
// reappear. Numbers already printed depend on this formula.
func (r *NotaRepository) NextNumber(ctx context.Context) (string, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return "", err
	}
	return FormatNumber(count), nil
}

// FormatNumber returns the display number that follows count stored notas.
func FormatNumber(count int64) string {
	return fmt.Sprintf("%06d", FirstNotaNumber+count)
}

func (row notaRow) toModel(now func() time.Time) model.Nota {
	return model.Nota{
		ID:                   row.ID,
		Number:               str(row.Number),
		CustomerID:           num(row.CustomerID),
		CustomerName:         str(row.CustomerName),
		CustomerAddress:      str(row.CustomerAddress),
		CustomerNumber:       str(row.CustomerNumber),
		CustomerNeighborhood: str(row.CustomerNeighborhood),
		CustomerCity:         str(row.CustomerCity),
		CustomerPhone:        str(row.CustomerPhone),
		CustomerRG:           str(row.CustomerRG),
		CustomerCPF:          str(row.CustomerCPF),
		EventDate:            str(row.EventDate),
		FittingDate:          str(row.FittingDate),
		PickupDate:           str(row.PickupDate),
		ReturnDate:           str(row.ReturnDate),
		Description:          str(row.Description),
		Value:                money(row.Value),
		Deposit:              money(row.Deposit),
		Remaining:            money(row.Remaining),
		Accessories: model.Accessories{
			Tie:    checked(row.Tie),
			Shoes:  checked(row.Shoes),
			Clutch: checked(row.Clutch),
			Stole:  checked(row.Stole),
			Shirt:  checked(row.Shirt),
			Vest:   checked(row.Vest),
		},
		IssueDate: str(row.IssueDate),
		Attendant: str(row.Attendant),
		Renter:    str(row.Renter),
		CreatedAt: timestamp(row.CreatedAt, now),
	}
}

func flag(value bool) int {
	if value {
		return 1
	}
	return 0
}

func checked(value *int64) bool {
	return value != nil && *value == 1
}

func num(value *int64) int64 {
	if value == nil {
		return 0
	}
	return *value
}

func money(value decimal.NullDecimal) decimal.Decimal {
	if !value.Valid {
		return decimal.Zero
	}
	return value.Decimal
}

// timestamp falls back to now when the column is empty or unreadable.
func timestamp(value *string, now func() time.Time) time.Time {
	if value == nil || *value == "" {
		return now()
	}
	parsed, err := time.ParseInLocation(model.TimestampLayout, *value, time.Local)
	if err != nil {
		return now()
	}
	return parsed
}
