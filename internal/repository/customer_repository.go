package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/blackteam/notas/internal/model"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerRow struct {
	ID           int64   `gorm:"column:id"`
	Name         *string `gorm:"column:name"`
	Address      *string `gorm:"column:address"`
	Number       *string `gorm:"column:number"`
	Neighborhood *string `gorm:"column:neighborhood"`
	City         *string `gorm:"column:city"`
	Phone        *string `gorm:"column:phone"`
	RG           *string `gorm:"column:rg"`
	CPF          *string `gorm:"column:cpf"`
}

const customerColumns = `
	Id AS id,
	Nome AS name,
	Endereco AS address,
	Numero AS number,
	Bairro AS neighborhood,
	Cidade AS city,
	Telefone AS phone,
	RG AS rg,
	CPF AS cpf
`

// Create inserts the customer and returns the id assigned by the store.
// Content is not validated here.
func (r *CustomerRepository) Create(ctx context.Context, c model.Customer) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO Clientes (Nome, Endereco, Numero, Bairro, Cidade, Telefone, RG, CPF)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING Id
	`,
		c.Name,
		c.Address,
		c.Number,
		c.Neighborhood,
		c.City,
		c.Phone,
		c.RG,
		c.CPF,
	).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

// FindAll returns every customer ordered by name.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	var rows []customerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + customerColumns + `
		FROM Clientes
		ORDER BY Nome ASC, Id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.toModel())
	}
	return customers, nil
}

// FindByID reports ok=false when no customer has the id.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (model.Customer, bool, error) {
	var row customerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM Clientes
		WHERE Id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return model.Customer{}, false, err
	}
	if row.ID == 0 {
		return model.Customer{}, false, nil
	}
	return row.toModel(), true, nil
}

// Update overwrites every field of the customer with c.ID. A missing id is
// not an error.
func (r *CustomerRepository) Update(ctx context.Context, c model.Customer) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE Clientes SET
			Nome = ?,
			Endereco = ?,
			Numero = ?,
			Bairro = ?,
			Cidade = ?,
			Telefone = ?,
			RG = ?,
			CPF = ?
		WHERE Id = ?
	`,
		c.Name,
		c.Address,
		c.Number,
		c.Neighborhood,
		c.City,
		c.Phone,
		c.RG,
		c.CPF,
		c.ID,
	).Error
}

// Delete removes the customer. Notas keep their snapshot of the customer.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM Clientes WHERE Id = ?`, id).Error
}

func (row customerRow) toModel() model.Customer {
	return model.Customer{
		ID:           row.ID,
		Name:         str(row.Name),
		Address:      str(row.Address),
		Number:       str(row.Number),
		Neighborhood: str(row.Neighborhood),
		City:         str(row.City),
		Phone:        str(row.Phone),
		RG:           str(row.RG),
		CPF:          str(row.CPF),
	}
}

func str(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
