package model

// Customer is a person renting clothes. ID 0 means not yet persisted.
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Address      string `json:"endereco"`
	Number       string `json:"numero"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	Phone        string `json:"telefone"`
	RG           string `json:"rg"`
	CPF          string `json:"cpf"`
}

func (c Customer) IsNew() bool {
	return c.ID == 0
}
