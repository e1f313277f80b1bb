package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/repository"
)

type CustomerService struct {
	repo *repository.CustomerRepository
	log  zerolog.Logger
}

func NewCustomerService(repo *repository.CustomerRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

// Save inserts a new customer (ID 0) or overwrites an existing one.
func (s *CustomerService) Save(ctx context.Context, c model.Customer) (model.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return model.Customer{}, fmt.Errorf("%w: nome is required", ErrInvalidInput)
	}
	if c.ID < 0 {
		return model.Customer{}, fmt.Errorf("%w: invalid id", ErrInvalidInput)
	}

	if c.IsNew() {
		id, err := s.repo.Create(ctx, c)
		if err != nil {
			return model.Customer{}, err
		}
		c.ID = id
		s.log.Info().Int64("cliente_id", id).Msg("customer created")
		return c, nil
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return model.Customer{}, err
	}
	s.log.Info().Int64("cliente_id", c.ID).Msg("customer updated")
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (model.Customer, error) {
	c, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}
	if !ok {
		return model.Customer{}, ErrNotFound
	}
	return c, nil
}

// List returns customers ordered by name. A non-blank query keeps only those
// whose name, phone or CPF contains it, ignoring case.
func (s *CustomerService) List(ctx context.Context, query string) ([]model.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCustomers(customers, query), nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("cliente_id", id).Msg("customer deleted")
	return nil
}

func FilterCustomers(customers []model.Customer, query string) []model.Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return customers
	}

	result := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Phone), query) ||
			strings.Contains(strings.ToLower(c.CPF), query) {
			result = append(result, c)
		}
	}
	return result
}
