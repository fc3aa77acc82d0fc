package productservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
)

// ProductRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência (DB, Cache).
type ProductRepository interface {
	Save(ctx context.Context, product domain.Product) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa o catálogo de produtos (categoria + subcategoria).
type Service struct {
	repo   ProductRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProductRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// validate apara os campos e aplica as regras do catálogo.
func validate(p *domain.Product) error {
	p.Category = strings.TrimSpace(p.Category)
	p.Subcategory = strings.TrimSpace(p.Subcategory)

	if p.Category == "" || p.Subcategory == "" {
		return apperror.NewValidationError("Categoria e subcategoria são obrigatórias para o produto.")
	}
	if !domain.IsKnownCategory(p.Category) {
		return apperror.NewValidationError(fmt.Sprintf("Categoria desconhecida: %s.", p.Category))
	}
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}
	return nil
}

// CreateProduct valida e persiste um novo produto.
func (s *Service) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	// 1. Validação de Regras de Negócio
	if err := validate(&product); err != nil {
		return domain.Product{}, err
	}

	// 2. Preenchimento de ID e data
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now().UTC()

	// 3. Delegação para a Camada de Persistência
	created, err := s.repo.Save(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("falha ao salvar produto no repositório: %w", err)
	}
	return created, nil
}

// ListProducts devolve todo o catálogo.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProductByID busca um produto.
func (s *Service) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if err := validateID(id); err != nil {
		return domain.Product{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateProduct troca categoria/subcategoria de um produto existente.
func (s *Service) UpdateProduct(ctx context.Context, id string, product domain.Product) (domain.Product, error) {
	if err := validateID(id); err != nil {
		return domain.Product{}, err
	}
	if err := validate(&product); err != nil {
		return domain.Product{}, err
	}
	product.ID = id

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("falha ao atualizar produto: %w", err)
	}
	s.logger.Info("Produto atualizado.", map[string]interface{}{"id": id})
	return updated, nil
}

// DeleteProduct remove um produto.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
