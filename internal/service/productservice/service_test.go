package productservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
	"beltstock/internal/service/productservice"
)

// MockProductRepository é uma implementação mock da interface ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// TestCreateProduct_Success testa a criação com categoria conhecida.
func TestCreateProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Category == "Cogged" && p.Subcategory == "Bx" && p.ID != "" && !p.CreatedAt.IsZero()
	})).Return(domain.Product{ID: "x", Category: "Cogged", Subcategory: "Bx"}, nil)

	created, err := svc.CreateProduct(context.Background(), domain.Product{Category: " Cogged ", Subcategory: "Bx "})

	require.NoError(t, err)
	assert.Equal(t, "Cogged", created.Category)
	mockRepo.AssertExpectations(t)
}

// TestCreateProduct_Fail_UnknownCategory testa que categorias fora do catálogo são rejeitadas.
func TestCreateProduct_Fail_UnknownCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())

	_, err := svc.CreateProduct(context.Background(), domain.Product{Category: "Chains", Subcategory: "x"})

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// TestCreateProduct_Fail_MissingSubcategory testa a obrigatoriedade da subcategoria.
func TestCreateProduct_Fail_MissingSubcategory(t *testing.T) {
	svc := productservice.NewService(new(MockProductRepository), logger.Nop())

	_, err := svc.CreateProduct(context.Background(), domain.Product{Category: "PK", Subcategory: "  "})

	assert.IsType(t, &apperror.ValidationError{}, err)
}

// TestCreateProduct_PropagatesConflict testa que o conflito do repositório chega ao chamador.
func TestCreateProduct_PropagatesConflict(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(domain.Product{}, apperror.NewConflictError("duplicado"))

	_, err := svc.CreateProduct(context.Background(), domain.Product{Category: "PK", Subcategory: "4px"})

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

// TestGetProductByID_Fail_InvalidUUID testa a validação de formato do ID.
func TestGetProductByID_Fail_InvalidUUID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())

	_, err := svc.GetProductByID(context.Background(), "não-é-uuid")

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// TestGetProductByID_NotFound testa a propagação do 404.
func TestGetProductByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())
	id := uuid.New().String()
	mockRepo.On("FindByID", mock.Anything, id).Return(domain.Product{}, apperror.NewNotFoundError("produto"))

	_, err := svc.GetProductByID(context.Background(), id)

	assert.True(t, apperror.IsNotFound(err))
}

// TestUpdateProduct_Success testa que o ID da rota prevalece sobre o do corpo.
func TestUpdateProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())
	id := uuid.New().String()
	expected := domain.Product{ID: id, Category: "Timing", Subcategory: "88ZA19"}
	mockRepo.On("Update", mock.Anything, expected).Return(expected, nil)

	got, err := svc.UpdateProduct(context.Background(), id, domain.Product{ID: "outro", Category: "Timing", Subcategory: "88ZA19"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	mockRepo.AssertExpectations(t)
}

// TestListAndDelete testa as operações de delegação direta.
func TestListAndDelete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.Nop())
	id := uuid.New().String()
	mockRepo.On("FindAll", mock.Anything).Return([]domain.Product{{ID: id}}, nil)
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.NoError(t, svc.DeleteProduct(context.Background(), id))
	mockRepo.AssertExpectations(t)
}
