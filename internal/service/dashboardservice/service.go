package dashboardservice

import (
	"context"
	"sort"

	"beltstock/internal/domain"
	"beltstock/internal/pkg/logger"
)

// StockLister fornece as linhas de estoque.
type StockLister interface {
	FindAll(ctx context.Context) ([]domain.Stock, error)
}

type Service struct {
	stocks StockLister
	logger logger.Logger
}

func NewService(stocks StockLister, log logger.Logger) *Service {
	return &Service{stocks: stocks, logger: log}
}

// Stats calcula o resumo do dashboard a partir das linhas de estoque atuais.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stocks, err := s.stocks.FindAll(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return Summarize(stocks), nil
}

// Summarize agrupa as linhas pelos limites padrão (os limites próprios de cada linha
// não entram aqui) e lista categorias e subcategorias distintas em ordem alfabética.
func Summarize(stocks []domain.Stock) domain.DashboardStats {
	stats := domain.DashboardStats{
		LowStockItems:    domain.ItemGroup[domain.Stock]{Items: []domain.Stock{}},
		MediumStockItems: domain.ItemGroup[domain.Stock]{Items: []domain.Stock{}},
		HighStockItems:   domain.ItemGroup[domain.Stock]{Items: []domain.Stock{}},
	}
	categories := make(map[string]struct{})
	subcategories := make(map[string]struct{})

	for _, st := range stocks {
		stats.TotalStock += st.Quantity
		st.CurrentStatus = domain.ClassifyQuantity(st.Quantity, nil)
		switch st.CurrentStatus {
		case domain.StatusLow:
			stats.LowStockItems.Items = append(stats.LowStockItems.Items, st)
		case domain.StatusMedium:
			stats.MediumStockItems.Items = append(stats.MediumStockItems.Items, st)
		default:
			stats.HighStockItems.Items = append(stats.HighStockItems.Items, st)
		}
		categories[st.Category] = struct{}{}
		subcategories[st.Subcategory] = struct{}{}
	}

	stats.LowStockItems.Count = len(stats.LowStockItems.Items)
	stats.MediumStockItems.Count = len(stats.MediumStockItems.Items)
	stats.HighStockItems.Count = len(stats.HighStockItems.Items)
	stats.Categories = sortedGroup(categories)
	stats.Subcategories = sortedGroup(subcategories)
	return stats
}

func sortedGroup(set map[string]struct{}) domain.ItemGroup[string] {
	items := make([]string, 0, len(set))
	for k := range set {
		items = append(items, k)
	}
	sort.Strings(items)
	return domain.ItemGroup[string]{Count: len(items), Items: items}
}
