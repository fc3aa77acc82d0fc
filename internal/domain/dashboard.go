package domain

// ItemGroup agrupa itens de um card do dashboard com sua contagem.
type ItemGroup[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

// DashboardStats é o resumo exibido no dashboard.
type DashboardStats struct {
	TotalStock       int               `json:"totalStock"`
	LowStockItems    ItemGroup[Stock]  `json:"lowStockItems"`
	MediumStockItems ItemGroup[Stock]  `json:"mediumStockItems"`
	HighStockItems   ItemGroup[Stock]  `json:"highStockItems"`
	Categories       ItemGroup[string] `json:"categories"`
	Subcategories    ItemGroup[string] `json:"subcategories"`
}
