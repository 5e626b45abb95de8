package cataloging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_LatestSales_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "zero usa o padrão", limit: 0, wantLimit: 5},
		{name: "negativo usa o padrão", limit: -3, wantLimit: 5},
		{name: "dentro do intervalo", limit: 20, wantLimit: 20},
		{name: "acima do máximo", limit: 500, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := &domain.Sale{
				ID:          1,
				Description: "WHITE HANGING HEART",
				Quantity:    6,
				UnitPrice:   2.55,
				Amount:      15.3,
				InvoiceDate: time.Date(2011, 12, 9, 12, 50, 0, 0, time.UTC),
				Country:     "France",
			}
			mockRepo.EXPECT().LatestSales(gomock.Any(), tt.wantLimit).Return([]*domain.Sale{sale}, nil)

			sales, err := service.LatestSales(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, []*domain.Sale{sale}, sales)
		})
	}
}

func TestService_ListCountries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ListCountries(gomock.Any()).Return([]string{"Australia", " ", "France ", "United Kingdom"}, nil)

	countries, err := service.ListCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Australia", "France", "United Kingdom"}, countries)
}

func TestService_ListCountries_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	dbErr := errors.New("connection refused")
	mockRepo.EXPECT().ListCountries(gomock.Any()).Return(nil, dbErr)

	_, err := service.ListCountries(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "listing countries")
}

func TestService_ProductStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ProductStats(gomock.Any(), domain.ProductStatsQuery{Page: 1, PageSize: 100, Search: "mug", SortDesc: true}).
		Return([]*domain.ProductStat{
			{Product: "MUG A", Sales: 50, Quantity: 10, Price: 5, TotalCount: 42},
			{Product: "MUG B", Sales: 40, Quantity: 8, Price: 5, TotalCount: 42},
		}, nil)

	page, err := service.ProductStats(context.Background(), domain.ProductStatsQuery{
		Page:     0,
		PageSize: 1000,
		Search:   "  mug ",
		SortDesc: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, int64(42), page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "MUG A", page.Items[0].Product)
}

func TestService_ProductStats_EmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ProductStats(gomock.Any(), gomock.Any()).Return([]*domain.ProductStat{}, nil)

	page, err := service.ProductStats(context.Background(), domain.ProductStatsQuery{Page: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 10, page.PageSize)
	assert.NotNil(t, page.Items)
}

func TestService_TopProductsByCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	want := []*domain.CountryProduct{{Country: "France", Product: "POSTAGE", TotalSales: 3000}}
	mockRepo.EXPECT().TopProductsByCountry(gomock.Any()).Return(want, nil)

	got, err := service.TopProductsByCountry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_ListSales(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "valores padrão", page: 0, pageSize: 0, wantPage: 1, wantPageSize: 50},
		{name: "dentro do intervalo", page: 4, pageSize: 20, wantPage: 4, wantPageSize: 20},
		{name: "tamanho acima do máximo", page: 2, pageSize: 5000, wantPage: 2, wantPageSize: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockSalesRepository(ctrl)
			service := NewService(mockRepo)

			sale := &domain.Sale{ID: 536365, Description: "WHITE HANGING HEART", Quantity: 6, UnitPrice: 2.55, Amount: 15.3, Country: "United Kingdom"}
			mockRepo.EXPECT().
				ListSales(gomock.Any(), tt.wantPage, tt.wantPageSize).
				Return([]*domain.Sale{sale}, int64(541909), nil)

			page, err := service.ListSales(context.Background(), tt.page, tt.pageSize)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPageSize, page.PageSize)
			assert.Equal(t, int64(541909), page.TotalCount)
			assert.Equal(t, []domain.Sale{*sale}, page.Items)
		})
	}
}

func TestService_ListSales_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	dbErr := errors.New("connection refused")
	mockRepo.EXPECT().ListSales(gomock.Any(), 1, 50).Return(nil, int64(0), dbErr)

	_, err := service.ListSales(context.Background(), 1, 0)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "listing sales")
}

func TestService_ListSales_EmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ListSales(gomock.Any(), 99, 50).Return([]*domain.Sale{}, int64(10), nil)

	page, err := service.ListSales(context.Background(), 99, 50)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(10), page.TotalCount)
}
