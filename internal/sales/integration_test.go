package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SalesLifecycleTestSuite drives the full sale lifecycle end to end against
// the in-memory repository: record, verify stock, annul, verify restoration.
type SalesLifecycleTestSuite struct {
	suite.Suite
	repo    *memoryRepo
	service *Service
	ctx     context.Context
}

func (s *SalesLifecycleTestSuite) SetupTest() {
	s.repo = newMemoryRepo(map[string]int{
		"COCA-2L":  24,
		"PAN-UNID": 50,
		"ARROZ-KG": 12,
	})
	s.service = NewService(s.repo, nil, nil, nil, nil)
	s.ctx = context.Background()
}

func (s *SalesLifecycleTestSuite) TestFullLifecycle() {
	t := s.T()

	// A morning of sales.
	first, err := s.service.Create(s.ctx, CreateSaleInput{
		CustomerName:  "Carla Mamani",
		CustomerTaxID: "4789123",
		Items: []Item{
			{SKU: "COCA-2L", Quantity: 2, UnitPrice: 12},
			{SKU: "PAN-UNID", Quantity: 10, UnitPrice: 0.5},
		},
		Total: 29,
	})
	require.NoError(t, err)
	require.Equal(t, "AS1", first)

	second, err := s.service.Create(s.ctx, CreateSaleInput{
		Items: []Item{{SKU: "ARROZ-KG", Quantity: 3, UnitPrice: 9}},
		Total: 27,
	})
	require.NoError(t, err)
	require.Equal(t, "AS2", second)

	require.Equal(t, 22, s.repo.products["COCA-2L"])
	require.Equal(t, 40, s.repo.products["PAN-UNID"])
	require.Equal(t, 9, s.repo.products["ARROZ-KG"])

	// The first customer returns everything.
	require.NoError(t, s.service.Annul(s.ctx, first))
	require.Equal(t, 24, s.repo.products["COCA-2L"])
	require.Equal(t, 50, s.repo.products["PAN-UNID"])

	// The second sale is untouched by the first annulment.
	require.Equal(t, 9, s.repo.products["ARROZ-KG"])

	sales, err := s.service.List(s.ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	byID := map[string]Sale{}
	for _, sale := range sales {
		byID[sale.SaleID] = sale
	}
	require.Equal(t, StatusAnnulled, byID[first].Status)
	require.Equal(t, StatusCompleted, byID[second].Status)

	// Identifier sequence keeps climbing past annulled sales; AS1 is
	// never reissued.
	third, err := s.service.Create(s.ctx, CreateSaleInput{
		Items: []Item{{SKU: "PAN-UNID", Quantity: 1}},
		Total: 0.5,
	})
	require.NoError(t, err)
	require.Equal(t, "AS3", third)
}

func TestSalesLifecycleSuite(t *testing.T) {
	suite.Run(t, new(SalesLifecycleTestSuite))
}
