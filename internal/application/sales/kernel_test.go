package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/sales"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/internal/infrastructure/sqlite"
	"github.com/jhoicas/sys360/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newKernel(t *testing.T) (*sales.Kernel, *sqlite.ProductRepo, *sqlite.SaleRepo, int64) {
	t.Helper()
	c := testutil.NewContainer(t)
	products := sqlite.NewProductRepository(c.DB)
	clients := sqlite.NewClientRepository(c.DB)
	k := sales.NewKernel(sqlite.NewTxRunner(c.DB), products, clients, nil, nil)
	return k, products, sqlite.NewSaleRepository(c.DB), testutil.AdminID(t, c)
}

func stockOf(t *testing.T, repo *sqlite.ProductRepo, id int64) int {
	t.Helper()
	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func saleCount(t *testing.T, repo *sqlite.SaleRepo) int64 {
	t.Helper()
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestProcessSale_TotalIncluyeFrete(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Arroz", Quantity: 10, SellPrice: dec("10.00"), Category: "Mercearia", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))

	id, err := k.ProcessSale(ctx, sales.SaleInput{
		OperatorID: op,
		Items:      []dto.CartItem{{ProductID: p.ID, Quantity: 2, UnitPrice: dec("10.00")}},
		Freight:    dec("5.00"),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	sale, err := salesRepo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, sale.Total.Equal(dec("25.00")), "total = %s", sale.Total)
	assert.Equal(t, entity.DeliveryPending, sale.DeliveryStatus)
	assert.Equal(t, 8, stockOf(t, products, p.ID))

	lines, err := salesRepo.Items(ctx, id)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Subtotal.Equal(dec("20.00")))
}

func TestProcessSale_EstoqueInsuficienteNaoAlteraNada(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Feijão", Quantity: 1, SellPrice: dec("7.50"), Category: "Mercearia", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))

	_, err := k.ProcessSale(ctx, sales.SaleInput{
		OperatorID: op,
		Items:      []dto.CartItem{{ProductID: p.ID, Quantity: 2, UnitPrice: dec("7.50")}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, domain.Reason(err), "Restam: 1")

	assert.Equal(t, 1, stockOf(t, products, p.ID))
	assert.Equal(t, int64(0), saleCount(t, salesRepo))
}

func TestProcessSale_IdsRepetidosSeSuman(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Açúcar", Quantity: 3, SellPrice: dec("4.00"), Category: "Mercearia", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))

	// 2 + 2 > 3 aunque cada línea por separado cabe en el stock.
	_, err := k.ProcessSale(ctx, sales.SaleInput{
		OperatorID: op,
		Items: []dto.CartItem{
			{ProductID: p.ID, Quantity: 2, UnitPrice: dec("4.00")},
			{ProductID: p.ID, Quantity: 2, UnitPrice: dec("4.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, stockOf(t, products, p.ID))
	assert.Equal(t, int64(0), saleCount(t, salesRepo))
}

func TestProcessSale_ProdutoInexistente(t *testing.T) {
	k, _, salesRepo, op := newKernel(t)

	_, err := k.ProcessSale(context.Background(), sales.SaleInput{
		OperatorID: op,
		Items:      []dto.CartItem{{ProductID: 999, Quantity: 1, UnitPrice: dec("1.00")}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, domain.Reason(err), "999")
	assert.Equal(t, int64(0), saleCount(t, salesRepo))
}

func TestProcessSale_ClienteInexistente(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Óleo", Quantity: 5, SellPrice: dec("9.90"), Category: "Mercearia", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))
	clientID := int64(42)

	_, err := k.ProcessSale(ctx, sales.SaleInput{
		OperatorID: op,
		ClientID:   &clientID,
		Items:      []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("9.90")}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, stockOf(t, products, p.ID))
	assert.Equal(t, int64(0), saleCount(t, salesRepo))
}

func TestProcessSale_EntradaInvalida(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Sal", Quantity: 5, SellPrice: dec("2.00"), Category: "Mercearia", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))

	cases := []struct {
		name  string
		in    sales.SaleInput
		cause error
	}{
		{"carrinho vazio", sales.SaleInput{OperatorID: op}, domain.ErrInvalidInput},
		{"sem operador", sales.SaleInput{Items: []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("2")}}}, domain.ErrUnauthorized},
		{"quantidade zero", sales.SaleInput{OperatorID: op, Items: []dto.CartItem{{ProductID: p.ID, Quantity: 0, UnitPrice: dec("2")}}}, domain.ErrInvalidInput},
		{"preço negativo", sales.SaleInput{OperatorID: op, Items: []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("-2")}}}, domain.ErrInvalidInput},
		{"subtotal divergente", sales.SaleInput{OperatorID: op, Items: []dto.CartItem{{ProductID: p.ID, Quantity: 2, UnitPrice: dec("2"), Subtotal: dec("5")}}}, domain.ErrInvalidInput},
		{"frete negativo", sales.SaleInput{OperatorID: op, Freight: dec("-1"), Items: []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("2")}}}, domain.ErrInvalidInput},
		{"pagamento desconhecido", sales.SaleInput{OperatorID: op, PaymentMethod: "cheque", Items: []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("2")}}}, domain.ErrInvalidInput},
		{"valor pago menor", sales.SaleInput{OperatorID: op, AmountPaid: dec("1"), Items: []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("2")}}}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := k.ProcessSale(ctx, tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, err, tc.cause)
		})
	}
	assert.Equal(t, 5, stockOf(t, products, p.ID))
	assert.Equal(t, int64(0), saleCount(t, salesRepo))
}

func TestProcessSale_TrocoCalculado(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Leite", Quantity: 10, SellPrice: dec("4.35"), Category: "Laticínios", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))

	id, err := k.ProcessSale(ctx, sales.SaleInput{
		OperatorID:    op,
		PaymentMethod: entity.PaymentCash,
		AmountPaid:    dec("20"),
		Items:         []dto.CartItem{{ProductID: p.ID, Quantity: 3, UnitPrice: dec("4.35")}},
	})
	require.NoError(t, err)

	sale, err := salesRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(dec("13.05")))
	assert.True(t, sale.ChangeDue.Equal(dec("6.95")), "troco = %s", sale.ChangeDue)
}

// failingSaleRepo falla al insertar la segunda línea.
type failingSaleRepo struct {
	repository.SaleRepository
	items int
}

func (r *failingSaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	r.items++
	if r.items > 1 {
		return errors.New("disk I/O error")
	}
	return r.SaleRepository.CreateItem(ctx, item)
}

type failingTxRunner struct{ inner *sqlite.TxRunner }

func (f failingTxRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	return f.inner.RunSale(ctx, func(s repository.SaleRepository, p repository.ProductRepository) error {
		return fn(&failingSaleRepo{SaleRepository: s}, p)
	})
}

func TestProcessSale_FalhaNoMeioFazRollback(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	products := sqlite.NewProductRepository(c.DB)
	salesRepo := sqlite.NewSaleRepository(c.DB)
	k := sales.NewKernel(failingTxRunner{inner: sqlite.NewTxRunner(c.DB)}, products, nil, nil, nil)

	a := &entity.Product{Name: "Café", Quantity: 5, SellPrice: dec("12"), Category: "Mercearia", Supplier: "ACME"}
	b := &entity.Product{Name: "Chá", Quantity: 5, SellPrice: dec("8"), Category: "Mercearia", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, a))
	require.NoError(t, products.Create(ctx, b))

	_, err := k.ProcessSale(ctx, sales.SaleInput{
		OperatorID: testutil.AdminID(t, c),
		Items: []dto.CartItem{
			{ProductID: a.ID, Quantity: 1, UnitPrice: dec("12")},
			{ProductID: b.ID, Quantity: 1, UnitPrice: dec("8")},
		},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, 5, stockOf(t, products, a.ID))
	assert.Equal(t, 5, stockOf(t, products, b.ID))
	assert.Equal(t, int64(0), saleCount(t, salesRepo))
}

func TestProcessSale_ConcorrenciaNaoVendeAlemDoEstoque(t *testing.T) {
	k, products, salesRepo, op := newKernel(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Cimento", Quantity: 5, SellPrice: dec("30"), Category: "Obra", Supplier: "ACME"}
	require.NoError(t, products.Create(ctx, p))

	const buyers = 20
	errs := make([]error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = k.ProcessSale(ctx, sales.SaleInput{
				OperatorID: op,
				Items:      []dto.CartItem{{ProductID: p.ID, Quantity: 1, UnitPrice: dec("30")}},
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}
	assert.Equal(t, 5, ok)
	assert.Equal(t, 0, stockOf(t, products, p.ID))
	assert.Equal(t, int64(5), saleCount(t, salesRepo))
}
