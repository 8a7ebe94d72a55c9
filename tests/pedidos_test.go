package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JordiGD/Parcial2-Soft1/internal/dto"
	"github.com/JordiGD/Parcial2-Soft1/internal/model"
	"github.com/JordiGD/Parcial2-Soft1/internal/repository"
	"github.com/JordiGD/Parcial2-Soft1/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory PedidoRepository stub ──────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos []model.Pedido
	seq     int64
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{seq: 1000}
}

func (r *stubPedidoRepo) Crear(_ context.Context, p *model.Pedido) error {
	r.pedidos = append(r.pedidos, *p)
	return nil
}

func (r *stubPedidoRepo) Listar(_ context.Context) ([]model.Pedido, error) {
	return append([]model.Pedido(nil), r.pedidos...), nil
}

func (r *stubPedidoRepo) SiguienteID(_ context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubPedidoRepo) Inicializar(_ context.Context) error { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Stub drink menu (replaces the HTTP client) ───────────────────────────────
// Mirrors the catalog's substring lookup: first drink whose name contains the
// query, case-insensitive.

type stubDrinkMenu struct {
	drinks []model.Drink
}

func (m *stubDrinkMenu) ObtenerBebida(_ context.Context, nombre string) (*model.Drink, error) {
	q := strings.ToLower(nombre)
	for _, d := range m.drinks {
		if strings.Contains(strings.ToLower(d.Name), q) {
			found := d
			return &found, nil
		}
	}
	return nil, nil
}

var _ service.DrinkMenu = (*stubDrinkMenu)(nil)

func newPedidoService(drinks ...model.Drink) (service.PedidoService, *stubPedidoRepo) {
	repo := newStubPedidoRepo()
	return service.NewPedidoService(repo, &stubDrinkMenu{drinks: drinks}), repo
}

// ── Crear ────────────────────────────────────────────────────────────────────

func TestCrearPedidoConfirmado(t *testing.T) {
	svc, repo := newPedidoService(model.Drink{Name: "Latte", Size: "medium", Price: 3.50})

	resp, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{Drink: &dto.DrinkRequest{Name: "Latte"}, Size: "medium", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, model.PedidoConfirmado, resp.Status)
	assert.Equal(t, 7.00, resp.TotalPrice)
	assert.False(t, resp.OrderDate.IsZero())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Latte", resp.Items[0].Drink.Name)
	assert.Len(t, repo.pedidos, 1)
}

func TestCrearPedidoAceptaProductName(t *testing.T) {
	svc, _ := newPedidoService(model.Drink{Name: "Espresso", Size: "small", Price: 2.00})

	resp, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Espresso", Size: "small", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.00, resp.TotalPrice)
}

func TestCrearPedidoTotalConDecimales(t *testing.T) {
	svc, _ := newPedidoService(model.Drink{Name: "Espresso", Size: "medium", Price: 2.75})

	resp, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Espresso", Size: "medium", Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.25, resp.TotalPrice)
}

func TestCrearPedidoVariosItems(t *testing.T) {
	svc, _ := newPedidoService(
		model.Drink{Name: "Latte", Size: "small", Price: 2.50},
		model.Drink{Name: "Mocha", Size: "large", Price: 4.75},
	)

	resp, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Latte", Size: "small", Quantity: 2},
			{ProductName: "Mocha", Size: "large", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 9.75, resp.TotalPrice)
	assert.Len(t, resp.Items, 2)
}

func TestCrearPedidoSinItems(t *testing.T) {
	svc, repo := newPedidoService()

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Detail, "al menos un item")
	assert.Empty(t, repo.pedidos)
}

func TestCrearPedidoCantidadInvalida(t *testing.T) {
	svc, repo := newPedidoService(model.Drink{Name: "Latte", Size: "medium", Price: 3.50})

	for _, cantidad := range []int{0, -2} {
		_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
			Items: []dto.PedidoItemRequest{
				{ProductName: "Latte", Size: "medium", Quantity: cantidad},
			},
		})
		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve, "quantity %d", cantidad)
		assert.Contains(t, ve.Detail, "mayor a 0")
	}
	assert.Empty(t, repo.pedidos)
}

func TestCrearPedidoSinNombreDeBebida(t *testing.T) {
	svc, _ := newPedidoService()

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{{Size: "small", Quantity: 1}},
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Detail, "requerido")
}

func TestCrearPedidoBebidaNoDisponible(t *testing.T) {
	svc, repo := newPedidoService(model.Drink{Name: "Latte", Size: "medium", Price: 3.50})

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Chocolate Caliente", Size: "medium", Quantity: 1},
		},
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Detail, "no disponible en el menú")
	assert.Empty(t, repo.pedidos)
}

func TestCrearPedidoTamanoIncorrecto(t *testing.T) {
	svc, repo := newPedidoService(model.Drink{Name: "Latte", Size: "medium", Price: 3.50})

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Latte", Size: "large", Quantity: 1},
		},
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Detail, "tamaño 'large'")
	assert.Empty(t, repo.pedidos)
}

type stubPedidoRepoSinSecuencia struct {
	stubPedidoRepo
}

func (r *stubPedidoRepoSinSecuencia) SiguienteID(_ context.Context) (int64, error) {
	return 0, errors.New(`sequences: contador "sequence" no inicializado`)
}

func TestCrearPedidoFallaSiNoHaySecuencia(t *testing.T) {
	repo := &stubPedidoRepoSinSecuencia{}
	svc := service.NewPedidoService(repo, &stubDrinkMenu{
		drinks: []model.Drink{{Name: "Latte", Size: "medium", Price: 3.50}},
	})

	// A missing counter is a store fault, never a silent restart of ids:
	// the error surfaces and no order is written.
	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Latte", Size: "medium", Quantity: 1},
		},
	})
	require.Error(t, err)
	var ve *service.ValidationError
	assert.False(t, errors.As(err, &ve))
	assert.Empty(t, repo.pedidos)
}

// ── Listar ───────────────────────────────────────────────────────────────────

func TestListarPedidos(t *testing.T) {
	svc, _ := newPedidoService(model.Drink{Name: "Latte", Size: "medium", Price: 3.50})
	ctx := context.Background()

	list, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Crear(ctx, dto.CrearPedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductName: "Latte", Size: "medium", Quantity: 1},
		},
	})
	require.NoError(t, err)

	list, err = svc.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1001), list[0].ID)
}
