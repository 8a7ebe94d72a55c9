package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JordiGD/Parcial2-Soft1/internal/dto"
	"github.com/JordiGD/Parcial2-Soft1/internal/model"
	"github.com/JordiGD/Parcial2-Soft1/internal/repository"

	"github.com/shopspring/decimal"
)

// DrinkMenu is the view of the bebidas API the order flow needs.
// Implemented by infra.BebidasClient; (nil, nil) means not on the menu.
type DrinkMenu interface {
	ObtenerBebida(ctx context.Context, nombre string) (*model.Drink, error)
}

// PedidoService validates orders against the live menu, prices them and
// persists confirmed orders.
type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
}

type pedidoService struct {
	repo repository.PedidoRepository
	menu DrinkMenu
}

func NewPedidoService(repo repository.PedidoRepository, menu DrinkMenu) PedidoService {
	return &pedidoService{repo: repo, menu: menu}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PedidoItemResponse{
			Drink: dto.DrinkResponse{
				Name:  it.Drink.Name,
				Size:  it.Drink.Size,
				Price: it.Drink.Price,
			},
			Size:     it.Size,
			Quantity: it.Quantity,
		})
	}
	return dto.PedidoResponse{
		ID:         p.ID,
		Items:      items,
		TotalPrice: p.TotalPrice,
		OrderDate:  p.OrderDate,
		Status:     p.Status,
	}
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Detail: "La orden debe tener al menos un item"}
	}

	items := make([]model.PedidoItem, 0, len(req.Items))
	total := decimal.Zero

	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, &ValidationError{Field: "quantity", Detail: "La cantidad debe ser mayor a 0"}
		}
		nombre := strings.TrimSpace(it.NombreBebida())
		if nombre == "" {
			return nil, &ValidationError{Field: "drink", Detail: "El nombre de la bebida es requerido"}
		}

		drink, err := s.menu.ObtenerBebida(ctx, nombre)
		if err != nil {
			return nil, fmt.Errorf("consultar menú: %w", err)
		}
		if drink == nil {
			return nil, &ValidationError{
				Field:  "drink",
				Detail: fmt.Sprintf("Bebida no disponible en el menú: %s", nombre),
			}
		}
		if drink.Size != it.Size {
			return nil, &ValidationError{
				Field:  "size",
				Detail: fmt.Sprintf("La bebida '%s' no está disponible en el tamaño '%s'", drink.Name, it.Size),
			}
		}

		total = total.Add(decimal.NewFromFloat(drink.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, model.PedidoItem{Drink: *drink, Size: it.Size, Quantity: it.Quantity})
	}

	id, err := s.repo.SiguienteID(ctx)
	if err != nil {
		return nil, fmt.Errorf("generar id de orden: %w", err)
	}

	p := &model.Pedido{
		ID:         id,
		Items:      items,
		TotalPrice: total.Round(2).InexactFloat64(),
		OrderDate:  time.Now().UTC(),
		Status:     model.PedidoConfirmado,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, fmt.Errorf("guardar orden: %w", err)
	}

	resp := mapPedido(*p)
	return &resp, nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPedido(p))
	}
	return result, nil
}
