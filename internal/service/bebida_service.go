package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JordiGD/Parcial2-Soft1/internal/dto"
	"github.com/JordiGD/Parcial2-Soft1/internal/model"
	"github.com/JordiGD/Parcial2-Soft1/internal/repository"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// BebidaService enforces the catalog invariants (normalized name, size enum,
// price range, no duplicate name+size) and maps intents onto the store.
type BebidaService interface {
	Listar(ctx context.Context) ([]dto.BebidaResponse, error)
	BuscarPorNombre(ctx context.Context, nombre string) (*dto.BebidaResponse, error)
	Crear(ctx context.Context, req dto.CrearBebidaRequest) (*dto.BebidaResponse, error)
	EliminarPorID(ctx context.Context, id int) error
	Existe(ctx context.Context, nombre, tamano string) (bool, error)
	SeedMenu(ctx context.Context) (*dto.SeedResponse, error)
}

type bebidaService struct {
	repo repository.BebidaRepository
}

func NewBebidaService(repo repository.BebidaRepository) BebidaService {
	return &bebidaService{repo: repo}
}

func mapBebida(b model.Bebida) dto.BebidaResponse {
	return dto.BebidaResponse{ID: b.ID, Name: b.Name, Size: b.Size, Price: b.Price}
}

// ── Validation ───────────────────────────────────────────────────────────────
// Checks run in fixed order (name → size → price) and the first failure wins.

func validarNombre(nombre string) (string, *ValidationError) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return "", &ValidationError{Field: "name", Detail: "El nombre no puede estar vacío"}
	}
	if len([]rune(nombre)) > 100 {
		return "", &ValidationError{Field: "name", Detail: "El nombre no puede superar 100 caracteres"}
	}
	return cases.Title(language.Und).String(nombre), nil
}

func validarTamano(tamano string) (string, *ValidationError) {
	tamano = strings.ToLower(tamano)
	for _, valido := range model.TamanosValidos {
		if tamano == valido {
			return tamano, nil
		}
	}
	return "", &ValidationError{
		Field:  "size",
		Detail: fmt.Sprintf("Tamaño debe ser uno de: %s", strings.Join(model.TamanosValidos, ", ")),
	}
}

func validarPrecio(precio float64) *ValidationError {
	if precio <= 0 || precio > 100 {
		return &ValidationError{Field: "price", Detail: "Precio debe ser positivo y a lo sumo 100"}
	}
	return nil
}

// ── Operations ───────────────────────────────────────────────────────────────

func (s *bebidaService) Listar(ctx context.Context) ([]dto.BebidaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BebidaResponse, 0, len(list))
	for _, b := range list {
		result = append(result, mapBebida(b))
	}
	return result, nil
}

func (s *bebidaService) BuscarPorNombre(ctx context.Context, nombre string) (*dto.BebidaResponse, error) {
	b, err := s.repo.BuscarPorNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Detail: fmt.Sprintf("Bebida '%s' no encontrada en el menú", nombre)}
		}
		return nil, err
	}
	resp := mapBebida(*b)
	return &resp, nil
}

func (s *bebidaService) Crear(ctx context.Context, req dto.CrearBebidaRequest) (*dto.BebidaResponse, error) {
	nombre, verr := validarNombre(req.Name)
	if verr != nil {
		return nil, verr
	}
	tamano, verr := validarTamano(req.Size)
	if verr != nil {
		return nil, verr
	}
	if verr := validarPrecio(req.Price); verr != nil {
		return nil, verr
	}

	// Duplicate pre-check. The (name, size) index is non-unique, so two
	// concurrent creates of the same pair can still race past this point.
	existe, err := s.Existe(ctx, nombre, tamano)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, &ConflictError{Name: nombre, Size: tamano}
	}

	b := &model.Bebida{Name: nombre, Size: tamano, Price: req.Price}
	if err := s.repo.Crear(ctx, b); err != nil {
		return nil, err
	}
	resp := mapBebida(*b)
	return &resp, nil
}

func (s *bebidaService) EliminarPorID(ctx context.Context, id int) error {
	eliminada, err := s.repo.EliminarPorID(ctx, id)
	if err != nil {
		return err
	}
	if !eliminada {
		return &NotFoundError{Detail: fmt.Sprintf("Bebida con ID %d no encontrada", id)}
	}
	return nil
}

func (s *bebidaService) Existe(ctx context.Context, nombre, tamano string) (bool, error) {
	_, err := s.repo.ObtenerPorNombreYTamano(ctx, nombre, tamano)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// menuPorDefecto is the fixed seed list used by SeedMenu.
var menuPorDefecto = []dto.CrearBebidaRequest{
	{Name: "Latte", Size: "small", Price: 2.50},
	{Name: "Latte", Size: "medium", Price: 3.50},
	{Name: "Latte", Size: "large", Price: 4.50},
	{Name: "Espresso", Size: "small", Price: 2.00},
	{Name: "Espresso", Size: "medium", Price: 2.75},
	{Name: "Cappuccino", Size: "medium", Price: 3.25},
	{Name: "Cappuccino", Size: "large", Price: 4.00},
	{Name: "Americano", Size: "medium", Price: 2.50},
	{Name: "Americano", Size: "large", Price: 3.25},
	{Name: "Mocha", Size: "large", Price: 4.75},
}

// SeedMenu inserts the default menu, skipping pairs that already exist.
// Best-effort: per-item failures are swallowed and the loop continues.
func (s *bebidaService) SeedMenu(ctx context.Context) (*dto.SeedResponse, error) {
	creadas := 0
	for _, req := range menuPorDefecto {
		existe, err := s.Existe(ctx, req.Name, req.Size)
		if err != nil || existe {
			continue
		}
		if _, err := s.Crear(ctx, req); err != nil {
			continue
		}
		creadas++
	}

	total, err := s.repo.Contar(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SeedResponse{
		Message:      fmt.Sprintf("Menú inicializado con %d bebidas", creadas),
		TotalBebidas: total,
	}, nil
}
