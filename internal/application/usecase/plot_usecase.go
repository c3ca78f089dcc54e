package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// PlotUseCase CRUD de terrenos.
type PlotUseCase struct {
	plotRepo repository.PlotRepository
}

// NewPlotUseCase construye el caso de uso.
func NewPlotUseCase(plotRepo repository.PlotRepository) *PlotUseCase {
	return &PlotUseCase{plotRepo: plotRepo}
}

// Create registra un terreno. Estado vacío se interpreta como disponible.
func (uc *PlotUseCase) Create(ctx context.Context, in dto.CreatePlotRequest) (*dto.PlotResponse, error) {
	if strings.TrimSpace(in.NumeroLote) == "" || strings.TrimSpace(in.Seccion) == "" || strings.TrimSpace(in.Manzana) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Precio.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	plotType := entity.PlotType(in.Tipo)
	if !plotType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	status := entity.PlotStatus(in.Estado)
	if in.Estado == "" {
		status = entity.PlotStatusAvailable
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	plot := &entity.Plot{
		ID:          uuid.New().String(),
		LotNumber:   in.NumeroLote,
		Section:     in.Seccion,
		Block:       in.Manzana,
		Price:       in.Precio,
		Type:        plotType,
		Status:      status,
		Dimensions:  in.Dimensiones,
		Description: in.Descripcion,
	}
	if err := uc.plotRepo.Create(ctx, plot); err != nil {
		return nil, err
	}
	resp := toPlotResponse(plot)
	return &resp, nil
}

// List lista terrenos; status vacío devuelve todos, "disponible" los vendibles.
func (uc *PlotUseCase) List(ctx context.Context, status string) ([]dto.PlotResponse, error) {
	plotStatus := entity.PlotStatus(status)
	if status != "" && !plotStatus.Valid() {
		return nil, domain.ErrInvalidInput
	}
	plots, err := uc.plotRepo.List(ctx, plotStatus)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlotResponse, 0, len(plots))
	for _, p := range plots {
		out = append(out, toPlotResponse(p))
	}
	return out, nil
}

// GetByID devuelve un terreno.
func (uc *PlotUseCase) GetByID(ctx context.Context, id string) (*dto.PlotResponse, error) {
	plot, err := uc.plotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plot == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPlotResponse(plot)
	return &resp, nil
}

// Update edita un terreno. El estado puede ajustarse manualmente (por ejemplo
// a reservado); la transición a vendido por una venta ocurre en su propia
// transacción, no por aquí.
func (uc *PlotUseCase) Update(ctx context.Context, id string, in dto.UpdatePlotRequest) (*dto.PlotResponse, error) {
	plotType := entity.PlotType(in.Tipo)
	status := entity.PlotStatus(in.Estado)
	if !plotType.Valid() || !status.Valid() || !in.Precio.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	plot, err := uc.plotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plot == nil {
		return nil, domain.ErrNotFound
	}
	plot.LotNumber = in.NumeroLote
	plot.Section = in.Seccion
	plot.Block = in.Manzana
	plot.Price = in.Precio
	plot.Type = plotType
	plot.Status = status
	plot.Dimensions = in.Dimensiones
	plot.Description = in.Descripcion
	if err := uc.plotRepo.Update(ctx, plot); err != nil {
		return nil, err
	}
	resp := toPlotResponse(plot)
	return &resp, nil
}

func toPlotResponse(p *entity.Plot) dto.PlotResponse {
	return dto.PlotResponse{
		ID:          p.ID,
		NumeroLote:  p.LotNumber,
		Seccion:     p.Section,
		Manzana:     p.Block,
		Precio:      p.Price,
		Tipo:        string(p.Type),
		Estado:      string(p.Status),
		Dimensiones: p.Dimensions,
		Descripcion: p.Description,
	}
}
