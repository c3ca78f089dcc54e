package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// CreateSaleUseCase registra ventas y gestiona su cancelación.
//
// La creación marca el terreno como vendido en la misma transacción que
// inserta la venta: ambas cosas o ninguna, para que un terreno nunca pueda
// venderse dos veces.
type CreateSaleUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, saleRepo repository.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, clientRepo: clientRepo, saleRepo: saleRepo}
}

// CreateSale valida y registra la venta. El terreno debe estar disponible;
// si otro proceso lo vendió primero se devuelve ErrPlotNotAvailable y no se
// escribe nada.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClienteID == "" || in.TerrenoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.PrecioTotal.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	paymentType := entity.PaymentType(in.TipoPago)
	if !paymentType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.Active {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ClientID:    in.ClienteID,
		PlotID:      in.TerrenoID,
		TotalPrice:  in.PrecioTotal,
		PaymentType: paymentType,
		SaleDate:    now,
		Status:      entity.SaleStatusActive,
		Notes:       in.Observaciones,
		CreatedAt:   now,
	}

	var plot *entity.Plot
	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		plotRepo repository.PlotRepository,
		_ repository.InstallmentRepository,
	) error {
		var err error
		plot, err = plotRepo.GetByIDForUpdate(ctx, in.TerrenoID)
		if err != nil {
			return err
		}
		if plot == nil {
			return domain.ErrNotFound
		}
		if plot.Status != entity.PlotStatusAvailable {
			return domain.ErrPlotNotAvailable
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		return plotRepo.UpdateStatus(ctx, plot.ID, entity.PlotStatusSold)
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(repository.SaleWithRefs{
		Sale:             *sale,
		ClientFirstName:  client.FirstName,
		ClientLastName:   client.LastName,
		ClientNationalID: client.NationalID,
		PlotLotNumber:    plot.LotNumber,
		PlotSection:      plot.Section,
		PlotBlock:        plot.Block,
	})
	return &resp, nil
}

// List devuelve las ventas con cliente y terreno, más recientes primero.
func (uc *CreateSaleUseCase) List(ctx context.Context, search string) ([]dto.SaleResponse, error) {
	rows, err := uc.saleRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSaleResponse(row))
	}
	return out, nil
}

// GetByID devuelve una venta con cliente y terreno.
func (uc *CreateSaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	row, err := uc.saleRepo.GetWithRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(*row)
	return &resp, nil
}

// CancelSale cancela una venta activa y devuelve el terreno a disponible.
// Se rechaza si la venta tiene cuotas ya pagadas: una venta con dinero
// cobrado no se cancela desde aquí.
func (uc *CreateSaleUseCase) CancelSale(ctx context.Context, saleID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		plotRepo repository.PlotRepository,
		instRepo repository.InstallmentRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status != entity.SaleStatusActive {
			return domain.ErrSaleNotActive
		}
		paid, err := instRepo.CountPaidBySale(ctx, saleID)
		if err != nil {
			return err
		}
		if paid > 0 {
			return domain.ErrHasPaidInstallments
		}
		if err := saleRepo.UpdateStatus(ctx, saleID, entity.SaleStatusCancelled); err != nil {
			return err
		}
		return plotRepo.UpdateStatus(ctx, sale.PlotID, entity.PlotStatusAvailable)
	})
}

func toSaleResponse(row repository.SaleWithRefs) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            row.ID,
		PrecioTotal:   row.TotalPrice,
		TipoPago:      string(row.PaymentType),
		FechaVenta:    row.SaleDate,
		Estado:        string(row.Status),
		Observaciones: row.Notes,
		NumCuotas:     row.NumInstallments,
		TasaInteres:   row.InterestRate,
		Cliente: dto.ClientSummary{
			Nombre:   row.ClientFirstName,
			Apellido: row.ClientLastName,
			Cedula:   row.ClientNationalID,
		},
		Terreno: dto.PlotSummary{
			NumeroLote: row.PlotLotNumber,
			Seccion:    row.PlotSection,
			Manzana:    row.PlotBlock,
		},
	}
}
