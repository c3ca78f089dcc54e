package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// HistoryTxRunner ejecuta la transición de un cliente a historial en una sola
// transacción: copia al historial y desactivación, ambas o ninguna.
type HistoryTxRunner interface {
	RunHistory(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		historyRepo repository.ClientHistoryRepository,
	) error) error
}

// ClientUseCase CRUD de clientes y transición a historial.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	historyRepo repository.ClientHistoryRepository
	txRunner    HistoryTxRunner
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, historyRepo repository.ClientHistoryRepository, txRunner HistoryTxRunner) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, historyRepo: historyRepo, txRunner: txRunner}
}

// Create registra un cliente. Nombre, apellido y cédula son obligatorios;
// la cédula no puede repetirse entre clientes.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Apellido) == "" || strings.TrimSpace(in.Cedula) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.clientRepo.GetByNationalID(ctx, in.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	client := &entity.Client{
		ID:           uuid.New().String(),
		FirstName:    in.Nombre,
		LastName:     in.Apellido,
		NationalID:   in.Cedula,
		Phone:        in.Telefono,
		Email:        in.Email,
		Address:      in.Direccion,
		RegisteredAt: time.Now(),
		Active:       true,
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// List lista clientes activos; search filtra por nombre, apellido o cédula.
func (uc *ClientUseCase) List(ctx context.Context, search string) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.ListActive(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Update edita los datos de un cliente activo.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Apellido) == "" || strings.TrimSpace(in.Cedula) == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.Active {
		return nil, domain.ErrNotFound
	}
	client.FirstName = in.Nombre
	client.LastName = in.Apellido
	client.NationalID = in.Cedula
	client.Phone = in.Telefono
	client.Email = in.Email
	client.Address = in.Direccion
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// MoveToHistory copia el cliente al historial con fecha y motivo, y lo
// desactiva, todo dentro de una transacción. Después de esta operación el
// cliente deja de aparecer en las consultas de clientes activos.
func (uc *ClientUseCase) MoveToHistory(ctx context.Context, clientID, reason string) error {
	if clientID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunHistory(ctx, func(
		clientRepo repository.ClientRepository,
		historyRepo repository.ClientHistoryRepository,
	) error {
		client, err := clientRepo.GetByID(ctx, clientID)
		if err != nil {
			return err
		}
		if client == nil || !client.Active {
			return domain.ErrNotFound
		}
		entry := &entity.ClientHistoryEntry{
			ID:               uuid.New().String(),
			OriginalClientID: client.ID,
			FirstName:        client.FirstName,
			LastName:         client.LastName,
			NationalID:       client.NationalID,
			Phone:            client.Phone,
			Email:            client.Email,
			Address:          client.Address,
			RegisteredAt:     client.RegisteredAt,
			DeletedAt:        time.Now(),
			DeletionReason:   reason,
		}
		if err := historyRepo.Create(ctx, entry); err != nil {
			return err
		}
		return clientRepo.Deactivate(ctx, client.ID)
	})
}

// History devuelve el historial de clientes eliminados con su resumen
// (totales, eliminaciones del mes y del año en curso).
func (uc *ClientUseCase) History(ctx context.Context, search string) (*dto.HistoryListResponse, error) {
	entries, err := uc.historyRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	resp := &dto.HistoryListResponse{
		Historial: make([]dto.ClientHistoryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Historial = append(resp.Historial, dto.ClientHistoryResponse{
			ID:                e.ID,
			ClienteIDOriginal: e.OriginalClientID,
			Nombre:            e.FirstName,
			Apellido:          e.LastName,
			Cedula:            e.NationalID,
			Telefono:          e.Phone,
			Email:             e.Email,
			Direccion:         e.Address,
			FechaRegistro:     e.RegisteredAt,
			FechaEliminacion:  e.DeletedAt,
			MotivoEliminacion: e.DeletionReason,
		})
		resp.Resumen.Total++
		if e.DeletedAt.Year() == now.Year() {
			resp.Resumen.EsteAno++
			if e.DeletedAt.Month() == now.Month() {
				resp.Resumen.EsteMes++
			}
		}
	}
	return resp, nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:            c.ID,
		Nombre:        c.FirstName,
		Apellido:      c.LastName,
		Cedula:        c.NationalID,
		Telefono:      c.Phone,
		Email:         c.Email,
		Direccion:     c.Address,
		FechaRegistro: c.RegisteredAt,
		Activo:        c.Active,
	}
}
