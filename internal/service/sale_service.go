package service

import (
	"github.com/cayro-uniformes/internal/constants"
	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/queue"
	"github.com/cayro-uniformes/internal/repository"
)

// SaleService consultas de ventas y transiciones de estado
type SaleService struct {
	saleRepo    repository.SaleRepository
	queueClient *queue.Client
}

// NewSaleService crea el servicio de ventas
func NewSaleService(saleRepo repository.SaleRepository, queueClient *queue.Client) *SaleService {
	return &SaleService{saleRepo: saleRepo, queueClient: queueClient}
}

// List listado de ventas con asociaciones
func (s *SaleService) List(filter repository.SaleListFilter) ([]models.Sale, int64, error) {
	return s.saleRepo.List(filter)
}

// Get detalle de una venta
func (s *SaleService) Get(id uint) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

// ListByUser compras de un usuario
func (s *SaleService) ListByUser(userID uint) ([]models.Sale, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	sales, _, err := s.saleRepo.List(repository.SaleListFilter{UserID: userID})
	return sales, err
}

// ActiveOrders ventas cuyo estado no es terminal (ni entregada ni cancelada)
func (s *SaleService) ActiveOrders() ([]models.Sale, error) {
	sales, _, err := s.saleRepo.List(repository.SaleListFilter{OnlyActive: true})
	return sales, err
}

// UpdateStatus asigna un estado a la venta del usuario indicado. No hay
// matriz de transiciones: cualquier estado válido se acepta. El cambio
// encola una notificación por correo.
func (s *SaleService) UpdateStatus(saleID, userID uint, status string) (*models.Sale, error) {
	if saleID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	if !constants.IsValidSaleStatus(status) {
		return nil, ErrInvalidSaleStatus
	}

	affected, err := s.saleRepo.UpdateStatus(saleID, userID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// inexistente o de otro usuario: mismo resultado hacia afuera
		return nil, ErrSaleNotFound
	}

	if err := s.queueClient.EnqueueSaleStatusEmail(queue.SaleStatusEmailPayload{
		SaleID: saleID,
		Status: status,
	}); err != nil {
		logger.Warnw("sale_status_email_enqueue_failed",
			"sale_id", saleID,
			"status", status,
			"error", err,
		)
	}

	return s.Get(saleID)
}

// Confirm marca la venta como entregada a nombre del usuario
func (s *SaleService) Confirm(saleID, userID uint) (*models.Sale, error) {
	return s.UpdateStatus(saleID, userID, constants.SaleStatusDelivered)
}
