package queue

import (
	"encoding/json"

	"github.com/cayro-uniformes/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskSaleStatusEmail notificación por correo del cambio de estado
	TaskSaleStatusEmail = constants.TaskSaleStatusEmail
	// TaskLowStockAlert alerta de stock bajo tras un ajuste
	TaskLowStockAlert = constants.TaskLowStockAlert
)

// SaleStatusEmailPayload carga del correo de estado de venta
type SaleStatusEmailPayload struct {
	SaleID uint   `json:"sale_id"`
	Status string `json:"status"`
}

// LowStockAlertPayload carga de la alerta de stock bajo
type LowStockAlertPayload struct {
	ProductVariantID uint `json:"product_variant_id"`
	Stock            int  `json:"stock"`
	Threshold        int  `json:"threshold"`
}

// NewSaleStatusEmailTask crea la tarea de correo de estado
func NewSaleStatusEmailTask(payload SaleStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSaleStatusEmail, body), nil
}

// NewLowStockAlertTask crea la tarea de alerta de stock bajo
func NewLowStockAlertTask(payload LowStockAlertPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockAlert, body), nil
}
