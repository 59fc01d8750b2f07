package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/provider"
	"github.com/cayro-uniformes/internal/queue"
	"github.com/cayro-uniformes/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer consumidor de tareas asíncronas
type Consumer struct {
	*provider.Container
}

// NewConsumer crea el consumidor
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registra los manejadores de tareas
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskSaleStatusEmail, c.handleSaleStatusEmail)
	mux.HandleFunc(queue.TaskLowStockAlert, c.handleLowStockAlert)
}

func (c *Consumer) handleSaleStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_sale_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SaleStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_sale_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.SaleID == 0 {
		logger.Debugw("worker_sale_status_email_skip_invalid_payload", "sale_id", payload.SaleID)
		return nil
	}
	sale, err := c.SaleRepo.GetByID(payload.SaleID)
	if err != nil {
		logger.Warnw("worker_sale_status_email_fetch_sale_failed", "sale_id", payload.SaleID, "error", err)
		return err
	}
	if sale == nil {
		logger.Debugw("worker_sale_status_email_skip_sale_not_found", "sale_id", payload.SaleID)
		return nil
	}

	receiverEmail := ""
	userName := ""
	if sale.User != nil {
		receiverEmail = strings.TrimSpace(sale.User.Email)
		userName = strings.TrimSpace(sale.User.Name)
	}
	if receiverEmail == "" {
		logger.Debugw("worker_sale_status_email_skip_empty_receiver", "sale_id", sale.ID, "reference", sale.Reference)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_sale_status_email_skip_email_service_nil", "sale_id", sale.ID, "reference", sale.Reference)
		return nil
	}

	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = sale.Status
	}
	input := service.SaleStatusEmailInput{
		Reference: sale.Reference,
		Status:    status,
		Total:     sale.Total,
		UserName:  userName,
	}
	if err := c.EmailService.SendSaleStatusEmail(receiverEmail, input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_sale_status_email_skip_disabled", "sale_id", sale.ID, "reference", sale.Reference)
			return nil
		}
		logger.Warnw("worker_sale_status_email_send_failed",
			"sale_id", sale.ID,
			"reference", sale.Reference,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleLowStockAlert(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_low_stock_alert_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LowStockAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_low_stock_alert_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductVariantID == 0 {
		logger.Debugw("worker_low_stock_alert_skip_invalid_payload", "variant_id", payload.ProductVariantID)
		return nil
	}
	variant, err := c.VariantRepo.GetByID(payload.ProductVariantID)
	if err != nil {
		logger.Warnw("worker_low_stock_alert_fetch_variant_failed", "variant_id", payload.ProductVariantID, "error", err)
		return err
	}
	if variant == nil {
		logger.Debugw("worker_low_stock_alert_skip_variant_not_found", "variant_id", payload.ProductVariantID)
		return nil
	}

	receiverEmail := ""
	if c.Config != nil {
		receiverEmail = strings.TrimSpace(c.Config.Email.AlertsTo)
	}
	if receiverEmail == "" {
		logger.Debugw("worker_low_stock_alert_skip_empty_receiver", "variant_id", variant.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_low_stock_alert_skip_email_service_nil", "variant_id", variant.ID)
		return nil
	}

	productName := ""
	if variant.Product != nil {
		productName = variant.Product.Name
	}
	input := service.LowStockAlertInput{
		ProductName: productName,
		ColorName:   variant.Color.Name,
		SizeName:    variant.Size.Name,
		Stock:       payload.Stock,
		Threshold:   payload.Threshold,
	}
	if err := c.EmailService.SendLowStockAlert(receiverEmail, input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_low_stock_alert_skip_disabled", "variant_id", variant.ID)
			return nil
		}
		logger.Warnw("worker_low_stock_alert_send_failed",
			"variant_id", variant.ID,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}
