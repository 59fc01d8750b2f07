package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/cayro-uniformes/internal/config"
	"github.com/cayro-uniformes/internal/constants"
	"github.com/cayro-uniformes/internal/models"
)

// EmailService envío de correos transaccionales en texto plano
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService crea el servicio de correo
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SaleStatusEmailInput datos del correo de cambio de estado
type SaleStatusEmailInput struct {
	Reference string
	Status    string
	Total     models.Money
	UserName  string
}

// SendSaleStatusEmail notifica al comprador el nuevo estado de su venta
func (s *EmailService) SendSaleStatusEmail(toEmail string, input SaleStatusEmailInput) error {
	subject, body := buildSaleStatusContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// LowStockAlertInput datos de la alerta de stock bajo
type LowStockAlertInput struct {
	ProductName string
	ColorName   string
	SizeName    string
	Stock       int
	Threshold   int
}

// SendLowStockAlert avisa al equipo de inventario que una variante
// cruzó el umbral de stock bajo
func (s *EmailService) SendLowStockAlert(toEmail string, input LowStockAlertInput) error {
	subject := "Alerta de stock bajo"
	body := fmt.Sprintf(
		"La variante %s (color %s, talla %s) quedó con %d piezas en stock, por debajo del umbral de %d.\n\nRevisa el inventario para programar reabastecimiento.",
		input.ProductName, input.ColorName, input.SizeName, input.Stock, input.Threshold,
	)
	return s.sendTextEmail(toEmail, subject, body)
}

func saleStatusLabel(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.SaleStatusPending:
		return "pendiente"
	case constants.SaleStatusProcessing:
		return "en preparación"
	case constants.SaleStatusShipped:
		return "enviado"
	case constants.SaleStatusDelivered:
		return "entregado"
	case constants.SaleStatusCancelled:
		return "cancelado"
	default:
		return status
	}
}

func buildSaleStatusContent(input SaleStatusEmailInput) (string, string) {
	label := saleStatusLabel(input.Status)
	subject := fmt.Sprintf("Tu pedido %s está %s", input.Reference, label)

	greeting := "Hola"
	if strings.TrimSpace(input.UserName) != "" {
		greeting = "Hola " + strings.TrimSpace(input.UserName)
	}
	body := fmt.Sprintf(
		"%s,\n\nTu pedido %s cambió de estado: ahora está %s.\nTotal del pedido: $%s MXN.\n\nGracias por comprar en Cayro Uniformes.",
		greeting, input.Reference, label, input.Total.String(),
	)
	return subject, body
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
