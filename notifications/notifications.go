// Package notifications delivers appointment confirmation and cancellation
// mails, with a PDF voucher and a QR verification code attached. Delivery
// is best-effort: failures are logged and never surfaced to the booking
// flow.
package notifications

import (
	"fmt"

	"servibook/entity"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	VerifyBaseURL string
}

type Service struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

func (s *Service) AppointmentConfirmed(user entity.User, biz entity.Business, appt entity.Appointment) {
	s.send(user, biz, appt, "Your ServiBook appointment is confirmed", true)
}

func (s *Service) AppointmentCancelled(user entity.User, biz entity.Business, appt entity.Appointment) {
	s.send(user, biz, appt, "Your ServiBook appointment was cancelled", false)
}

func (s *Service) send(user entity.User, biz entity.Business, appt entity.Appointment, subject string, attachVoucher bool) {
	date := appt.AppointmentTime.Format("2006-01-02")
	hour := appt.AppointmentTime.Format("15:04")

	if s.cfg.Host == "" {
		// SMTP not configured (dev): log the would-be mail and move on.
		s.log.Info("mail delivery simulated",
			zap.String("to", user.Email),
			zap.String("subject", subject),
			zap.String("business", biz.Name),
			zap.String("date", date),
			zap.String("time", hour))
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)

	name := user.FullName
	if name == "" {
		name = "customer"
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment with %s on %s at %s is %s.\n\nAddress: %s\n\nThank you for using ServiBook!",
		name, biz.Name, date, hour, appt.Status, biz.Address,
	)
	m.SetBody("text/plain", body)

	if attachVoucher {
		pdf, err := voucherPDF(user, biz, appt, s.cfg.VerifyBaseURL)
		if err != nil {
			s.log.Warn("voucher generation failed",
				zap.String("reference", appt.Reference), zap.Error(err))
		} else {
			m.Attach("appointment.pdf", gomail.SetCopyFunc(copyBytes(pdf)))
		}
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		s.log.Warn("mail delivery failed",
			zap.String("to", user.Email), zap.Error(err))
	}
}
