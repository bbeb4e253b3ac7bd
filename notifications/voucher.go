package notifications

import (
	"bytes"
	"fmt"
	"io"

	"servibook/entity"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// voucherPDF renders the one-page appointment voucher with a QR code that
// resolves to the public verification page for the booking reference.
func voucherPDF(user entity.User, biz entity.Business, appt entity.Appointment, verifyBaseURL string) ([]byte, error) {
	verifyURL := fmt.Sprintf("%s/%s", verifyBaseURL, appt.Reference)
	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "ServiBook Appointment", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(40, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
	line("Customer:", user.FullName)
	line("Business:", biz.Name)
	line("Address:", biz.Address)
	line("Date:", appt.AppointmentTime.Format("2006-01-02"))
	line("Time:", appt.AppointmentTime.Format("15:04"))
	line("Reference:", appt.Reference)

	pdf.Ln(6)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("qr", 75, pdf.GetY(), 60, 60, false, opts, 0, "")

	pdf.SetY(pdf.GetY() + 64)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Present this QR code at the business to verify your appointment.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func copyBytes(b []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	}
}
