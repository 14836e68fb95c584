package booking

import (
	"bytes"
	"fmt"
	"net/http"

	"eventify/db"
	"eventify/models"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// PrintReceipt renders a PDF receipt for the customer's own booking, with a
// QR code carrying the booking reference.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingid")

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{
		"bookingid":  bookingID,
		"customerid": customerID,
	}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	qrPayload := fmt.Sprintf("%s|%s|%s", booking.BookingID, booking.Type, booking.CatalogID())
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Package: %s", booking.Package.Name))
	pdf.Ln(8)
	if booking.Type == models.BookingTypeEvent {
		pdf.Cell(0, 10, fmt.Sprintf("Ticket class: %s x %d", booking.TicketType, booking.Quantity))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", booking.TotalAmount))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s / payment %s", booking.Status, booking.PaymentStatus))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booked on: %s", booking.BookingDate.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+booking.BookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
