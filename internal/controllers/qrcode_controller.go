package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// QRCodeController renders the frontend link as a QR code, for sharing the
// journal from the login screen or the reminder email.
type QRCodeController struct {
	frontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{
		frontendURL: frontendURL,
	}
}

// AppLink handles GET /api/v1/qrcode - returns the app link as a PNG QR code
func (qc *QRCodeController) AppLink(c *gin.Context) {
	qrCode, err := qrcode.New(qc.frontendURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
