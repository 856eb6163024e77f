package service

import (
	"github.com/skip2/go-qrcode"
)

// QRGenerator renders the menu link printed on table cards.
type QRGenerator interface {
	Generate() ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate() ([]byte, error) {
	return qrcode.Encode(g.BaseURL+"/menu", qrcode.Medium, 256)
}
