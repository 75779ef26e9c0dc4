// WhatsApp order handoff.
//
// The store takes manual orders over WhatsApp: the client builds a wa.me
// deep link pre-filled with the product name and price and hands it to the
// system browser. No programmatic response is consumed.
package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JAX838/delight-vision-sounds/internal/formatter"
	"github.com/JAX838/delight-vision-sounds/internal/models"
)

const whatsAppBaseURL = "https://wa.me/"

// OrderMessage builds the pre-filled WhatsApp inquiry text for a product.
func OrderMessage(currency string, p models.Product) string {
	return fmt.Sprintf(
		"Hello! I'm interested in *%s* (%s).\n\nCan you tell me more about availability and delivery?",
		p.Name, formatter.Amount(currency, p.Price),
	)
}

// OrderLink builds the wa.me deep link for ordering a product.
// The phone number is digits only, international format without the plus.
func OrderLink(phone, currency string, p models.Product) (string, error) {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if phone == "" {
		return "", fmt.Errorf("whatsapp phone number not configured")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("whatsapp phone number must be digits only, got %q", phone)
		}
	}

	return whatsAppBaseURL + phone + "?text=" + url.QueryEscape(OrderMessage(currency, p)), nil
}
