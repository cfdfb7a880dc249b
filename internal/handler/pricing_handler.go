package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/saas-starter/internal/models"
)

//go:embed templates/pricing.html
var templatesFS embed.FS

var pricingTemplate = template.Must(template.ParseFS(templatesFS, "templates/pricing.html"))

type PricingHandler struct {
	plans        []models.Plan
	checkoutPath string
}

func NewPricingHandler(plans []models.Plan, checkoutPath string) *PricingHandler {
	return &PricingHandler{
		plans:        plans,
		checkoutPath: checkoutPath,
	}
}

func (h *PricingHandler) Render(c *fiber.Ctx) error {
	var body bytes.Buffer
	err := pricingTemplate.Execute(&body, fiber.Map{
		"Plans":        h.plans,
		"CheckoutPath": h.checkoutPath,
	})
	if err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.Send(body.Bytes())
}
