package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/i18n"
)

// I18nHandler serves translation tables.
type I18nHandler struct{}

// NewI18nHandler constructs handler.
func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// Negotiate GET /api/i18n picks a language from Accept-Language.
func (h *I18nHandler) Negotiate(c *fiber.Ctx) error {
	lang := i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
	return c.JSON(fiber.Map{"data": fiber.Map{
		"language":     lang,
		"available":    i18n.Supported(),
		"translations": i18n.Table(lang),
	}})
}

// Table GET /api/i18n/:lang.
func (h *I18nHandler) Table(c *fiber.Ctx) error {
	lang := c.Params("lang")
	return c.JSON(fiber.Map{"data": fiber.Map{
		"language":     lang,
		"supported":    i18n.IsSupported(lang),
		"translations": i18n.Table(lang),
	}})
}

// Translate GET /api/i18n/:lang/:key.
func (h *I18nHandler) Translate(c *fiber.Ctx) error {
	lang, key := c.Params("lang"), c.Params("key")
	return c.JSON(fiber.Map{"data": dto.TranslationResponse{
		Language: lang,
		Key:      key,
		Value:    i18n.Translate(lang, key),
	}})
}
