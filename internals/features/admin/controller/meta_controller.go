package controller

import (
	"github.com/gofiber/fiber/v2"

	"mycollege_backend/internals/features/admin"
	helper "mycollege_backend/internals/helpers"
)

type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// 🧭 Per-model UI config so a generic admin frontend can scaffold its
// list pages.
func (ctrl *MetaController) GetMeta(c *fiber.Ctx) error {
	return helper.Success(c, "OK", fiber.Map{
		"models": admin.ModelConfigs,
	})
}
