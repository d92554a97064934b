package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"perfume-store/internal/database"
	"perfume-store/internal/middleware"
	"perfume-store/internal/models"

	"github.com/gin-gonic/gin"
)

// СПРАВОЧНИКИ: бренды, категории, поставщики (только админ)

func ShowAddBrand(c *gin.Context) {
	render(c, http.StatusOK, "brands_new.html", gin.H{"error": ""})
}

func CreateBrand(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	country := strings.TrimSpace(c.PostForm("country"))

	if name == "" {
		render(c, http.StatusBadRequest, "brands_new.html", gin.H{"error": "Укажите название бренда"})
		return
	}

	brand := models.Brand{Name: name, Country: country}
	if err := database.DB.Create(&brand).Error; err != nil {
		render(c, http.StatusBadRequest, "brands_new.html", gin.H{"error": "Ошибка сохранения в БД"})
		return
	}

	auditReference(c, "brand", brand.ID, "create", "Создан бренд: "+brand.Name)
	c.Redirect(http.StatusFound, "/catalog")
}

func ShowAddCategory(c *gin.Context) {
	render(c, http.StatusOK, "categories_new.html", gin.H{"error": ""})
}

func CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))

	if name == "" {
		render(c, http.StatusBadRequest, "categories_new.html", gin.H{"error": "Укажите название категории"})
		return
	}

	category := models.Category{Name: name}
	if err := database.DB.Create(&category).Error; err != nil {
		render(c, http.StatusBadRequest, "categories_new.html", gin.H{"error": "Ошибка сохранения в БД"})
		return
	}

	auditReference(c, "category", category.ID, "create", "Создана категория: "+category.Name)
	c.Redirect(http.StatusFound, "/catalog")
}

func ShowAddSupplier(c *gin.Context) {
	render(c, http.StatusOK, "suppliers_new.html", gin.H{"error": ""})
}

func CreateSupplier(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	contact := strings.TrimSpace(c.PostForm("contact"))

	if name == "" {
		render(c, http.StatusBadRequest, "suppliers_new.html", gin.H{"error": "Укажите название поставщика"})
		return
	}

	supplier := models.Supplier{Name: name, Contact: contact}
	if err := database.DB.Create(&supplier).Error; err != nil {
		render(c, http.StatusBadRequest, "suppliers_new.html", gin.H{"error": "Ошибка сохранения в БД"})
		return
	}

	auditReference(c, "supplier", supplier.ID, "create", "Создан поставщик: "+supplier.Name)
	c.Redirect(http.StatusFound, "/catalog")
}

// УДАЛЕНИЕ СПРАВОЧНЫХ ЗАПИСЕЙ
// Пока на запись ссылается хотя бы один парфюм, удаление запрещено.

func DeleteBrand(c *gin.Context) {
	deleteReference(c, "brand", "brand_id", &models.Brand{})
}

func DeleteCategory(c *gin.Context) {
	deleteReference(c, "category", "category_id", &models.Category{})
}

func DeleteSupplier(c *gin.Context) {
	deleteReference(c, "supplier", "supplier_id", &models.Supplier{})
}

func deleteReference(c *gin.Context, entity, fkColumn string, model any) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	if err := database.DB.First(model, id).Error; err != nil {
		c.String(http.StatusNotFound, "Запись не найдена")
		return
	}

	var refs int64
	database.DB.Model(&models.Perfume{}).
		Where(fkColumn+" = ?", id).
		Count(&refs)
	if refs > 0 {
		c.String(http.StatusBadRequest, "Запись используется в каталоге, удаление запрещено")
		return
	}

	if err := database.DB.Delete(model, id).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления")
		return
	}

	auditReference(c, entity, uint(id), "delete", "Удалена справочная запись")
	c.Redirect(http.StatusFound, "/catalog")
}

func auditReference(c *gin.Context, entity string, entityID uint, action, details string) {
	if p, ok := middleware.CurrentPrincipal(c); ok {
		database.CreateAuditLog(p.ID, entity, entityID, action, details)
	}
}
