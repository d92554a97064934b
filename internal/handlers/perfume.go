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

// СОЗДАНИЕ ПОЗИЦИИ КАТАЛОГА (только админ)

func ShowAddPerfume(c *gin.Context) {
	renderPerfumeForm(c, http.StatusOK, "perfumes_new.html", gin.H{"error": ""})
}

func CreatePerfume(c *gin.Context) {
	perfume, msg := perfumeFromForm(c)
	if msg != "" {
		renderPerfumeForm(c, http.StatusBadRequest, "perfumes_new.html", gin.H{"error": msg})
		return
	}

	if err := database.DB.Create(&perfume).Error; err != nil {
		renderPerfumeForm(c, http.StatusBadRequest, "perfumes_new.html", gin.H{"error": "Ошибка сохранения в БД"})
		return
	}

	if p, ok := middleware.CurrentPrincipal(c); ok {
		database.CreateAuditLog(p.ID, "perfume", perfume.ID, "create", "Создан парфюм: "+perfume.Name)
	}

	c.Redirect(http.StatusFound, "/catalog")
}

// РЕДАКТИРОВАНИЕ

func ShowEditPerfume(c *gin.Context) {
	id := c.Param("id")

	var perfume models.Perfume
	if err := database.DB.Preload("Brand").Preload("Category").Preload("Supplier").
		First(&perfume, id).Error; err != nil {
		c.String(http.StatusNotFound, "Парфюм не найден")
		return
	}

	renderPerfumeForm(c, http.StatusOK, "perfumes_edit.html", gin.H{
		"perfume": perfume,
		"error":   "",
	})
}

func UpdatePerfume(c *gin.Context) {
	id := c.Param("id")

	var perfume models.Perfume
	if err := database.DB.First(&perfume, id).Error; err != nil {
		c.String(http.StatusNotFound, "Парфюм не найден")
		return
	}

	updated, msg := perfumeFromForm(c)
	if msg != "" {
		renderPerfumeForm(c, http.StatusBadRequest, "perfumes_edit.html", gin.H{
			"perfume": perfume,
			"error":   msg,
		})
		return
	}

	perfume.Name = updated.Name
	perfume.Price = updated.Price
	perfume.Volume = updated.Volume
	perfume.Gender = updated.Gender
	perfume.InStock = updated.InStock
	perfume.BrandID = updated.BrandID
	perfume.CategoryID = updated.CategoryID
	perfume.SupplierID = updated.SupplierID

	if err := database.DB.Save(&perfume).Error; err != nil {
		renderPerfumeForm(c, http.StatusBadRequest, "perfumes_edit.html", gin.H{
			"perfume": perfume,
			"error":   "Ошибка сохранения в БД",
		})
		return
	}

	if p, ok := middleware.CurrentPrincipal(c); ok {
		database.CreateAuditLog(p.ID, "perfume", perfume.ID, "update", "Изменён парфюм: "+perfume.Name)
	}

	c.Redirect(http.StatusFound, "/catalog")
}

// УДАЛЕНИЕ

func DeletePerfume(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	var perfume models.Perfume
	if err := database.DB.First(&perfume, id).Error; err != nil {
		c.String(http.StatusNotFound, "Парфюм не найден")
		return
	}

	if err := database.DB.Delete(&perfume).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления")
		return
	}

	if p, ok := middleware.CurrentPrincipal(c); ok {
		database.CreateAuditLog(p.ID, "perfume", perfume.ID, "delete", "Удалён парфюм: "+perfume.Name)
	}

	c.Redirect(http.StatusFound, "/catalog")
}

// helpers

// perfumeFromForm разбирает и валидирует форму; при ошибке возвращает
// сообщение для пользователя.
func perfumeFromForm(c *gin.Context) (models.Perfume, string) {
	var perfume models.Perfume

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		return perfume, "Укажите название"
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		return perfume, "Некорректная цена"
	}

	volume, err := strconv.Atoi(c.PostForm("volume"))
	if err != nil || volume <= 0 {
		return perfume, "Некорректный объём"
	}

	gender := models.Gender(c.PostForm("gender"))
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderUnisex:
	default:
		return perfume, "Неверное значение пола"
	}

	var brand models.Brand
	if err := database.DB.First(&brand, c.PostForm("brand_id")).Error; err != nil {
		return perfume, "Бренд не найден"
	}

	var category models.Category
	if err := database.DB.First(&category, c.PostForm("category_id")).Error; err != nil {
		return perfume, "Категория не найдена"
	}

	var supplier models.Supplier
	if err := database.DB.First(&supplier, c.PostForm("supplier_id")).Error; err != nil {
		return perfume, "Поставщик не найден"
	}

	perfume = models.Perfume{
		Name:       name,
		Price:      price,
		Volume:     volume,
		Gender:     gender,
		InStock:    c.PostForm("in_stock") != "",
		BrandID:    brand.ID,
		CategoryID: category.ID,
		SupplierID: supplier.ID,
	}
	return perfume, ""
}

// renderPerfumeForm дополняет данные формы справочниками для селектов.
func renderPerfumeForm(c *gin.Context, status int, tmpl string, data gin.H) {
	var brands []models.Brand
	database.DB.Order("name asc").Find(&brands)

	var categories []models.Category
	database.DB.Order("name asc").Find(&categories)

	var suppliers []models.Supplier
	database.DB.Order("name asc").Find(&suppliers)

	data["brands"] = brands
	data["categories"] = categories
	data["suppliers"] = suppliers

	render(c, status, tmpl, data)
}
