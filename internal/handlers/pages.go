package handlers

import (
	"net/http"

	"perfume-store/internal/database"
	"perfume-store/internal/middleware"
	"perfume-store/internal/models"

	"github.com/gin-gonic/gin"
)

// ГЛАВНАЯ: витрина из первых шести позиций

const indexPageSize = 6

func IndexPage(c *gin.Context) {
	var perfumes []models.Perfume
	database.DB.Preload("Brand").Order("name asc").Limit(indexPageSize).Find(&perfumes)

	render(c, http.StatusOK, "index.html", gin.H{
		"perfumes": perfumes,
	})
}

// ПОЛНЫЙ КАТАЛОГ

func CatalogPage(c *gin.Context) {
	var perfumes []models.Perfume
	database.DB.
		Preload("Brand").
		Preload("Category").
		Preload("Supplier").
		Order("name asc").
		Find(&perfumes)

	render(c, http.StatusOK, "catalog.html", gin.H{
		"perfumes": perfumes,
	})
}

// КОРЗИНА: заглушка, всегда пустая

func CartPage(c *gin.Context) {
	render(c, http.StatusOK, "cart.html", gin.H{
		"items": []struct{}{},
	})
}

// ПРОФИЛЬ: собственная запись текущего пользователя

func ProfilePage(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	var user models.User
	if err := database.DB.First(&user, p.ID).Error; err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"user": user,
	})
}
