package main

import (
	"fmt"
	"time"

	"github.com/cayro-uniformes/internal/config"
	"github.com/cayro-uniformes/internal/constants"
	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// Conexión a la base de datos
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("no se pudo migrar la base de datos: %v", err)
	}

	seedCatalogs(stdLog)
	userIDs := seedUsers(stdLog)
	productIDs := seedProducts(stdLog)
	seedSales(stdLog, userIDs, productIDs)

	stdLog.Printf("semilla completada")
}

type seedLogger interface {
	Printf(format string, v ...interface{})
}

func seedCatalogs(stdLog seedLogger) {
	colors := []models.Color{
		{Name: "Blanco", HexValue: "#FFFFFF"},
		{Name: "Azul Marino", HexValue: "#1F3A5F"},
		{Name: "Gris Oxford", HexValue: "#6E7B8B"},
		{Name: "Rojo", HexValue: "#C62828"},
		{Name: "Verde Bandera", HexValue: "#1B5E20"},
	}
	for _, color := range colors {
		findOrCreate(stdLog, "color", color.Name, "name = ?", color.Name, &color)
	}

	sizes := []string{"4", "6", "8", "10", "12", "14", "CH", "M", "G", "XG"}
	for _, name := range sizes {
		size := models.Size{Name: name}
		findOrCreate(stdLog, "talla", name, "name = ?", name, &size)
	}

	categories := []string{"Camisas", "Pantalones", "Faldas", "Deportivos", "Accesorios"}
	for _, name := range categories {
		category := models.Category{Name: name}
		findOrCreate(stdLog, "categoría", name, "name = ?", name, &category)
	}

	brands := []string{"Cayro"}
	for _, name := range brands {
		brand := models.Brand{Name: name}
		findOrCreate(stdLog, "marca", name, "name = ?", name, &brand)
	}

	genders := []string{"Niño", "Niña", "Unisex"}
	for _, name := range genders {
		gender := models.Gender{Name: name}
		findOrCreate(stdLog, "corte", name, "name = ?", name, &gender)
	}

	sleeves := []string{"Manga corta", "Manga larga", "Sin manga"}
	for _, name := range sleeves {
		sleeve := models.Sleeve{Name: name}
		findOrCreate(stdLog, "manga", name, "name = ?", name, &sleeve)
	}

	materials := []models.Material{
		{Name: "Algodón", Description: "Algodón 100%, fresco y resistente al lavado diario"},
		{Name: "Poliéster", Description: "Fibra sintética de secado rápido"},
		{Name: "Gabardina", Description: "Tejido grueso para pantalones y faldas"},
	}
	for _, material := range materials {
		findOrCreate(stdLog, "material", material.Name, "name = ?", material.Name, &material)
	}

	fabricTypes := []models.FabricType{
		{Name: "Popelina", Description: "Tejido plano ligero para camisas"},
		{Name: "Piqué", Description: "Tejido de punto con textura para playeras tipo polo"},
		{Name: "Felpa", Description: "Tejido afelpado para suéteres y sudaderas"},
	}
	for _, fabric := range fabricTypes {
		findOrCreate(stdLog, "tela", fabric.Name, "name = ?", fabric.Name, &fabric)
	}

	neckTypes := []models.NeckType{
		{Name: "Cuello redondo", Description: "Escote circular clásico"},
		{Name: "Cuello polo", Description: "Cuello con botones para playeras tipo polo"},
		{Name: "Cuello V", Description: "Escote en V para suéteres"},
	}
	for _, neck := range neckTypes {
		findOrCreate(stdLog, "cuello", neck.Name, "name = ?", neck.Name, &neck)
	}

	threads := []string{"Hilo poliéster blanco", "Hilo poliéster azul", "Hilo algodón crudo"}
	for _, name := range threads {
		thread := models.SewingThread{Name: name}
		findOrCreate(stdLog, "hilo", name, "name = ?", name, &thread)
	}

	faqs := []models.Faq{
		{
			Question: "¿Cómo sé qué talla pedir?",
			Answer:   "Consulta la guía de tallas de cada producto; si el alumno está entre dos tallas recomendamos la más grande.",
		},
		{
			Question: "¿Hacen envíos a todo México?",
			Answer:   "Sí, enviamos a toda la república. El costo de envío se calcula al confirmar el pedido.",
		},
		{
			Question: "¿Puedo cambiar una prenda que no quedó?",
			Answer:   "Aceptamos cambios dentro de los 30 días siguientes a la entrega siempre que la prenda conserve sus etiquetas.",
		},
	}
	for _, faq := range faqs {
		findOrCreate(stdLog, "pregunta frecuente", faq.Question, "question = ?", faq.Question, &faq)
	}
}

func seedUsers(stdLog seedLogger) map[string]uint {
	users := []models.User{
		{
			Name:     "María",
			Surname:  "García",
			Email:    "maria.garcia@example.com",
			Phone:    "7711234567",
			IsActive: true,
			Addresses: []models.Address{
				{
					Street:     "Av. Juárez 120",
					Colony:     "Centro",
					City:       "Huejutla",
					State:      "Hidalgo",
					PostalCode: "43000",
					Country:    "México",
					IsDefault:  true,
				},
			},
		},
		{
			Name:     "José",
			Surname:  "Hernández",
			Email:    "jose.hernandez@example.com",
			Phone:    "7717654321",
			IsActive: true,
			Addresses: []models.Address{
				{
					Street:     "Calle Hidalgo 45",
					Colony:     "La Joya",
					City:       "Pachuca",
					State:      "Hidalgo",
					PostalCode: "42000",
					Country:    "México",
					IsDefault:  true,
				},
			},
		},
	}

	ids := map[string]uint{}
	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", user.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("no se pudo crear el usuario %s: %v", user.Email, err)
				continue
			}
			stdLog.Printf("usuario creado: %s", user.Email)
			ids[user.Email] = user.ID
			continue
		}
		stdLog.Printf("el usuario ya existe: %s", user.Email)
		ids[existing.Email] = existing.ID
	}
	return ids
}

func seedProducts(stdLog seedLogger) map[string]uint {
	categoryIDs := lookupIDs[models.Category]("name", []string{"Camisas", "Pantalones", "Faldas", "Deportivos", "Accesorios"})
	colorIDs := lookupIDs[models.Color]("name", []string{"Blanco", "Azul Marino", "Gris Oxford", "Rojo", "Verde Bandera"})
	sizeIDs := lookupIDs[models.Size]("name", []string{"6", "8", "10", "M", "G"})
	brandIDs := lookupIDs[models.Brand]("name", []string{"Cayro"})

	cayroID := brandIDs["Cayro"]

	type variantSeed struct {
		color string
		size  string
		price float64
		stock int
	}
	type productSeed struct {
		name        string
		description string
		category    string
		variants    []variantSeed
	}

	seeds := []productSeed{
		{
			name:        "Camisa Escolar Blanca",
			description: "Camisa de popelina manga corta para uniforme diario",
			category:    "Camisas",
			variants: []variantSeed{
				{color: "Blanco", size: "6", price: 219.00, stock: 40},
				{color: "Blanco", size: "8", price: 219.00, stock: 35},
				{color: "Blanco", size: "10", price: 239.00, stock: 30},
			},
		},
		{
			name:        "Pantalón Escolar Azul",
			description: "Pantalón de gabardina corte recto con ajuste interno",
			category:    "Pantalones",
			variants: []variantSeed{
				{color: "Azul Marino", size: "6", price: 329.00, stock: 25},
				{color: "Azul Marino", size: "8", price: 329.00, stock: 28},
				{color: "Azul Marino", size: "10", price: 349.00, stock: 22},
			},
		},
		{
			name:        "Falda Escolar Gris",
			description: "Falda tableada de gabardina con short interior",
			category:    "Faldas",
			variants: []variantSeed{
				{color: "Gris Oxford", size: "6", price: 299.00, stock: 18},
				{color: "Gris Oxford", size: "8", price: 299.00, stock: 20},
			},
		},
		{
			name:        "Playera Deportiva",
			description: "Playera de piqué con cuello polo para educación física",
			category:    "Deportivos",
			variants: []variantSeed{
				{color: "Rojo", size: "M", price: 189.00, stock: 45},
				{color: "Rojo", size: "G", price: 189.00, stock: 38},
				{color: "Verde Bandera", size: "M", price: 189.00, stock: 30},
			},
		},
		{
			name:        "Short Deportivo",
			description: "Short de poliéster con cintura elástica",
			category:    "Deportivos",
			variants: []variantSeed{
				{color: "Azul Marino", size: "M", price: 159.00, stock: 33},
				{color: "Azul Marino", size: "G", price: 159.00, stock: 27},
			},
		},
		{
			name:        "Suéter Escolar",
			description: "Suéter de felpa cuello V con vivos del colegio",
			category:    "Camisas",
			variants: []variantSeed{
				{color: "Azul Marino", size: "8", price: 389.00, stock: 15},
				{color: "Azul Marino", size: "10", price: 409.00, stock: 12},
			},
		},
		{
			name:        "Corbata Escolar",
			description: "Corbata con nudo preanudado y resorte",
			category:    "Accesorios",
			variants: []variantSeed{
				{color: "Azul Marino", size: "6", price: 99.00, stock: 50},
			},
		},
	}

	ids := map[string]uint{}
	for _, seed := range seeds {
		var existing models.Product
		if err := models.DB.Where("name = ?", seed.name).First(&existing).Error; err == nil {
			stdLog.Printf("el producto ya existe: %s", seed.name)
			ids[existing.Name] = existing.ID
			continue
		}

		product := models.Product{
			Name:        seed.name,
			Description: seed.description,
			CategoryID:  categoryIDs[seed.category],
			BrandID:     &cayroID,
			IsActive:    true,
		}
		for _, v := range seed.variants {
			product.Variants = append(product.Variants, models.ProductVariant{
				ColorID: colorIDs[v.color],
				SizeID:  sizeIDs[v.size],
				Price:   models.NewMoneyFromDecimal(decimal.NewFromFloat(v.price)),
				Stock:   v.stock,
			})
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("no se pudo crear el producto %s: %v", seed.name, err)
			continue
		}
		stdLog.Printf("producto creado: %s (%d variantes)", seed.name, len(product.Variants))
		ids[product.Name] = product.ID
	}
	return ids
}

func seedSales(stdLog seedLogger, userIDs, productIDs map[string]uint) {
	mariaID := userIDs["maria.garcia@example.com"]
	joseID := userIDs["jose.hernandez@example.com"]
	if mariaID == 0 || joseID == 0 {
		stdLog.Printf("faltan usuarios semilla, se omiten las ventas")
		return
	}

	type saleSeed struct {
		reference string
		userID    uint
		status    string
		product   string
		quantity  int
	}
	seeds := []saleSeed{
		{reference: "CU-2025-0001", userID: mariaID, status: constants.SaleStatusDelivered, product: "Camisa Escolar Blanca", quantity: 2},
		{reference: "CU-2025-0002", userID: mariaID, status: constants.SaleStatusProcessing, product: "Pantalón Escolar Azul", quantity: 1},
		{reference: "CU-2025-0003", userID: joseID, status: constants.SaleStatusShipped, product: "Playera Deportiva", quantity: 3},
		{reference: "CU-2025-0004", userID: joseID, status: constants.SaleStatusCancelled, product: "Suéter Escolar", quantity: 1},
	}

	for _, seed := range seeds {
		var existing models.Sale
		if err := models.DB.Where("reference = ?", seed.reference).First(&existing).Error; err == nil {
			stdLog.Printf("la venta ya existe: %s", seed.reference)
			continue
		}

		productID := productIDs[seed.product]
		var variant models.ProductVariant
		if err := models.DB.Where("product_id = ?", productID).First(&variant).Error; err != nil {
			stdLog.Printf("sin variante para %s, se omite la venta %s", seed.product, seed.reference)
			continue
		}

		subtotal := models.NewMoneyFromDecimal(variant.Price.Decimal.Mul(decimal.NewFromInt(int64(seed.quantity))))
		shipping := models.NewMoneyFromDecimal(decimal.NewFromFloat(79.00))
		sale := models.Sale{
			Reference: seed.reference,
			UserID:    seed.userID,
			Status:    seed.status,
			Subtotal:  subtotal,
			Shipping:  shipping,
			Total:     models.NewMoneyFromDecimal(subtotal.Decimal.Add(shipping.Decimal)),
			CreatedAt: time.Now().AddDate(0, 0, -7),
			Details: []models.SaleDetail{
				{
					ProductVariantID: variant.ID,
					Quantity:         seed.quantity,
					UnitPrice:        variant.Price,
				},
			},
		}
		if err := models.DB.Create(&sale).Error; err != nil {
			stdLog.Printf("no se pudo crear la venta %s: %v", seed.reference, err)
			continue
		}
		stdLog.Printf("venta creada: %s (%s)", seed.reference, seed.status)
	}
}

func findOrCreate[T any](stdLog seedLogger, kind, label, query string, arg interface{}, entity *T) {
	var existing T
	if err := models.DB.Where(query, arg).First(&existing).Error; err != nil {
		if err := models.DB.Create(entity).Error; err != nil {
			stdLog.Printf("no se pudo crear %s %q: %v", kind, label, err)
			return
		}
		stdLog.Printf("%s creado: %s", kind, label)
		return
	}
	stdLog.Printf("%s ya existe: %s", kind, label)
}

func lookupIDs[T any](column string, names []string) map[string]uint {
	result := map[string]uint{}
	var rows []map[string]interface{}
	var model T
	if err := models.DB.Model(&model).
		Select("id", column).
		Where(fmt.Sprintf("%s IN ?", column), names).
		Find(&rows).Error; err != nil {
		return result
	}
	for _, row := range rows {
		name, _ := row[column].(string)
		switch id := row["id"].(type) {
		case int64:
			result[name] = uint(id)
		case uint:
			result[name] = id
		case float64:
			result[name] = uint(id)
		}
	}
	return result
}
