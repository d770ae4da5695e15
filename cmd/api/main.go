package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/handler"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Warehouse{}, &model.Location{}, &model.Item{}, &model.Inventory{},
		&model.Transfer{}, &model.TransferItem{}, &model.Dock{}, &model.Shipment{},
		&model.Supplier{}, &model.Client{}, &model.Contact{},
		&model.Order{}, &model.OrderItem{},
	)

	// 3. Setup WebSocket Hub (live warehouse events)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	warehouseRepo := repository.NewWarehouseRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	itemRepo := repository.NewItemRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	transferRepo := repository.NewTransferRepo(db)
	dockRepo := repository.NewDockRepo(db)
	shipmentRepo := repository.NewShipmentRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	clientRepo := repository.NewClientRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	warehouseService := service.NewWarehouseService(warehouseRepo)
	locationService := service.NewLocationService(locationRepo, warehouseRepo)
	itemService := service.NewItemService(itemRepo, supplierRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, itemRepo, locationRepo)
	transferService := service.NewTransferService(transferRepo, itemRepo, locationRepo, wsHub)
	dockService := service.NewDockService(dockRepo, wsHub)
	shipmentService := service.NewShipmentService(shipmentRepo, orderRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	clientService := service.NewClientService(clientRepo)
	orderService := service.NewOrderService(orderRepo, itemRepo, clientRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	locationHandler := handler.NewLocationHandler(locationService)
	itemHandler := handler.NewItemHandler(itemService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	transferHandler := handler.NewTransferHandler(transferService)
	dockHandler := handler.NewDockHandler(dockService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	clientHandler := handler.NewClientHandler(clientService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1", middleware.RequireAPIKey(os.Getenv("API_KEY")))

	api.Get("/dashboard/stats", dashboardHandler.GetDashboardStats)
	api.Get("/dashboard/transfer-movement", dashboardHandler.GetTransferMovement)

	api.Get("/warehouses", warehouseHandler.GetWarehouses)
	api.Get("/warehouses/:id", warehouseHandler.GetWarehouse)
	api.Post("/warehouses", warehouseHandler.CreateWarehouse)
	api.Put("/warehouses/:id", warehouseHandler.UpdateWarehouse)
	api.Delete("/warehouses/:id", warehouseHandler.DeleteWarehouse)

	api.Get("/locations", locationHandler.GetLocations)
	api.Get("/locations/:id", locationHandler.GetLocation)
	api.Post("/locations", locationHandler.CreateLocation)
	api.Put("/locations/:id", locationHandler.UpdateLocation)
	api.Delete("/locations/:id", locationHandler.DeleteLocation)

	api.Get("/items", itemHandler.GetItems)
	api.Get("/items/:id", itemHandler.GetItem)
	api.Post("/items", itemHandler.CreateItem)
	api.Put("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)

	api.Get("/inventories", inventoryHandler.GetInventories)
	api.Get("/inventories/:id", inventoryHandler.GetInventory)
	api.Post("/inventories", inventoryHandler.CreateInventory)
	api.Put("/inventories/:id", inventoryHandler.UpdateInventory)
	api.Delete("/inventories/:id", inventoryHandler.DeleteInventory)

	api.Get("/transfers", transferHandler.GetTransfers)
	api.Get("/transfers/:id", transferHandler.GetTransfer)
	api.Post("/transfers", transferHandler.CreateTransfer)
	api.Put("/transfers/:id", transferHandler.UpdateTransfer)
	api.Delete("/transfers/:id", transferHandler.DeleteTransfer)
	api.Post("/transfers/:id/commit", transferHandler.CommitTransfer)

	api.Get("/docks", dockHandler.GetDocks)
	api.Get("/docks/:id", dockHandler.GetDock)
	api.Post("/docks", dockHandler.CreateDock)
	api.Put("/docks/:id", dockHandler.UpdateDock)
	api.Put("/docks/:id/clear", dockHandler.ClearDock)
	api.Delete("/docks/:id", dockHandler.DeleteDock)

	api.Get("/shipments", shipmentHandler.GetShipments)
	api.Get("/shipments/:id", shipmentHandler.GetShipment)
	api.Post("/shipments", shipmentHandler.CreateShipment)
	api.Put("/shipments/:id", shipmentHandler.UpdateShipment)
	api.Delete("/shipments/:id", shipmentHandler.DeleteShipment)

	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Get("/suppliers/:id", supplierHandler.GetSupplier)
	api.Post("/suppliers", supplierHandler.CreateSupplier)
	api.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	api.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	api.Get("/clients", clientHandler.GetClients)
	api.Get("/clients/:id", clientHandler.GetClient)
	api.Post("/clients", clientHandler.CreateClient)
	api.Put("/clients/:id", clientHandler.UpdateClient)
	api.Delete("/clients/:id", clientHandler.DeleteClient)
	api.Post("/clients/:id/contacts", clientHandler.AddContact)
	api.Delete("/contacts/:id", clientHandler.DeleteContact)

	api.Get("/orders", orderHandler.GetOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Put("/orders/:id", orderHandler.UpdateOrder)
	api.Delete("/orders/:id", orderHandler.DeleteOrder)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
