package main

import (
	"log"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/mailer"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くても動く（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Product{},
		&model.Review{},
		&model.Order{},
		&model.OrderItem{},
		&model.Cart{},
		&model.CartItem{},
		&model.PasswordResetToken{},
		&model.StockAdjustment{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	tokenRepo := infraRepo.NewPasswordResetTokenGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//メール送信は別goroutineに寄せる
	dispatcher := mailer.NewDispatcher(mailer.NewSMTPSender(cfg), 64)
	defer dispatcher.Close()

	//Usecase生成
	authV := validator.NewAuthValidator(userRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, authV)
	resetUC := usecase.NewPasswordResetUsecase(cfg, userRepo, tokenRepo, dispatcher)
	storeUC := usecase.NewStoreUsecase(storeRepo, productRepo)
	productUC := usecase.NewProductUsecase(productRepo, storeRepo, reviewRepo, orderItemRepo, infraRepo.NewInventoryGormRepository(gormDB))
	cartUC := usecase.NewCartUsecase(cartRepo, cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, cartRepo, reviewRepo, userRepo, dispatcher)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo, orderItemRepo)

	//Handler生成
	h := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC, cfg),
		PasswordReset: handler.NewPasswordResetHandler(resetUC),
		Product:       handler.NewProductHandler(productUC, cfg),
		VendorProduct: handler.NewVendorProductHandler(productUC, cfg),
		Store:         handler.NewStoreHandler(storeUC, cfg),
		Cart:          handler.NewCartHandler(cartUC, cfg),
		Order:         handler.NewOrderHandler(orderUC, cfg),
		Review:        handler.NewReviewHandler(reviewUC, cfg),
	}

	//Server起動
	e := server.New(h)
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
