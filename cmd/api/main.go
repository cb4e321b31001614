package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"baraholkaCPT/cmd/app"
	"baraholkaCPT/internal/config"
	handlers "baraholkaCPT/internal/handler"
	"baraholkaCPT/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler)
	router.HandleFunc("/health", handler.HealthHandler)

	router.HandleFunc("/api/auth/verify", handler.VerifyUser)

	router.HandleFunc("/api/ads/create", handler.CreateAd)
	router.HandleFunc("/api/ads/active", handler.GetActiveAds)
	router.HandleFunc("/api/ads/my-ads", handler.GetUserAds)
	router.HandleFunc("/api/ads/update", handler.UpdateAd)
	router.HandleFunc("/api/ads/delete", handler.DeleteAd)
	router.HandleFunc("/api/ads/{adId}", handler.GetAdDetail)

	router.HandleFunc("/api/chat/request", handler.SendChatRequest)
	router.HandleFunc("/api/chat/request/update", handler.UpdateChatRequest)
	router.HandleFunc("/api/chat/requests", handler.GetUserRequests)

	router.HandleFunc("/api/rewards/create", handler.CreateReward)
	router.HandleFunc("/api/rewards", handler.GetUserRewards)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
