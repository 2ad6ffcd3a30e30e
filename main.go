package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/LayoffWatch/LW-Pipeline/internal/config"
	"github.com/LayoffWatch/LW-Pipeline/internal/middleware"
	"github.com/LayoffWatch/LW-Pipeline/internal/site"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "WARN feed is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("sources.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)
	r.Mount("/site", site.SetupRoutes(cfg.SiteDir))

	fmt.Println("Serving WARN feed on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
