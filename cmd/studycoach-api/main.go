package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpadapter "github.com/aryamb/studycoach-agent/internal/adapters/http"
	"github.com/aryamb/studycoach-agent/internal/adapters/llm"
	firestorestore "github.com/aryamb/studycoach-agent/internal/adapters/storage/firestore"
	"github.com/aryamb/studycoach-agent/internal/adapters/storage/jsonfile"
	memstore "github.com/aryamb/studycoach-agent/internal/adapters/storage/memory"
	"github.com/aryamb/studycoach-agent/internal/app/planner"
	"github.com/aryamb/studycoach-agent/internal/config"
	"github.com/aryamb/studycoach-agent/internal/domain"
)

func main() {
	ctx := context.Background()

	// .env is optional; the app works fully offline without it.
	_ = godotenv.Load()

	cfg := config.Load()

	// LLM: mock, Gemini, or none (enrichment disabled)
	var llmClient domain.LLMClient

	switch {
	case cfg.UseMockLLM:
		log.Println("[LLM] Using MOCK LLM client")
		llmClient = llm.NewMockLLM()

	case cfg.HasLLMCredential():
		log.Println("[LLM] Using Gemini LLM client")
		client, err := llm.NewGeminiClient(ctx, llm.GeminiOptions{
			APIKey:   cfg.GeminiAPIKey,
			Project:  cfg.GCPProjectID,
			Location: cfg.GCPLocation,
			Model:    cfg.ModelName,
		})
		if err != nil {
			log.Fatalf("error initializing Gemini LLM client: %v", err)
		}
		llmClient = client

	default:
		log.Println("[LLM] No credential configured, enrichment disabled")
	}

	// Storage: jsonfile (default), Firestore or Memory
	var store domain.HistoryStore

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		store = fsStore

	case "memory":
		log.Println("[STORE] Using in-memory storage")
		store = memstore.NewHistoryStore()

	default:
		jfStore, err := jsonfile.NewStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("error initializing jsonfile store: %v", err)
		}
		log.Printf("[STORE] Using jsonfile storage (%s)", jfStore.Path())
		store = jfStore
	}

	// Planner Service
	svc := planner.NewService(llmClient, store)

	// HTTP server
	handler := httpadapter.NewServer(svc)

	port := ":" + cfg.Port
	log.Println("StudyCoach API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
