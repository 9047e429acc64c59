// Command stub-api is a local stand-in for the console backend's auth
// surface. It serves the three endpoints the client layer depends on with
// HS256-signed tokens and a small set of seeded demo users, so the SDK and
// its consumers can run without the production API.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentora/console-client/internal/observability"
	"github.com/rentora/console-client/utils"
)

var signingKey = []byte(envOrDefault("STUB_SIGNING_KEY", "stub-api-dev-key"))

type user struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Tier      string
}

// seeded demo accounts, one per role
var defaultUsers = []user{
	{ID: uuid.NewString(), Email: "root@rentora.app", Password: "superadmin123", FirstName: "Platform", LastName: "Operator", Role: "super_admin", Tier: "premium"},
	{ID: uuid.NewString(), Email: "owner@demo.rentora.app", Password: "password123", FirstName: "Olive", LastName: "Owner", Role: "owner", Tier: "pro"},
	{ID: uuid.NewString(), Email: "manager@demo.rentora.app", Password: "password123", FirstName: "Max", LastName: "Manager", Role: "manager", Tier: "pro"},
	{ID: uuid.NewString(), Email: "assistant@demo.rentora.app", Password: "password123", FirstName: "Ada", LastName: "Assistant", Role: "assistant", Tier: "normal"},
}

type server struct {
	mu       sync.Mutex
	users    []user
	tenantID string
	logger   *zap.Logger
}

func main() {
	logger, err := observability.NewLogger(envOrDefault("LOG_LEVEL", "info"), envOrDefault("LOG_FORMAT", "text"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	figure.NewFigure("stub-api", "cybermedium", true).Print()

	srv := &server{
		users:    defaultUsers,
		tenantID: envOrDefault("TENANT_ID", uuid.NewString()),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteOK(w, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", srv.handleLogin)
		r.Post("/auth/register", srv.handleRegister)
		r.Get("/me", srv.handleMe)
	})

	addr := envOrDefault("HTTP_ADDR", ":8080")
	logger.Info("stub-api listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == req.Email && u.Password == req.Password {
			token, err := s.mintToken(u)
			if err != nil {
				s.logger.Error("failed to mint token", zap.Error(err))
				_ = utils.WriteInternalServerError(w, "")
				return
			}
			s.logger.Info("login", zap.String("email", u.Email), zap.String("role", u.Role))
			_ = utils.WriteOK(w, map[string]string{"token": token})
			return
		}
	}

	_ = utils.WriteUnauthorized(w, "Invalid email or password")
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		_ = utils.WriteBadRequest(w, "Email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == req.Email {
			_ = utils.WriteConflict(w, "Email already registered")
			return
		}
	}

	s.users = append(s.users, user{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      "owner",
		Tier:      "normal",
	})
	s.logger.Info("registered", zap.String("email", req.Email))
	_ = utils.WriteCreated(w, map[string]string{"message": "Account created"})
}

func (s *server) handleMe(w http.ResponseWriter, r *http.Request) {
	raw := bearerToken(r)
	if raw == "" {
		_ = utils.WriteUnauthorized(w, "Missing or invalid authorization")
		return
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		_ = utils.WriteUnauthorized(w, "Invalid or expired token")
		return
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		_ = utils.WriteUnauthorized(w, "Invalid or expired token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == sub {
			_ = utils.WriteOK(w, map[string]interface{}{
				"user": map[string]string{
					"id":         u.ID,
					"email":      u.Email,
					"first_name": u.FirstName,
					"last_name":  u.LastName,
				},
				"tenant": map[string]string{
					"subscription_tier": u.Tier,
				},
			})
			return
		}
	}

	_ = utils.WriteUnauthorized(w, "Invalid or expired token")
}

func (s *server) mintToken(u user) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       u.ID,
		"tenant_id": s.tenantID,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(signingKey)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
