package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	app "detect-api/internal/application"
	"detect-api/internal/container"
)

// Сообщения об ошибках, которые видит клиент.
const (
	msgModelNotLoaded = "Model not loaded. Please check server logs."
	msgNotAnImage     = "File must be an image (JPG, PNG, JPEG, WebP)"
	msgNoFile         = "No file uploaded"
)

// Server — HTTP-адаптер сервиса детекции.
type Server struct {
	detection *app.DetectionService
	log       *logrus.Logger
	staticDir string
}

// NewServer создаёт HTTP-адаптер поверх собранных сервисов.
func NewServer(c *container.Container, log *logrus.Logger, staticDir string) *Server {
	return &Server{
		detection: c.DetectionService,
		log:       log,
		staticDir: staticDir,
	}
}

// Routes собирает маршруты API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect", s.handleDetect)
	mux.HandleFunc("/health", s.handleHealth)

	// Отдаём статические файлы (лендинг с формой загрузки).
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	return corsMiddleware(mux)
}

// handleDetect обрабатывает POST /detect
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Парсим multipart form (порог буферизации в памяти, не лимит размера).
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.log.Warnf("Failed to parse multipart form: %v", err)
		respondError(w, msgNoFile, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.log.Warnf("No file in request: %v", err)
		respondError(w, msgNoFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.log.Errorf("Failed to read upload %s: %v", header.Filename, err)
		respondError(w, fmt.Sprintf("Detection failed: %v", err), http.StatusInternalServerError)
		return
	}

	// Заявленный тип файла — из заголовка части формы, как прислал клиент.
	contentType := header.Header.Get("Content-Type")
	s.log.Infof("Received file: %s (%d bytes, %s)", header.Filename, len(data), contentType)

	resp, err := s.detection.Detect(r.Context(), data, contentType)
	if err != nil {
		s.respondDetectError(w, err)
		return
	}

	s.log.Infof("Detection completed: %d predictions", len(resp.Predictions))
	respondJSON(w, resp, http.StatusOK)
}

// handleHealth обрабатывает GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, s.detection.Health(), http.StatusOK)
}

// respondDetectError сопоставляет ошибки конвейера со статусами HTTP.
func (s *Server) respondDetectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrModelNotLoaded):
		s.log.Errorf("Detection rejected: %v", err)
		respondError(w, msgModelNotLoaded, http.StatusInternalServerError)
	case errors.Is(err, app.ErrNotAnImage):
		s.log.Warnf("Detection rejected: %v", err)
		respondError(w, msgNotAnImage, http.StatusBadRequest)
	default:
		s.log.Errorf("Detection failed: %v", err)
		respondError(w, fmt.Sprintf("Detection failed: %v", err), http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}

// corsMiddleware добавляет CORS заголовки
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
