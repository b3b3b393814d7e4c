package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interview-analyzer/internal/analysis"
)

// handleScoreSession оценивает содержание ответа и объединяет оценку
// с метриками голоса и мимики, присланными клиентом
func (s *Server) handleScoreSession(c *gin.Context) {
	var request ScoreSessionRequest
	if !s.bindScoreRequest(c, &request) {
		return
	}

	response := s.orchestrator.ScoreOnly(c.Request.Context(), *request.Transcript, analysis.SessionMetrics{
		VoiceScore: *request.VoiceScore,
		FaceScore:  *request.FaceScore,
	})

	c.JSON(http.StatusOK, response)
}

// handleStarAnalysis выполняет STAR разбор транскрипта
func (s *Server) handleStarAnalysis(c *gin.Context) {
	var request StarAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.logger.Debug("невалидное тело запроса", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "transcript является обязательным полем"})
		return
	}

	response := s.orchestrator.StarOnly(c.Request.Context(), *request.Transcript)

	c.JSON(http.StatusOK, response)
}

// handleComprehensiveAnalysis запускает оба анализа и возвращает объединенный результат
func (s *Server) handleComprehensiveAnalysis(c *gin.Context) {
	var request ScoreSessionRequest
	if !s.bindScoreRequest(c, &request) {
		return
	}

	response := s.orchestrator.Comprehensive(c.Request.Context(), *request.Transcript, analysis.SessionMetrics{
		VoiceScore: *request.VoiceScore,
		FaceScore:  *request.FaceScore,
	})

	c.JSON(http.StatusOK, response)
}

// handleHealth — проверка живости сервиса
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"model":  s.cfg.OpenAI.Model,
	})
}

// handleMetrics отдает снимок счетчиков анализа
func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.counters.GetSnapshot())
}

// bindScoreRequest валидирует тело запроса с метриками.
// Ошибки валидации — единственные ошибки, которые сервис возвращает клиенту.
func (s *Server) bindScoreRequest(c *gin.Context, request *ScoreSessionRequest) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		s.logger.Debug("невалидное тело запроса", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "voice_score, face_score и transcript являются обязательными полями"})
		return false
	}

	if err := validateMetricScore("voice_score", *request.VoiceScore); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}

	if err := validateMetricScore("face_score", *request.FaceScore); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}

	return true
}

func validateMetricScore(field string, value float64) error {
	if value < 0 || value > 5 {
		return fmt.Errorf("%s должен быть в диапазоне [0, 5]", field)
	}
	return nil
}
