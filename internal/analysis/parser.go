package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"interview-analyzer/internal/config"
	"interview-analyzer/internal/schema"
)

// ParseError представляет ошибку разбора ответа модели.
// Как и CallError, она нефатальна и всегда гасится fallback значением.
type ParseError struct {
	Reason string
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ошибка разбора ответа модели: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

func newParseError(reason string, cause error) *ParseError {
	return &ParseError{Reason: reason, cause: cause}
}

// Ключи STAR разбора в фиксированном порядке
var starKeys = []string{"situation", "task", "action", "result"}

// Parser валидирует и приводит к типизированному виду свободный JSON,
// который модель возвращает вопреки инструкциям в самых разных обертках.
// Разбор детерминирован: одинаковый сырой текст дает одинаковый результат.
type Parser struct {
	minScore float64
	maxScore float64
}

// NewParser создает парсер с границами оценки из конфигурации анализа
func NewParser(cfg *config.AnalysisConfig) *Parser {
	return &Parser{
		minScore: cfg.Scoring.MinScore,
		maxScore: cfg.Scoring.MaxScore,
	}
}

// ParseContentResponse разбирает ответ модели на промпт оценки содержания
func (p *Parser) ParseContentResponse(rawText string) (*EvaluationResult, error) {
	payload, err := p.decodeObject(rawText)
	if err != nil {
		return nil, err
	}

	scoreValue, ok := payload["score"]
	if !ok {
		return nil, newParseError("в ответе отсутствует ключ score", nil)
	}

	score, ok := coerceScore(scoreValue)
	if !ok {
		return nil, newParseError(fmt.Sprintf("score имеет неверный тип: %T", scoreValue), nil)
	}

	tipsValue, ok := payload["tips"]
	if !ok {
		return nil, newParseError("в ответе отсутствует ключ tips", nil)
	}

	tipsMap, ok := tipsValue.(map[string]interface{})
	if !ok {
		return nil, newParseError(fmt.Sprintf("tips имеет неверный тип: %T", tipsValue), nil)
	}

	tips := Tips{}
	for _, category := range schema.RequiredCategories() {
		value, ok := tipsMap[category]
		if !ok {
			return nil, newParseError(fmt.Sprintf("в tips отсутствует категория %q", category), nil)
		}

		text, ok := value.(string)
		if !ok {
			return nil, newParseError(fmt.Sprintf("совет %q имеет неверный тип: %T", category, value), nil)
		}

		switch category {
		case "content":
			tips.Content = text
		case "voice":
			tips.Voice = text
		case "face":
			tips.Face = text
		}
	}

	return &EvaluationResult{
		ContentScore: p.clampScore(score),
		Tips:         tips,
	}, nil
}

// ParseStarResponse разбирает ответ модели на промпт STAR разбора
func (p *Parser) ParseStarResponse(rawText string) (*STARResult, error) {
	payload, err := p.decodeObject(rawText)
	if err != nil {
		return nil, err
	}

	lists := make(map[string][]string, len(starKeys))
	for _, key := range starKeys {
		value, ok := payload[key]
		if !ok {
			return nil, newParseError(fmt.Sprintf("в ответе отсутствует ключ %q", key), nil)
		}

		list, ok := toSentenceList(value)
		if !ok {
			return nil, newParseError(fmt.Sprintf("ключ %q имеет неверный тип: %T", key, value), nil)
		}

		lists[key] = list
	}

	return &STARResult{
		Situation: lists["situation"],
		Task:      lists["task"],
		Action:    lists["action"],
		Result:    lists["result"],
	}, nil
}

// decodeObject вырезает JSON объект из сырого текста и разбирает его в map
func (p *Parser) decodeObject(rawText string) (map[string]interface{}, error) {
	extracted, err := extractJSON(rawText)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
		return nil, newParseError(fmt.Sprintf("невалидный JSON: %v", err), err)
	}

	return payload, nil
}

// extractJSON находит первую '{' и последнюю '}' в тексте ответа.
// Модель нередко оборачивает JSON в markdown или сопровождает пояснениями,
// несмотря на прямой запрет в промпте.
func extractJSON(rawText string) (string, error) {
	cleaned := strings.ReplaceAll(rawText, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")

	if start == -1 || end == -1 || end < start {
		return "", newParseError("в ответе не найден JSON объект", nil)
	}

	return cleaned[start : end+1], nil
}

// clampScore приводит оценку к допустимому диапазону и округляет до одного
// знака после запятой. Небольшой выход за границы — ожидаемый шум модели,
// поэтому оценка зажимается, а не отбрасывается.
func (p *Parser) clampScore(score float64) float64 {
	if score < p.minScore {
		score = p.minScore
	}
	if score > p.maxScore {
		score = p.maxScore
	}
	return math.Round(score*10) / 10
}

// coerceScore приводит значение score к числу.
// Модель иногда возвращает число строкой ("4.5" вместо 4.5).
func coerceScore(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// toSentenceList приводит значение STAR ключа к списку предложений.
// Одиночная строка нормализуется в список из одного элемента: для
// односложных ответов модель периодически возвращает скаляр вместо массива.
// null трактуется как "не найдено", то есть пустой список.
func toSentenceList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return []string{}, true
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}, true
		}
		return []string{v}, true
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, text)
		}
		return list, true
	default:
		return nil, false
	}
}
