package analysis

import (
	"errors"
	"reflect"
	"testing"

	"interview-analyzer/internal/config"
)

func newTestParser() *Parser {
	return NewParser(config.Default())
}

func TestParseContentResponse(t *testing.T) {
	parser := newTestParser()

	raw := `{"score": 4.2, "tips": {"content": "Добавьте цифры", "voice": "Говорите медленнее", "face": "Смотрите в камеру"}}`

	result, err := parser.ParseContentResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ContentScore != 4.2 {
		t.Fatalf("expected score 4.2, got %v", result.ContentScore)
	}

	if result.Tips.Content != "Добавьте цифры" {
		t.Fatalf("unexpected content tip: %s", result.Tips.Content)
	}

	if result.Degraded {
		t.Fatalf("parsed result must not be degraded")
	}
}

func TestParseContentResponseProseWrapped(t *testing.T) {
	parser := newTestParser()

	raw := `Sure! Here is the analysis: {"score": 4.2, "tips": {"content": "a", "voice": "b", "face": "c"}} Hope this helps.`

	result, err := parser.ParseContentResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ContentScore != 4.2 {
		t.Fatalf("expected score 4.2, got %v", result.ContentScore)
	}
}

func TestParseContentResponseMarkdownFences(t *testing.T) {
	parser := newTestParser()

	raw := "```json\n{\"score\": 3.5, \"tips\": {\"content\": \"a\", \"voice\": \"b\", \"face\": \"c\"}}\n```"

	result, err := parser.ParseContentResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ContentScore != 3.5 {
		t.Fatalf("expected score 3.5, got %v", result.ContentScore)
	}
}

func TestParseContentResponseClamping(t *testing.T) {
	parser := newTestParser()

	cases := []struct {
		name     string
		score    string
		expected float64
	}{
		{"upper clamp", "7.9", 5.0},
		{"lower clamp", "-1", 1.0},
		{"in range untouched", "4.5", 4.5},
		{"rounded to one decimal", "4.44", 4.4},
		{"numeric string coerced", `"4.7"`, 4.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := `{"score": ` + tc.score + `, "tips": {"content": "a", "voice": "b", "face": "c"}}`

			result, err := parser.ParseContentResponse(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.ContentScore != tc.expected {
				t.Fatalf("expected score %v, got %v", tc.expected, result.ContentScore)
			}
		})
	}
}

func TestParseContentResponseErrors(t *testing.T) {
	parser := newTestParser()

	cases := []struct {
		name string
		raw  string
	}{
		{"no braces", "модель отказалась отвечать"},
		{"invalid json", "{score: broken}"},
		{"missing score", `{"tips": {"content": "a", "voice": "b", "face": "c"}}`},
		{"score wrong type", `{"score": [4], "tips": {"content": "a", "voice": "b", "face": "c"}}`},
		{"score non numeric string", `{"score": "великолепно", "tips": {"content": "a", "voice": "b", "face": "c"}}`},
		{"missing tips", `{"score": 4}`},
		{"tips wrong type", `{"score": 4, "tips": "совет"}`},
		{"missing tip category", `{"score": 4, "tips": {"content": "a", "voice": "b"}}`},
		{"tip wrong type", `{"score": 4, "tips": {"content": 1, "voice": "b", "face": "c"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseContentResponse(tc.raw)
			if err == nil {
				t.Fatalf("expected parse error")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParseStarResponse(t *testing.T) {
	parser := newTestParser()

	raw := `{"situation": ["Мы запускали продукт"], "task": ["Я отвечал за бэкенд"], "action": ["Переписал очередь задач"], "result": ["Нагрузка выросла втрое без сбоев"]}`

	result, err := parser.ParseStarResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Situation) != 1 || result.Situation[0] != "Мы запускали продукт" {
		t.Fatalf("unexpected situation: %v", result.Situation)
	}

	if len(result.Result) != 1 {
		t.Fatalf("unexpected result list: %v", result.Result)
	}
}

func TestParseStarResponseScalarNormalization(t *testing.T) {
	parser := newTestParser()

	raw := `{"situation": "I led a project", "task": [], "action": [], "result": []}`

	result, err := parser.ParseStarResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(result.Situation, []string{"I led a project"}) {
		t.Fatalf("expected scalar normalized to one-element list, got %v", result.Situation)
	}

	for _, list := range [][]string{result.Task, result.Action, result.Result} {
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil list, got %v", list)
		}
	}
}

func TestParseStarResponseNullTreatedAsEmpty(t *testing.T) {
	parser := newTestParser()

	raw := `{"situation": null, "task": [], "action": [], "result": []}`

	result, err := parser.ParseStarResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Situation == nil || len(result.Situation) != 0 {
		t.Fatalf("expected empty non-nil situation, got %v", result.Situation)
	}
}

func TestParseStarResponseErrors(t *testing.T) {
	parser := newTestParser()

	cases := []struct {
		name string
		raw  string
	}{
		{"missing key", `{"situation": [], "task": [], "action": []}`},
		{"wrong type", `{"situation": 42, "task": [], "action": [], "result": []}`},
		{"non string element", `{"situation": [1], "task": [], "action": [], "result": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseStarResponse(tc.raw)
			if err == nil {
				t.Fatalf("expected parse error")
			}
		})
	}
}

// Один и тот же сырой текст всегда разбирается в один и тот же результат
func TestParserIdempotence(t *testing.T) {
	parser := newTestParser()

	raw := `Вот анализ: {"score": 6.3, "tips": {"content": "a", "voice": "b", "face": "c"}}`

	first, err := parser.ParseContentResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := parser.ParseContentResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}
