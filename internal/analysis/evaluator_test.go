package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEvaluateSuccess(t *testing.T) {
	stub := &stubClient{contentResponse: validContentResponse}
	evaluator := newTestEvaluator(stub)

	result := evaluator.Evaluate(context.Background(), "Я руководил миграцией.")

	if result.ContentScore != 4.2 {
		t.Fatalf("expected score 4.2, got %v", result.ContentScore)
	}

	if result.Degraded {
		t.Fatalf("successful evaluation must not be degraded")
	}

	if result.Tips.Voice != "Говорите ровнее" {
		t.Fatalf("unexpected voice tip: %s", result.Tips.Voice)
	}

	if !strings.Contains(stub.prompt(), "Я руководил миграцией.") {
		t.Fatalf("expected transcript forwarded to the model")
	}
}

// Инвариант fallback: при любом сбое вызова оценка остается в [1, 5]
func TestEvaluateCallErrorFallsBack(t *testing.T) {
	stub := &stubClient{contentErr: errors.New("connection refused")}
	evaluator := newTestEvaluator(stub)

	result := evaluator.Evaluate(context.Background(), "любой текст")

	if result.ContentScore != 3.0 {
		t.Fatalf("expected fallback score 3.0, got %v", result.ContentScore)
	}

	if !result.Degraded {
		t.Fatalf("fallback result must be marked degraded")
	}

	if result.Tips.Content == "" {
		t.Fatalf("fallback must carry a generic content tip")
	}
}

func TestEvaluateParseErrorFallsBack(t *testing.T) {
	stub := &stubClient{contentResponse: "к сожалению, оценить не получилось"}
	evaluator := newTestEvaluator(stub)

	result := evaluator.Evaluate(context.Background(), "любой текст")

	if result.ContentScore != 3.0 {
		t.Fatalf("expected fallback score 3.0, got %v", result.ContentScore)
	}

	if !result.Degraded {
		t.Fatalf("fallback result must be marked degraded")
	}
}

func TestEvaluateScoreAlwaysInRange(t *testing.T) {
	cases := []struct {
		name string
		stub *stubClient
	}{
		{"call failure", &stubClient{contentErr: errors.New("boom")}},
		{"garbage response", &stubClient{contentResponse: "no json here"}},
		{"overshoot score", &stubClient{contentResponse: `{"score": 99, "tips": {"content": "a", "voice": "b", "face": "c"}}`}},
		{"negative score", &stubClient{contentResponse: `{"score": -3, "tips": {"content": "a", "voice": "b", "face": "c"}}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			evaluator := newTestEvaluator(tc.stub)
			result := evaluator.Evaluate(context.Background(), "текст ответа")

			if result.ContentScore < 1 || result.ContentScore > 5 {
				t.Fatalf("content score %v out of [1, 5]", result.ContentScore)
			}
		})
	}
}

func TestEvaluateEmptyTranscript(t *testing.T) {
	stub := &stubClient{contentResponse: validContentResponse}
	evaluator := newTestEvaluator(stub)

	result := evaluator.Evaluate(context.Background(), "")

	if result.ContentScore < 1 || result.ContentScore > 5 {
		t.Fatalf("content score %v out of [1, 5]", result.ContentScore)
	}
}
