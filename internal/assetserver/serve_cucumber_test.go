//go:build cucumber

package assetserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeorder/internal/question"
	"codeorder/internal/testutil"

	"github.com/cucumber/godog"
)

// TestServeBankScenarios runs the asset server feature scenarios.
func TestServeBankScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "bank-serve.feature")
	suite := godog.TestSuite{
		Name:                "bank-serve",
		ScenarioInitializer: InitializeServeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeServeScenario wires steps for asset server feature scenarios.
func InitializeServeScenario(ctx *godog.ScenarioContext) {
	state := &serveScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, err
	})

	ctx.Step(`^a question bank with (\d+) "([^"]+)" "([^"]+)" questions$`, state.givenBank)
	ctx.Step(`^I start the asset server$`, state.whenIStartTheServer)
	ctx.Step(`^I request "([^"]+)"$`, state.whenIRequest)
	ctx.Step(`^the response status is (\d+)$`, state.thenResponseStatus)
	ctx.Step(`^the response body contains "([^"]+)"$`, state.thenResponseBodyContains)
	ctx.Step(`^the served bank has (\d+) "([^"]+)" "([^"]+)" questions$`, state.thenServedBankHas)
}

// serveScenarioState holds scenario state for asset server feature tests.
type serveScenarioState struct {
	dir      string
	bankPath string
	handler  http.Handler
	response *httptest.ResponseRecorder
}

func (s *serveScenarioState) reset() {
	s.dir = ""
	s.bankPath = ""
	s.handler = nil
	s.response = nil
}

func (s *serveScenarioState) cleanup() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

func (s *serveScenarioState) givenBank(count int, language, difficulty string) error {
	dir, err := os.MkdirTemp("", "codeorder-bank-*")
	if err != nil {
		return err
	}
	s.dir = dir
	doc := testutil.Document(map[question.Selection]int{
		question.NewSelection(language, difficulty): count,
	})
	path, err := writeBank(dir, doc)
	if err != nil {
		return err
	}
	s.bankPath = path
	return nil
}

func (s *serveScenarioState) whenIStartTheServer() error {
	if s.bankPath == "" {
		return fmt.Errorf("bank path is not set")
	}
	handler, err := NewHandler(Config{BankPath: s.bankPath})
	if err != nil {
		return err
	}
	s.handler = handler
	return nil
}

func (s *serveScenarioState) whenIRequest(path string) error {
	if s.handler == nil {
		return fmt.Errorf("handler not initialized")
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	s.response = recorder
	return nil
}

func (s *serveScenarioState) thenResponseStatus(expected int) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.response.Code != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.response.Code)
	}
	return nil
}

func (s *serveScenarioState) thenResponseBodyContains(snippet string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if !strings.Contains(s.response.Body.String(), snippet) {
		return fmt.Errorf("expected response to contain %q", snippet)
	}
	return nil
}

func (s *serveScenarioState) thenServedBankHas(count int, language, difficulty string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	bank, err := question.Parse(s.response.Body.Bytes(), question.FormatJSON)
	if err != nil {
		return err
	}
	if got := bank.Count(question.NewSelection(language, difficulty)); got != count {
		return fmt.Errorf("expected %d questions, got %d", count, got)
	}
	return nil
}

func writeBank(dir string, doc question.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "questions.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
