package assetserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"codeorder/internal/question"
	"codeorder/internal/testutil"
)

// TestServeStopsOnCancel starts a real listener and shuts it down via ctx.
func TestServeStopsOnCancel(t *testing.T) {
	path := testutil.WriteBankFile(t, t.TempDir(), testutil.Document(map[question.Selection]int{
		question.NewSelection("go", "easy"): 1,
	}))
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, Config{Addr: addr, BankPath: path})
	}()

	testutil.Eventually(t, 2*time.Second, 20*time.Millisecond, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/questions.json", addr))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, "server did not start")

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestServeRequiresAddr(t *testing.T) {
	if err := Serve(context.Background(), Config{BankPath: "q.json"}); err == nil {
		t.Fatalf("expected addr error")
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()
	return addr
}
