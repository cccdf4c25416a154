package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/hydra-pin/internal/app"
	"github.com/firefly-engineering/hydra-pin/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T           *testing.T
	TmpDir      string
	OverlayPath string
	Executor    *system.MockExecutor
	Hydra       *FakeHydra
	App         *app.App
}

// NewTestEnv creates a test environment with a mock executor and a fake
// Hydra, installed as app.Default until the test ends. The user config
// directory points into the temp dir so no real config file is read.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	mockExec := system.NewMockExecutor()
	fakeHydra := NewFakeHydra(t)

	testApp := app.New(
		app.WithExecutor(mockExec),
		app.WithHTTPClient(fakeHydra.Client()),
		app.WithGetenv(func(string) string { return "" }),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
	})

	return &TestEnv{
		T:           t,
		TmpDir:      tmpDir,
		OverlayPath: filepath.Join(tmpDir, "overlays", "pins.nix"),
		Executor:    mockExec,
		Hydra:       fakeHydra,
		App:         testApp,
	}
}

// StubHydraCheck answers "hydra-check <pkg> --json" with the named fixture.
func (e *TestEnv) StubHydraCheck(pkg, fixture string) {
	e.T.Helper()
	e.Executor.AddResponse("hydra-check "+pkg+" --json", MustFixture(e.T, fixture), nil)
}

// StubPrefetch answers "nix-prefetch-url --unpack <url>" with hash.
func (e *TestEnv) StubPrefetch(url, hash string) {
	e.Executor.AddResponse("nix-prefetch-url --unpack "+url, []byte(hash+"\n"), nil)
}

// StubHello wires everything needed to pin "hello" to build 2.
func (e *TestEnv) StubHello() {
	e.T.Helper()

	e.StubHydraCheck("hello", "hydra_check_hello.json")
	e.Hydra.AddFixture("/build/2", "build_2.json")
	e.Hydra.AddFixture("/build/5", "build_5.json")
	e.Hydra.AddFixture("/eval/1804213", "eval_1804213.json")
	e.Hydra.AddFixture("/eval/1803077", "eval_1803077.json")
	e.StubPrefetch(HelloURL, HelloSHA256)
}

// WriteOverlay writes raw content to the overlay path.
func (e *TestEnv) WriteOverlay(content string) {
	e.T.Helper()

	if err := os.MkdirAll(filepath.Dir(e.OverlayPath), 0755); err != nil {
		e.T.Fatalf("Failed to create overlay dir: %v", err)
	}
	if err := os.WriteFile(e.OverlayPath, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write overlay: %v", err)
	}
}

// ReadOverlay returns the overlay file content, failing the test if it is missing.
func (e *TestEnv) ReadOverlay() string {
	e.T.Helper()

	data, err := os.ReadFile(e.OverlayPath)
	if err != nil {
		e.T.Fatalf("Failed to read overlay: %v", err)
	}
	return string(data)
}

// OverlayExists reports whether the overlay file has been written.
func (e *TestEnv) OverlayExists() bool {
	_, err := os.Stat(e.OverlayPath)
	return err == nil
}
