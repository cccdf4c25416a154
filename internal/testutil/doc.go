// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// JSON fixtures are embedded using go:embed: hydra-check output
// (hydra_check_*.json) and Hydra API responses (build_*.json, eval_*.json).
//
//	data := testutil.MustFixture(t, "hydra_check_hello.json")
//
// # Fake Hydra
//
// NewFakeHydra starts an httptest server answering /build/<id> and
// /eval/<id> from registered bodies and records every request:
//
//	h := testutil.NewFakeHydra(t)
//	h.AddFixture("/build/2", "build_2.json")
//	client := hydra.NewClient(h.URL(), h.Client())
//
// # Test Environment
//
// NewTestEnv combines a mock executor, a fake Hydra and a temp directory
// and installs them as app.Default for the duration of the test:
//
//	env := testutil.NewTestEnv(t)
//	env.StubHello()
//	// run commands with --hydra-url env.Hydra.URL() --output env.OverlayPath
package testutil
