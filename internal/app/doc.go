// Package app provides the application context for hydra-pin.
//
// App bundles the collaborators that touch the outside world: the file
// system holding the overlay, the executor that runs hydra-check and
// nix-prefetch-url, and the HTTP client used for the Hydra API. Commands
// build their resolver and overlay store from App.Default, and tests swap it
// with SetDefault:
//
//	testApp := app.New(
//	    app.WithExecutor(mockExec),
//	    app.WithHTTPClient(srv.Client()),
//	)
//	app.SetDefault(testApp)
//	defer app.ResetDefault()
package app
